package corpus

import (
	"strings"
	"unicode"
)

// Token is one row of a CoNLL-U token line inside an utterance.
type Token struct {
	// ID is the 1-based position of the token within its utterance.
	ID int

	// The unmodified word
	Form string

	// The lemma of the word
	Lemma string

	// Universal POS tag (NOUN, VERB, INTJ, PART, PUNCT, ...)
	UPos string

	// Dependency relation label, possibly namespaced with a colon
	// ("discourse:filler").
	Deprel string

	// Head is the ID of the syntactic head, 0 for the root. -1 when the
	// HEAD column was not a plain integer (malformed or underscore).
	Head int

	// Raw MISC column. The annotation writer appends Backchannel= and
	// Coconstruct= features here; the extraction core only reads it.
	Misc string
}

// Norm returns the lowercase-normalized form used for lexicon lookups.
func (t Token) Norm() string {
	return strings.ToLower(strings.TrimSpace(t.Form))
}

// IsPunct reports whether the token is punctuation. The UPOS tag is
// authoritative; forms made entirely of punctuation runes are also treated
// as punctuation because some utterances carry unmarked marks.
func (t Token) IsPunct() bool {
	if t.UPos == "PUNCT" {
		return true
	}
	form := strings.TrimSpace(t.Form)
	if form == "" {
		return false
	}
	for _, r := range form {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Utterance is one speaker turn: an ordered token sequence plus the
// sentence-level metadata of the treebank. Utterances are immutable once
// built; the extraction core never mutates them.
type Utterance struct {
	// Doc is the document (conversation) id from "# newdoc id".
	Doc string

	// ID is the stable sentence id ("# sent_id").
	ID string

	// Speaker id from "# speaker_id".
	Speaker string

	// Raw "# text" line.
	Text string

	// SoundURL is the optional audio reference, "NA" when absent.
	SoundURL string

	Tokens []Token
}

// ContentTokens returns the non-punctuation tokens in order.
func (u Utterance) ContentTokens() []Token {
	var toks []Token
	for _, t := range u.Tokens {
		if !t.IsPunct() {
			toks = append(toks, t)
		}
	}
	return toks
}

// Root returns the token with head 0. ok is false when the utterance has no
// root; when the corpus is malformed and carries several, the first is
// returned (RootCount lets callers detect that).
func (u Utterance) Root() (Token, bool) {
	for _, t := range u.Tokens {
		if t.Head == 0 {
			return t, true
		}
	}
	return Token{}, false
}

// RootCount returns the number of tokens with head 0. Well-formed
// utterances have exactly one.
func (u Utterance) RootCount() int {
	n := 0
	for _, t := range u.Tokens {
		if t.Head == 0 {
			n++
		}
	}
	return n
}

// NormForms returns the normalized forms of the non-punctuation tokens.
func (u Utterance) NormForms() []string {
	var forms []string
	for _, t := range u.ContentTokens() {
		forms = append(forms, t.Norm())
	}
	return forms
}

// NormPhrase joins the normalized non-punctuation forms with single spaces.
// Used for multi-word lexicon phrase and exclusion list matching.
func (u Utterance) NormPhrase() string {
	return strings.Join(u.NormForms(), " ")
}
