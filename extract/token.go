package extract

import (
	"strings"

	"github.com/kresnik/sogovor/corpus"
	"github.com/kresnik/sogovor/lexicon"
)

// fillerForms is the closed fallback set for filler detection. Not all
// corpora mark fillers with the discourse:filler relation, so the form is
// checked as well.
var fillerForms = map[string]bool{
	"e": true, "ee": true, "eee": true,
	"eem": true, "em": true, "emm": true,
	"hm": true, "hmm": true,
	"uh": true, "uhh": true,
}

// minorFillerForms are hesitation noises that, inside an otherwise valid
// backchannel utterance, count as a half-weight warning.
var minorFillerForms = map[string]bool{
	"eee": true, "em": true, "erm": true, "mmm": true,
}

// sentFinalMarks end a finished utterance.
var sentFinalMarks = map[string]bool{
	".": true, "?": true, "!": true, "…": true, "...": true,
}

// contentPOS are the tags considered when proposing the last content token
// of A as a secondary attachment point.
var contentPOS = map[string]bool{
	"NOUN": true, "PROPN": true, "VERB": true,
	"ADJ": true, "ADV": true, "NUM": true, "PRON": true,
}

// IsFiller reports whether the token is a hesitation filler, either by its
// dependency relation or by its surface form.
func IsFiller(t corpus.Token) bool {
	return t.Deprel == "discourse:filler" || fillerForms[t.Norm()]
}

// FirstContentToken returns the first non-punctuation token of u.
func FirstContentToken(u corpus.Utterance) (corpus.Token, bool) {
	for _, t := range u.Tokens {
		if !t.IsPunct() {
			return t, true
		}
	}
	return corpus.Token{}, false
}

// EndsFinalPunct reports whether the utterance is closed by a sentence-final
// mark. Utterances lacking one are treated as syntactically open, which is
// the co-construction eligibility test for A.
func EndsFinalPunct(u corpus.Utterance) bool {
	if len(u.Tokens) == 0 {
		return false
	}
	return sentFinalMarks[u.Tokens[len(u.Tokens)-1].Form]
}

// RelationStartsWith matches namespaced dependency relations: prefix
// "discourse" matches both "discourse" and "discourse:filler".
func RelationStartsWith(t corpus.Token, prefix string) bool {
	return t.Deprel == prefix || strings.HasPrefix(t.Deprel, prefix+":")
}

// LexiconHits counts non-punctuation tokens whose normalized form is a
// lexicon entry.
func LexiconHits(u corpus.Utterance, lex *lexicon.Lexicon) int {
	hits := 0
	for _, t := range u.ContentTokens() {
		if lex.Contains(t.Norm()) {
			hits++
		}
	}
	return hits
}

// AllTokensInLexicon reports whether every non-punctuation token of u is a
// lexicon entry, or the joined form sequence exactly equals a registered
// multi-word phrase. False for utterances with no content tokens.
func AllTokensInLexicon(u corpus.Utterance, lex *lexicon.Lexicon) bool {
	toks := u.ContentTokens()
	if len(toks) == 0 {
		return false
	}
	all := true
	for _, t := range toks {
		if !lex.Contains(t.Norm()) {
			all = false
			break
		}
	}
	if all {
		return true
	}
	return lex.ContainsPhrase(u.NormPhrase())
}

// LooksLikeBackchannel reports whether the utterance itself has the shape
// of a backchannel: 1-3 content tokens, all in the lexicon. Used on A to
// detect direction-reversal risk.
func LooksLikeBackchannel(u corpus.Utterance, lex *lexicon.Lexicon) bool {
	toks := u.ContentTokens()
	if len(toks) == 0 || len(toks) > 3 {
		return false
	}
	for _, t := range toks {
		if !lex.Contains(t.Norm()) {
			return false
		}
	}
	return true
}

// HasContentStructure reports whether B carries clause-like content (a
// verb, or nouns/adjectives beyond a minimal turn) that suggests a
// substantive utterance rather than a pure reaction.
func HasContentStructure(u corpus.Utterance) bool {
	toks := u.ContentTokens()

	for _, t := range toks {
		switch t.UPos {
		case "VERB":
			// a verb alone already marks a clause ("razumem", "ne vem")
			return true
		case "NOUN", "PROPN", "ADJ":
			if len(toks) > 2 {
				return true
			}
		}
	}
	return len(toks) > 3
}

// IsMultiTokenQuestion reports whether B is a question requiring an answer:
// it ends in "?" and has more than 2 content tokens. Single tag-like
// questions ("ne?", "ja?") stay eligible.
func IsMultiTokenQuestion(u corpus.Utterance) bool {
	if !strings.HasSuffix(strings.TrimSpace(u.Text), "?") {
		return false
	}
	return len(u.ContentTokens()) > 2
}

// IsQuestionLike reports whether the raw text carries a question mark
// anywhere. Deliberately loose: interrupted questions in speech often have
// the mark mid-utterance.
func IsQuestionLike(text string) bool {
	return strings.Contains(text, "?")
}

// HasMinorFiller reports whether any content token of u is a minor
// hesitation noise.
func HasMinorFiller(u corpus.Utterance) bool {
	for _, t := range u.ContentTokens() {
		if minorFillerForms[t.Norm()] {
			return true
		}
	}
	return false
}

// HasVerbalBackchannel reports whether u contains a verb-tagged lexicon word
// ("razumem", "vem"). A weak positive indicator exported as a soft signal.
func HasVerbalBackchannel(u corpus.Utterance, lex *lexicon.Lexicon) bool {
	for _, t := range u.ContentTokens() {
		if t.UPos == "VERB" && lex.Contains(t.Norm()) {
			return true
		}
	}
	return false
}

// HasDiscourseRelation reports whether any token of u carries a
// discourse-family relation.
func HasDiscourseRelation(u corpus.Utterance) bool {
	for _, t := range u.Tokens {
		if RelationStartsWith(t, "discourse") {
			return true
		}
	}
	return false
}

// LastContentToken proposes the last token of u with a content POS tag,
// skipping trailing hesitation noises; falls back to the last
// non-punctuation token.
func LastContentToken(u corpus.Utterance) (corpus.Token, bool) {
	toks := u.ContentTokens()
	if len(toks) == 0 {
		return corpus.Token{}, false
	}
	for i := len(toks) - 1; i >= 0; i-- {
		t := toks[i]
		if contentPOS[t.UPos] && !minorFillerForms[t.Norm()] {
			return t, true
		}
	}
	return toks[len(toks)-1], true
}

// FirstTextToken returns the first normalized word of a raw text line,
// trimming surrounding punctuation.
func FirstTextToken(text string) string {
	for _, w := range strings.Fields(text) {
		norm := strings.ToLower(strings.Trim(w, ".,?!;:\"'()[]{}"))
		if norm != "" {
			return norm
		}
	}
	return ""
}
