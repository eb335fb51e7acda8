// Package lexicon loads the backchannel vocabulary and the exclusion phrase
// list. Both are read once at startup and treated as immutable for the rest
// of the run; the extraction core receives them as plain values.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// CategoryUnspecified is assigned to entries listed without a category tag.
const CategoryUnspecified = "unspecified"

// CategoryMultiwordStarter marks words like "v" (in "v redu") that only
// qualify as a backchannel when followed by another lexicon word. They are
// exempt from the relation gate but never classify a candidate on their own.
const CategoryMultiwordStarter = "multiword_starter"

// CategoryPriority is the fixed tie-break order for type classification.
// When an utterance contains words of several categories, the first category
// of this list that is present wins.
var CategoryPriority = []string{
	"assessment",
	"laughter",
	"surprise",
	"understanding",
	"agreement",
	"continuer",
	"filler",
	CategoryUnspecified,
}

// Lexicon is the loaded backchannel vocabulary: single words with their
// category, plus fixed multi-word phrases.
type Lexicon struct {
	words      map[string]string
	phrases    map[string]string
	numEntries int
}

// Load reads a lexicon file. One entry per line, either a bare word or
// "word|category"; blank lines and lines starting with # are ignored.
// Entries containing spaces are registered as fixed phrases.
func Load(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses lexicon entries from r.
func Read(r io.Reader) (*Lexicon, error) {
	lex := &Lexicon{
		words:   map[string]string{},
		phrases: map[string]string{},
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry := line
		category := CategoryUnspecified
		if word, cat, ok := strings.Cut(line, "|"); ok {
			entry = strings.TrimSpace(word)
			category = strings.ToLower(strings.TrimSpace(cat))
			if category == "" {
				category = CategoryUnspecified
			}
		}
		entry = strings.ToLower(entry)
		if entry == "" {
			continue
		}

		if strings.Contains(entry, " ") {
			lex.phrases[normalizePhrase(entry)] = category
		} else {
			lex.words[entry] = category
		}
		lex.numEntries++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lex, nil
}

// Len returns the number of loaded entries, words and phrases combined.
func (l *Lexicon) Len() int {
	return l.numEntries
}

// Contains reports whether the normalized word is a single-word entry.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.words[word]
	return ok
}

// Category returns the category of a single-word entry, or
// CategoryUnspecified for unknown words.
func (l *Lexicon) Category(word string) string {
	if cat, ok := l.words[word]; ok {
		return cat
	}
	return CategoryUnspecified
}

// ContainsPhrase reports whether the space-joined normalized form sequence
// is a registered multi-word phrase.
func (l *Lexicon) ContainsPhrase(phrase string) bool {
	_, ok := l.phrases[normalizePhrase(phrase)]
	return ok
}

// BestCategory picks the highest-priority category among the given words,
// ignoring words that are not in the lexicon and the multiword_starter
// marker, which is a gate mechanism, not a backchannel type.
func (l *Lexicon) BestCategory(words []string) string {
	present := map[string]bool{}
	for _, w := range words {
		if cat, ok := l.words[w]; ok && cat != CategoryMultiwordStarter {
			present[cat] = true
		}
	}
	for _, cat := range CategoryPriority {
		if present[cat] {
			return cat
		}
	}
	return CategoryUnspecified
}

func normalizePhrase(p string) string {
	return strings.Join(strings.Fields(p), " ")
}

// Exclusions is a list of normalized phrases whose utterances are dropped
// before any other gate (greetings and similar formulaic turns).
type Exclusions []string

// LoadExclusions reads an exclusion list file, one phrase per line, with
// the same blank/comment conventions as the lexicon.
func LoadExclusions(path string) (Exclusions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("exclusion list: %w", err)
	}
	defer f.Close()

	var ex Exclusions
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.ToLower(strings.TrimSpace(sc.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ex = append(ex, normalizePhrase(line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ex, nil
}

// Matches reports whether the normalized text equals or contains any
// excluded phrase. text is stripped of sentence punctuation before the
// comparison so that "dober dan." still matches "dober dan".
func (e Exclusions) Matches(text string) bool {
	norm := strings.ToLower(strings.TrimSpace(text))
	norm = strings.NewReplacer(".", "", ",", "", "!", "", "?", "").Replace(norm)
	norm = normalizePhrase(norm)
	if norm == "" {
		return false
	}
	for _, phrase := range e {
		if norm == phrase || strings.Contains(norm, phrase) {
			return true
		}
	}
	return false
}
