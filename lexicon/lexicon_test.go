package lexicon

import (
	"strings"
	"testing"
)

const sampleLexicon = `# single words
ja|agreement
mhm|continuer
aha|understanding
super|assessment
res|surprise
ne
v|multiword_starter

# fixed phrases
v redu|agreement
tako je|agreement
`

func load(t *testing.T) *Lexicon {
	t.Helper()
	lex, err := Read(strings.NewReader(sampleLexicon))
	if err != nil {
		t.Fatalf("read lexicon: %v", err)
	}
	return lex
}

func TestReadWordsAndPhrases(t *testing.T) {
	lex := load(t)

	if !lex.Contains("ja") {
		t.Errorf("ja should be a word entry")
	}
	if lex.Contains("v redu") {
		t.Errorf("phrases must not match as single words")
	}
	if !lex.ContainsPhrase("v redu") {
		t.Errorf("v redu should be a phrase entry")
	}
	if !lex.ContainsPhrase("tako  je") {
		t.Errorf("phrase lookup should normalize inner whitespace")
	}
	if lex.Len() != 9 {
		t.Errorf("Len = %d, want 9", lex.Len())
	}
}

func TestCategory(t *testing.T) {
	lex := load(t)

	if got := lex.Category("mhm"); got != "continuer" {
		t.Errorf("Category(mhm) = %q, want continuer", got)
	}
	if got := lex.Category("ne"); got != CategoryUnspecified {
		t.Errorf("bare entry should be unspecified, got %q", got)
	}
	if got := lex.Category("nonexistent"); got != CategoryUnspecified {
		t.Errorf("unknown word should be unspecified, got %q", got)
	}
	if got := lex.Category("v"); got != CategoryMultiwordStarter {
		t.Errorf("Category(v) = %q, want multiword_starter", got)
	}
}

func TestBestCategoryPriority(t *testing.T) {
	lex := load(t)

	// assessment outranks understanding and agreement
	got := lex.BestCategory([]string{"ja", "aha", "super"})
	if got != "assessment" {
		t.Errorf("BestCategory = %q, want assessment", got)
	}

	// surprise outranks understanding
	got = lex.BestCategory([]string{"aha", "res"})
	if got != "surprise" {
		t.Errorf("BestCategory = %q, want surprise", got)
	}

	// multiword_starter never classifies
	got = lex.BestCategory([]string{"v"})
	if got != CategoryUnspecified {
		t.Errorf("BestCategory(v) = %q, want unspecified", got)
	}
}

func TestExclusionsMatches(t *testing.T) {
	ex := Exclusions{"dober dan", "na svidenje"}

	if !ex.Matches("dober dan.") {
		t.Errorf("trailing punctuation should not prevent a match")
	}
	if !ex.Matches("no ja dober dan vsem") {
		t.Errorf("contained phrase should match")
	}
	if ex.Matches("dober večer") {
		t.Errorf("unlisted phrase must not match")
	}
	if ex.Matches("") {
		t.Errorf("empty text must not match")
	}
}
