package review

import (
	"testing"

	"github.com/kresnik/sogovor/corpus"
	"github.com/kresnik/sogovor/extract"
)

func TestParseAnswers(t *testing.T) {
	cases := []struct {
		in      string
		verdict string
		note    string
	}{
		{"a", "accept", ""},
		{"accept", "accept", ""},
		{"r too long", "reject", "too long"},
		{"s", "skip", ""},
		{"p", "previous", ""},
		{"q", "quit", ""},
	}
	for _, c := range cases {
		verdict, note, err := parse(c.in)
		if err != nil {
			t.Errorf("parse(%q): %v", c.in, err)
			continue
		}
		if verdict != c.verdict || note != c.note {
			t.Errorf("parse(%q) = %q/%q, want %q/%q", c.in, verdict, note, c.verdict, c.note)
		}
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	if _, _, err := parse("maybe"); err == nil {
		t.Errorf("unknown answer must error")
	}
	if _, _, err := parse("   "); err == nil {
		t.Errorf("blank answer must error")
	}
}

func TestBackchannelItems(t *testing.T) {
	cands := []extract.BackchannelCandidate{{
		Doc: "GO001",
		A:   corpus.Utterance{ID: "GO001-s1"},
		B:   corpus.Utterance{ID: "GO001-s2"},
	}}
	items := BackchannelItems(cands)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	it := items[0]
	if it.Kind != KindBackchannel || it.Doc != "GO001" || it.ASentID != "GO001-s1" || it.BSentID != "GO001-s2" {
		t.Errorf("unexpected item: %+v", it)
	}
}
