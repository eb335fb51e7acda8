package extract

import (
	"reflect"
	"testing"

	"github.com/kresnik/sogovor/corpus"
)

// aLong is a substantive utterance that passes no backchannel gate itself.
func aLong(doc, id, speaker string) corpus.Utterance {
	return utt(doc, id, speaker, "in potem smo šli domov",
		tok(1, "in", "CCONJ", "cc", 4), tok(2, "potem", "ADV", "advmod", 4),
		tok(3, "smo", "AUX", "aux", 4), tok(4, "šli", "VERB", "root", 0),
		tok(5, "domov", "ADV", "advmod", 4))
}

func bMhm(doc, id, speaker string) corpus.Utterance {
	return utt(doc, id, speaker, "mhm", tok(1, "mhm", "INTJ", "root", 0))
}

func TestExtractImmediateContinuation(t *testing.T) {
	lex := testLex(t)
	stream := []corpus.Utterance{
		aLong("GO001", "GO001-s1", "spk1"),
		bMhm("GO001", "GO001-s2", "spk2"),
		aLong("GO001", "GO001-s3", "spk1"),
	}

	cands := NewBackchannelExtractor(lex, nil, DefaultConfig()).Extract(stream)
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}

	c := cands[0]
	if c.B.ID != "GO001-s2" {
		t.Errorf("candidate B = %s, want GO001-s2", c.B.ID)
	}
	if c.Confidence != High {
		t.Errorf("confidence = %s, want HIGH", c.Confidence)
	}
	if c.Score != 95 {
		t.Errorf("score = %d, want 95 (85 base + 10 single token)", c.Score)
	}
	if c.Type != "continuer" {
		t.Errorf("type = %q, want continuer", c.Type)
	}
}

func TestExtractWindowedContinuation(t *testing.T) {
	lex := testLex(t)
	stream := []corpus.Utterance{
		aLong("GO001", "GO001-s1", "spk1"),
		bMhm("GO001", "GO001-s2", "spk2"),
		utt("GO001", "GO001-s3", "spk2", "in potem",
			tok(1, "in", "CCONJ", "cc", 2), tok(2, "potem", "ADV", "root", 0)),
		aLong("GO001", "GO001-s4", "spk1"),
	}

	cands := NewBackchannelExtractor(lex, nil, DefaultConfig()).Extract(stream)
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}
	if cands[0].Confidence != Medium {
		t.Errorf("confidence = %s, want MEDIUM", cands[0].Confidence)
	}
	if cands[0].Score != 80 {
		t.Errorf("score = %d, want 80 (70 base + 10 single token)", cands[0].Score)
	}
}

func TestExtractDirectionReversal(t *testing.T) {
	lex := testLex(t)
	stream := []corpus.Utterance{
		bMhm("GO001", "GO001-s1", "spk1"),
		utt("GO001", "GO001-s2", "spk2", "ja ja ja ja ja",
			tok(1, "ja", "INTJ", "root", 0), tok(2, "ja", "INTJ", "discourse", 1),
			tok(3, "ja", "INTJ", "discourse", 1), tok(4, "ja", "INTJ", "discourse", 1),
			tok(5, "ja", "INTJ", "discourse", 1)),
		bMhm("GO001", "GO001-s3", "spk1"),
	}

	cands := NewBackchannelExtractor(lex, nil, DefaultConfig()).Extract(stream)
	for _, c := range cands {
		if c.B.ID == "GO001-s2" {
			t.Errorf("long B next to a backchannel-shaped A must be excluded")
		}
	}
}

func TestExtractAfterQuestionForcedLow(t *testing.T) {
	lex := testLex(t)
	question := utt("GO001", "GO001-s1", "spk1", "si ti to videl ?",
		tok(1, "si", "AUX", "aux", 4), tok(2, "ti", "PRON", "nsubj", 4),
		tok(3, "to", "PRON", "obj", 4), tok(4, "videl", "VERB", "root", 0),
		tok(5, "?", "PUNCT", "punct", 4))
	stream := []corpus.Utterance{
		question,
		utt("GO001", "GO001-s2", "spk2", "ja", tok(1, "ja", "INTJ", "root", 0)),
		aLong("GO001", "GO001-s3", "spk1"),
	}

	cands := NewBackchannelExtractor(lex, nil, DefaultConfig()).Extract(stream)
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}

	c := cands[0]
	if !c.AfterQuestion {
		t.Fatalf("AfterQuestion flag not set")
	}
	if c.Confidence != Low {
		t.Errorf("answer to a question must be LOW, got %s", c.Confidence)
	}
	// 85 base + 10 length - 15 flag weight - 50 answer penalty
	if c.Score != 30 {
		t.Errorf("score = %d, want 30", c.Score)
	}
}

func TestExtractNoContinuationDropped(t *testing.T) {
	lex := testLex(t)
	spk2 := func(id string) corpus.Utterance {
		return utt("GO001", id, "spk2", "in potem je bilo tako",
			tok(1, "in", "CCONJ", "cc", 4), tok(2, "potem", "ADV", "advmod", 4),
			tok(3, "je", "AUX", "aux", 4), tok(4, "bilo", "VERB", "root", 0),
			tok(5, "tako", "ADV", "advmod", 4))
	}
	stream := []corpus.Utterance{
		aLong("GO001", "GO001-s1", "spk1"),
		bMhm("GO001", "GO001-s2", "spk2"),
		spk2("GO001-s3"), spk2("GO001-s4"), spk2("GO001-s5"),
		spk2("GO001-s6"), spk2("GO001-s7"), spk2("GO001-s8"),
	}

	cands := NewBackchannelExtractor(lex, nil, DefaultConfig()).Extract(stream)
	if len(cands) != 0 {
		t.Fatalf("candidate without continuation evidence must be dropped, got %d", len(cands))
	}

	cfg := DefaultConfig()
	cfg.IncludeNoContinuation = true
	cands = NewBackchannelExtractor(lex, nil, cfg).Extract(stream)
	if len(cands) != 1 {
		t.Fatalf("include-no-continuation should keep the candidate, got %d", len(cands))
	}
	if cands[0].Confidence != Low {
		t.Errorf("kept candidate must be LOW, got %s", cands[0].Confidence)
	}
}

func TestExtractNearEndOfDocument(t *testing.T) {
	lex := testLex(t)
	stream := []corpus.Utterance{
		aLong("GO001", "GO001-s1", "spk1"),
		bMhm("GO001", "GO001-s2", "spk2"),
	}

	cands := NewBackchannelExtractor(lex, nil, DefaultConfig()).Extract(stream)
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}
	if cands[0].Confidence != Low {
		t.Errorf("closing backchannel should be LOW, got %s", cands[0].Confidence)
	}
	if cands[0].Score != 45 {
		t.Errorf("score = %d, want 45 (35 base + 10 single token)", cands[0].Score)
	}
}

func TestExtractMultiwordStarterException(t *testing.T) {
	lex := testLex(t)
	b := utt("GO001", "GO001-s2", "spk2", "v redu",
		tok(1, "v", "ADP", "case", 2), tok(2, "redu", "NOUN", "root", 0))
	stream := []corpus.Utterance{
		aLong("GO001", "GO001-s1", "spk1"),
		b,
		aLong("GO001", "GO001-s3", "spk1"),
	}

	cands := NewBackchannelExtractor(lex, nil, DefaultConfig()).Extract(stream)
	if len(cands) != 1 {
		t.Fatalf("v redu should survive the relation gate, got %d candidates", len(cands))
	}
	if cands[0].Score != 90 {
		t.Errorf("score = %d, want 90 (85 base + 5 two tokens)", cands[0].Score)
	}
}

func TestExtractNonLexiconRejected(t *testing.T) {
	lex := testLex(t)
	b := utt("GO001", "GO001-s2", "spk2", "kaj ?",
		tok(1, "kaj", "PRON", "root", 0), tok(2, "?", "PUNCT", "punct", 1))
	stream := []corpus.Utterance{
		aLong("GO001", "GO001-s1", "spk1"),
		b,
		aLong("GO001", "GO001-s3", "spk1"),
	}

	cands := NewBackchannelExtractor(lex, nil, DefaultConfig()).Extract(stream)
	if len(cands) != 0 {
		t.Fatalf("single word outside the lexicon must be rejected, got %d candidates", len(cands))
	}
}

func TestExtractPartialLexiconCoverageRejected(t *testing.T) {
	lex := testLex(t)
	b := utt("GO001", "GO001-s2", "spk2", "ja ampak kam",
		tok(1, "ja", "INTJ", "root", 0), tok(2, "ampak", "CCONJ", "cc", 3),
		tok(3, "kam", "ADV", "advmod", 1))
	stream := []corpus.Utterance{
		aLong("GO001", "GO001-s1", "spk1"),
		b,
		aLong("GO001", "GO001-s3", "spk1"),
	}

	cands := NewBackchannelExtractor(lex, nil, DefaultConfig()).Extract(stream)
	if len(cands) != 0 {
		t.Fatalf("B continuing past the lexicon must be rejected, got %d candidates", len(cands))
	}
}

func TestExtractExclusionList(t *testing.T) {
	lex := testLex(t)
	b := utt("GO001", "GO001-s2", "spk2", "ja",
		tok(1, "ja", "INTJ", "root", 0))
	stream := []corpus.Utterance{
		aLong("GO001", "GO001-s1", "spk1"),
		b,
		aLong("GO001", "GO001-s3", "spk1"),
	}

	cands := NewBackchannelExtractor(lex, []string{"ja"}, DefaultConfig()).Extract(stream)
	if len(cands) != 0 {
		t.Fatalf("excluded phrase must drop the pair, got %d candidates", len(cands))
	}
}

func TestExtractDeterministic(t *testing.T) {
	lex := testLex(t)
	stream := []corpus.Utterance{
		aLong("GO001", "GO001-s1", "spk1"),
		bMhm("GO001", "GO001-s2", "spk2"),
		aLong("GO001", "GO001-s3", "spk1"),
		utt("GO001", "GO001-s4", "spk2", "aha super",
			tok(1, "aha", "INTJ", "root", 0), tok(2, "super", "INTJ", "discourse", 1)),
		aLong("GO001", "GO001-s5", "spk1"),
	}

	ex := NewBackchannelExtractor(lex, nil, DefaultConfig())
	first := ex.Extract(stream)
	second := ex.Extract(stream)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("extraction must be deterministic")
	}
	if len(first) != 2 {
		t.Errorf("expected 2 candidates, got %d", len(first))
	}
}
