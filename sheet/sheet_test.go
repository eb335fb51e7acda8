package sheet

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/kresnik/sogovor/corpus"
	"github.com/kresnik/sogovor/extract"
)

func sampleBackchannel() extract.BackchannelCandidate {
	return extract.BackchannelCandidate{
		Doc:        "GO001",
		Confidence: extract.High,
		Score:      95,
		Type:       "continuer",
		A: corpus.Utterance{
			Doc: "GO001", ID: "GO001-s1", Speaker: "spk1",
			Text: "in potem smo šli", SoundURL: "NA",
		},
		B: corpus.Utterance{
			Doc: "GO001", ID: "GO001-s2", Speaker: "spk2",
			Text: "mhm", SoundURL: "NA",
			Tokens: []corpus.Token{{ID: 1, Form: "mhm", UPos: "INTJ", Deprel: "root"}},
		},
		BTokenCount:  1,
		Reasons:      []string{"A continues immediately after B"},
		ProposedRoot: extract.Attachment{UtteranceID: "GO001-s1", TokenID: 3},
	}
}

func TestWriteBackchannelsHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBackchannels(&buf, []extract.BackchannelCandidate{sampleBackchannel()}); err != nil {
		t.Fatalf("write: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reread: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	if len(rows[0]) != len(BackchannelHeader) {
		t.Errorf("header width %d, want %d", len(rows[0]), len(BackchannelHeader))
	}
	if len(rows[1]) != len(BackchannelHeader) {
		t.Errorf("row width %d, want %d", len(rows[1]), len(BackchannelHeader))
	}
}

func TestBackchannelDecisionRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBackchannels(&buf, []extract.BackchannelCandidate{sampleBackchannel()}); err != nil {
		t.Fatalf("write: %v", err)
	}

	// the reviewer fills keep? on the only row
	filled := strings.Replace(buf.String(), ",\"\",\"\"\n", ",1,checked\n", 1)
	if filled == buf.String() {
		// csv writer may not quote empties; fall back to trailing commas
		filled = strings.Replace(buf.String(), ",,\n", ",1,checked\n", 1)
	}

	ds, err := ReadBackchannelDecisions(strings.NewReader(filled))
	if err != nil {
		t.Fatalf("read decisions: %v", err)
	}
	if len(ds) != 1 {
		t.Fatalf("expected 1 decision, got %d", len(ds))
	}
	d := ds[0]
	if d.ASentID != "GO001-s1" || d.BSentID != "GO001-s2" {
		t.Errorf("unexpected key: %s -> %s", d.ASentID, d.BSentID)
	}
	if !d.Accept {
		t.Errorf("keep?=1 must accept")
	}
	if d.Note != "checked" {
		t.Errorf("note = %q, want checked", d.Note)
	}
}

func TestReadBackchannelDecisionsMissingColumn(t *testing.T) {
	in := "doc,A_sent_id\nGO001,GO001-s1\n"
	if _, err := ReadBackchannelDecisions(strings.NewReader(in)); err == nil {
		t.Fatalf("sheet without required columns must fail")
	}
}

func TestReadCoconstructionDecisions(t *testing.T) {
	in := strings.Join([]string{
		"doc,a_sent_id,b_sent_id,is_coconstruction,coconstruct_deprel,governor_token_id,notes",
		"GO001,GO001-s1,GO001-s2,1,nsubj,4.0,fine",
		"GO001,GO001-s3,GO001-s4,,conj,2,",
		"GO001,GO001-s5,GO001-s6,1,,,unreviewed",
	}, "\n") + "\n"

	ds, err := ReadCoconstructionDecisions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(ds) != 2 {
		t.Fatalf("expected 2 decisions (third lacks relation), got %d", len(ds))
	}

	if ds[0].GovernorTokenID != 4 {
		t.Errorf("spreadsheet float governor should parse to 4, got %d", ds[0].GovernorTokenID)
	}
	if ds[0].Deprel != "nsubj" || !ds[0].Accept {
		t.Errorf("unexpected first decision: %+v", ds[0])
	}
	// empty verdict with full row counts as accepted
	if !ds[1].Accept {
		t.Errorf("empty verdict should accept")
	}
}

func TestReadCoconstructionDecisionsBadGovernor(t *testing.T) {
	in := "doc,a_sent_id,b_sent_id,coconstruct_deprel,governor_token_id\n" +
		"GO001,GO001-s1,GO001-s2,nsubj,abc\n"
	if _, err := ReadCoconstructionDecisions(strings.NewReader(in)); err == nil {
		t.Fatalf("non-numeric governor must fail")
	}
}
