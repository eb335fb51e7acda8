package render

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/kresnik/sogovor/storage"
)

func TestJSONRendererVotesEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Votes(nil); err != nil {
		t.Fatalf("render: %v", err)
	}

	var votes []storage.Vote
	if err := json.Unmarshal(buf.Bytes(), &votes); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(votes) != 0 {
		t.Fatalf("expected 0 votes, got %d", len(votes))
	}
}

func TestJSONRendererVotesOneVote(t *testing.T) {
	v := storage.Vote{
		Annotator: "ana",
		Kind:      "backchannel",
		Doc:       "GO001",
		ASentID:   "GO001-s1",
		BSentID:   "GO001-s2",
		Verdict:   "accept",
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Votes([]storage.Vote{v}); err != nil {
		t.Fatalf("render: %v", err)
	}

	var votes []storage.Vote
	if err := json.Unmarshal(buf.Bytes(), &votes); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(votes) != 1 {
		t.Fatalf("expected 1 vote, got %d", len(votes))
	}

	if votes[0].Annotator != "ana" {
		t.Errorf("expected annotator 'ana', got %q", votes[0].Annotator)
	}

	if votes[0].Verdict != "accept" {
		t.Errorf("expected verdict 'accept', got %q", votes[0].Verdict)
	}
}
