package filesystem

import (
	"path/filepath"
	"testing"

	"github.com/kresnik/sogovor/storage"
)

func newStore(t *testing.T) *VoteStore {
	t.Helper()
	return NewVoteStore(filepath.Join(t.TempDir(), "votes.jsonl"))
}

func vote(annotator, verdict string) storage.Vote {
	return storage.Vote{
		Annotator: annotator,
		Kind:      "backchannel",
		Doc:       "GO001",
		ASentID:   "GO001-s1",
		BSentID:   "GO001-s2",
		Verdict:   verdict,
	}
}

func TestRecordAndAll(t *testing.T) {
	s := newStore(t)

	if err := s.Record(vote("ana", "accept")); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.Record(vote("bor", "reject")); err != nil {
		t.Fatalf("record: %v", err)
	}

	votes, err := s.All("backchannel")
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(votes) != 2 {
		t.Fatalf("expected 2 votes, got %d", len(votes))
	}
	if votes[0].Annotator != "ana" || votes[1].Annotator != "bor" {
		t.Errorf("unexpected order: %s, %s", votes[0].Annotator, votes[1].Annotator)
	}
}

func TestRevoteReplacesVerdict(t *testing.T) {
	s := newStore(t)

	if err := s.Record(vote("ana", "skip")); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.Record(vote("ana", "accept")); err != nil {
		t.Fatalf("record: %v", err)
	}

	votes, err := s.All("")
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(votes) != 1 {
		t.Fatalf("re-vote must replace, got %d votes", len(votes))
	}
	if votes[0].Verdict != "accept" {
		t.Errorf("verdict = %q, want accept", votes[0].Verdict)
	}
}

func TestTallies(t *testing.T) {
	s := newStore(t)

	for _, v := range []storage.Vote{
		vote("ana", "accept"),
		vote("bor", "accept"),
		vote("cvet", "reject"),
	} {
		if err := s.Record(v); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	tallies, err := s.Tallies("backchannel")
	if err != nil {
		t.Fatalf("tallies: %v", err)
	}
	tl := tallies["GO001|GO001-s1|GO001-s2"]
	if tl.Accept != 2 || tl.Reject != 1 || tl.Skip != 0 {
		t.Errorf("tally = %+v, want 2/1/0", tl)
	}
}

func TestAllMissingFile(t *testing.T) {
	s := NewVoteStore(filepath.Join(t.TempDir(), "absent.jsonl"))
	votes, err := s.All("")
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(votes) != 0 {
		t.Errorf("expected no votes, got %d", len(votes))
	}
}
