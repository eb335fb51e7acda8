package storage

import "time"

// Vote is one reviewer decision on a candidate pair. Votes are keyed by
// annotator and candidate; re-voting replaces the earlier verdict.
type Vote struct {
	Annotator string
	Kind      string // "backchannel" or "coconstruction"
	Doc       string
	ASentID   string
	BSentID   string
	Verdict   string // "accept", "reject" or "skip"
	Note      string
	CreatedAt time.Time
}

// Key identifies the candidate a vote refers to, without the annotator.
func (v Vote) Key() string {
	return v.Doc + "|" + v.ASentID + "|" + v.BSentID
}

// Tally aggregates verdicts for one candidate across annotators.
type Tally struct {
	Accept int
	Reject int
	Skip   int
}

// VoteReader defines read operations for vote storage
type VoteReader interface {
	// All returns every vote of the given kind, oldest first.
	// An empty kind returns all votes.
	All(kind string) ([]Vote, error)

	// Tallies aggregates the latest verdict per annotator and candidate
	// of the given kind, keyed by Vote.Key.
	Tallies(kind string) (map[string]Tally, error)
}

// VoteWriter defines write operations for vote storage
type VoteWriter interface {
	// Record persists a vote, replacing any earlier vote by the same
	// annotator on the same candidate.
	Record(v Vote) error
}

// VoteRepository combines read and write operations
type VoteRepository interface {
	VoteReader
	VoteWriter

	Close() error
}
