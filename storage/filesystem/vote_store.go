// Package filesystem stores votes as a JSON lines file, one vote per line.
// It is the zero-setup alternative to the SQLite store for single-annotator
// sessions.
package filesystem

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/kresnik/sogovor/storage"
)

type VoteStore struct {
	path string
}

var _ storage.VoteRepository = (*VoteStore)(nil)

func NewVoteStore(path string) *VoteStore {
	return &VoteStore{path: path}
}

func (s *VoteStore) Close() error {
	return nil
}

type voteRecord struct {
	Annotator string    `json:"annotator"`
	Kind      string    `json:"kind"`
	Doc       string    `json:"doc"`
	ASentID   string    `json:"a_sent_id"`
	BSentID   string    `json:"b_sent_id"`
	Verdict   string    `json:"verdict"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Record appends the vote to the file. Earlier votes on the same candidate
// stay in the file; readers keep the latest per annotator and candidate.
func (s *VoteStore) Record(v storage.Vote) error {
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	data, err := json.Marshal(voteRecord(v))
	if err != nil {
		f.Close()
		return err
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *VoteStore) All(kind string) ([]storage.Vote, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	// latest vote per annotator and candidate wins
	latest := map[string]storage.Vote{}
	var order []string

	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var rec voteRecord
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", s.path, line, err)
		}
		v := storage.Vote(rec)
		if kind != "" && v.Kind != kind {
			continue
		}
		k := v.Annotator + "|" + v.Kind + "|" + v.Key()
		if _, seen := latest[k]; !seen {
			order = append(order, k)
		}
		latest[k] = v
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	votes := make([]storage.Vote, 0, len(order))
	for _, k := range order {
		votes = append(votes, latest[k])
	}
	return votes, nil
}

func (s *VoteStore) Tallies(kind string) (map[string]storage.Tally, error) {
	votes, err := s.All(kind)
	if err != nil {
		return nil, err
	}

	tallies := map[string]storage.Tally{}
	for _, v := range votes {
		t := tallies[v.Key()]
		switch v.Verdict {
		case "accept":
			t.Accept++
		case "reject":
			t.Reject++
		case "skip":
			t.Skip++
		}
		tallies[v.Key()] = t
	}
	return tallies, nil
}
