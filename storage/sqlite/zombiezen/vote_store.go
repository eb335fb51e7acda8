package zombiezen

import (
	"context"
	"fmt"
	"time"

	"github.com/kresnik/sogovor/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type VoteStore struct {
	pool *sqlitex.Pool
}

var _ storage.VoteRepository = (*VoteStore)(nil)

// NewVoteStore opens (or creates) the vote database at dbPath and ensures
// the schema exists. The pool stays small: a review session holds one
// connection and a concurrent votes export at most one more.
func NewVoteStore(dbPath string) (*VoteStore, error) {
	// sqlitex.NewPool default flags: OpenReadWrite | OpenCreate | OpenWAL | OpenURI
	pool, err := sqlitex.NewPool(fmt.Sprintf("file:%s", dbPath), sqlitex.PoolOptions{
		PoolSize: 2,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open vote database at %s: %w", dbPath, err)
	}
	if err := CreateSchemas(pool, "votes.sql"); err != nil {
		pool.Close()
		return nil, err
	}
	return &VoteStore{pool: pool}, nil
}

func (s *VoteStore) Close() error {
	return s.pool.Close()
}

func (s *VoteStore) Record(v storage.Vote) error {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}

	query := `INSERT INTO votes (annotator, kind, doc, a_sent_id, b_sent_id, verdict, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (annotator, kind, doc, a_sent_id, b_sent_id)
		DO UPDATE SET verdict = excluded.verdict, note = excluded.note, created_at = excluded.created_at`

	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: []interface{}{
			v.Annotator, v.Kind, v.Doc, v.ASentID, v.BSentID,
			v.Verdict, v.Note, v.CreatedAt.UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}
	return nil
}

func (s *VoteStore) All(kind string) ([]storage.Vote, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	query := "SELECT annotator, kind, doc, a_sent_id, b_sent_id, verdict, note, created_at FROM votes"
	var args []interface{}
	if kind != "" {
		query += " WHERE kind = ?"
		args = append(args, kind)
	}
	query += " ORDER BY created_at, id"

	var votes []storage.Vote
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			v := storage.Vote{
				Annotator: stmt.ColumnText(0),
				Kind:      stmt.ColumnText(1),
				Doc:       stmt.ColumnText(2),
				ASentID:   stmt.ColumnText(3),
				BSentID:   stmt.ColumnText(4),
				Verdict:   stmt.ColumnText(5),
				Note:      stmt.ColumnText(6),
			}
			if ts, err := time.Parse(time.RFC3339, stmt.ColumnText(7)); err == nil {
				v.CreatedAt = ts
			}
			votes = append(votes, v)
			return nil
		},
	})
	if err != nil {
		return nil, err
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
