package main

import (
	"path/filepath"
	"strings"

	"github.com/kresnik/sogovor/storage"
	"github.com/kresnik/sogovor/storage/filesystem"
	"github.com/kresnik/sogovor/storage/sqlite/zombiezen"
)

// NewVoteRepository selects the store from the path extension: .jsonl and
// .ndjson open the append-only file store, anything else the SQLite store.
func NewVoteRepository(path string) (storage.VoteRepository, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson":
		return filesystem.NewVoteStore(path), nil
	}
	return zombiezen.NewVoteStore(path)
}
