package render

import (
	"encoding/json"
	"io"

	"github.com/kresnik/sogovor/storage"
)

// JSONRenderer writes vote exports as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Votes serializes the votes as a JSON array.
func (r *JSONRenderer) Votes(votes []storage.Vote) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(votes)
}
