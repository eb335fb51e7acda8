// Package review runs an interactive terminal session over extracted
// candidates. Each candidate is shown as a card; the reviewer answers with
// accept, reject or skip and the verdict is persisted as a vote.
package review

import (
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/kresnik/sogovor/extract"
	"github.com/kresnik/sogovor/render"
	"github.com/kresnik/sogovor/storage"
)

const (
	KindBackchannel    = "backchannel"
	KindCoconstruction = "coconstruction"
)

// Item is one reviewable candidate, flattened to what the session needs.
type Item struct {
	Kind    string
	Doc     string
	ASentID string
	BSentID string

	show func(r *render.Text, pos, total int)
}

// BackchannelItems prepares backchannel candidates for a session.
func BackchannelItems(cands []extract.BackchannelCandidate) []Item {
	items := make([]Item, 0, len(cands))
	for _, c := range cands {
		c := c
		items = append(items, Item{
			Kind:    KindBackchannel,
			Doc:     c.Doc,
			ASentID: c.A.ID,
			BSentID: c.B.ID,
			show: func(r *render.Text, pos, total int) {
				r.Backchannel(pos, total, c)
			},
		})
	}
	return items
}

// CoconstructionItems prepares co-construction candidates for a session.
func CoconstructionItems(cands []extract.CoconstructionCandidate) []Item {
	items := make([]Item, 0, len(cands))
	for _, c := range cands {
		c := c
		items = append(items, Item{
			Kind:    KindCoconstruction,
			Doc:     c.Doc,
			ASentID: c.A.ID,
			BSentID: c.B.ID,
			show: func(r *render.Text, pos, total int) {
				r.Coconstruction(pos, total, c)
			},
		})
	}
	return items
}

type Handler struct {
	Votes     storage.VoteWriter
	Renderer  *render.Text
	Annotator string
}

func NewHandler(votes storage.VoteWriter, r *render.Text, annotator string) *Handler {
	return &Handler{
		Votes:     votes,
		Renderer:  r,
		Annotator: annotator,
	}
}

// Run walks the items in order. Answers: a[ccept], r[eject], s[kip], each
// with an optional trailing note; p goes back one item, q ends the session.
func (h *Handler) Run(items []Item) error {
	if len(items) == 0 {
		fmt.Fprintln(h.Renderer.W, "nothing to review")
		return nil
	}

	fmt.Fprintln(h.Renderer.W, "🔑 a: accept, r: reject, s: skip, p: previous, q: quit")

	history := []string{}

	for i := 0; i < len(items); {
		item := items[i]
		item.show(h.Renderer, i+1, len(items))

		in := prompt.Input("      ✍  ", completer,
			prompt.OptionTitle("sogovor review"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(6),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)
		history = append(history, in)

		verdict, note, err := parse(in)
		if err != nil {
			fmt.Fprintln(h.Renderer.W, err)
			continue
		}

		switch verdict {
		case "quit":
			return nil
		case "previous":
			if i > 0 {
				i--
			}
			continue
		}

		vote := storage.Vote{
			Annotator: h.Annotator,
			Kind:      item.Kind,
			Doc:       item.Doc,
			ASentID:   item.ASentID,
			BSentID:   item.BSentID,
			Verdict:   verdict,
			Note:      note,
		}
		if err := h.Votes.Record(vote); err != nil {
			return fmt.Errorf("record vote: %w", err)
		}
		i++
	}

	fmt.Fprintln(h.Renderer.W, "session done")
	return nil
}

func parse(in string) (verdict, note string, err error) {
	fields := strings.Fields(in)
	if len(fields) == 0 {
		return "", "", fmt.Errorf("answer with a, r, s, p or q")
	}

	note = strings.TrimSpace(strings.TrimPrefix(in, fields[0]))

	switch fields[0] {
	case "a", "accept":
		return "accept", note, nil
	case "r", "reject":
		return "reject", note, nil
	case "s", "skip":
		return "skip", note, nil
	case "p", "prev", "previous":
		return "previous", "", nil
	case "q", "quit":
		return "quit", "", nil
	}
	return "", "", fmt.Errorf("unknown answer %q, use a, r, s, p or q", fields[0])
}

func completer(in prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{
		{Text: "accept", Description: "keep this candidate"},
		{Text: "reject", Description: "discard this candidate"},
		{Text: "skip", Description: "decide later"},
		{Text: "previous", Description: "go back one candidate"},
		{Text: "quit", Description: "end the session"},
	}
	return prompt.FilterHasPrefix(s, in.GetWordBeforeCursor(), true)
}
