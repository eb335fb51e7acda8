// Package render prints candidates and vote summaries to the terminal.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kresnik/sogovor/extract"
	"github.com/kresnik/sogovor/storage"
)

var (
	Black   = "\033[1;30m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	White   = "\033[1;37m"
	Off     = "\033[0m"
	//Yellow256  = "\033[1;38;5;202m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	ClearLine = "\033[K"
)

// Text renders candidates as colored terminal text.
type Text struct {
	W        io.Writer
	HasColor bool
}

func NewText(w io.Writer, color bool) *Text {
	return &Text{W: w, HasColor: color}
}

func (r *Text) color(code, s string) string {
	if !r.HasColor {
		return s
	}
	return code + s + Off
}

func (r *Text) confidence(c extract.Confidence) string {
	switch c {
	case extract.High:
		return r.color(Green256, string(c))
	case extract.Medium:
		return r.color(Yellow256, string(c))
	default:
		return r.color(Grey256, string(c))
	}
}

// Backchannel prints one backchannel candidate as a review card.
func (r *Text) Backchannel(pos, total int, c extract.BackchannelCandidate) {
	fmt.Fprintf(r.W, "\n[%d/%d] %s  %s %d  %s\n",
		pos, total, r.color(Grey256, c.Doc), r.confidence(c.Confidence), c.Score,
		r.color(Yellow256, c.Type))
	fmt.Fprintf(r.W, "  A %s %s: %s\n", c.A.ID, r.color(Teal, c.A.Speaker), c.A.Text)
	fmt.Fprintf(r.W, "  B %s %s: %s\n", c.B.ID, r.color(Magenta, c.B.Speaker), r.color(Green256, c.B.Text))
	if len(c.Reasons) > 0 {
		fmt.Fprintf(r.W, "  why: %s\n", strings.Join(c.Reasons, "; "))
	}
	if flags := backchannelFlags(c); len(flags) > 0 {
		fmt.Fprintf(r.W, "  flags: %s\n", r.color(Red, strings.Join(flags, ", ")))
	}
}

// Coconstruction prints one co-construction candidate as a review card.
func (r *Text) Coconstruction(pos, total int, c extract.CoconstructionCandidate) {
	fmt.Fprintf(r.W, "\n[%d/%d] %s  root %s/%s\n",
		pos, total, r.color(Grey256, c.Doc), c.BRootForm, c.BRootUPos)
	fmt.Fprintf(r.W, "  A %s %s: %s\n", c.A.ID, r.color(Teal, c.A.Speaker), c.A.Text)
	fmt.Fprintf(r.W, "  B %s %s: %s\n", c.B.ID, r.color(Magenta, c.B.Speaker), r.color(Green256, c.B.Text))
	if signals := coconstructionSignals(c); len(signals) > 0 {
		fmt.Fprintf(r.W, "  signals: %s\n", strings.Join(signals, ", "))
	}
}

// Votes prints every vote followed by a per-candidate tally.
func (r *Text) Votes(votes []storage.Vote, tallies map[string]storage.Tally) {
	for _, v := range votes {
		fmt.Fprintf(r.W, "%s  %-14s %-12s %s -> %s  %s  %s\n",
			v.CreatedAt.Format("2006-01-02 15:04"), v.Annotator, v.Kind,
			v.ASentID, v.BSentID, r.verdict(v.Verdict), v.Note)
	}

	keys := make([]string, 0, len(tallies))
	for k := range tallies {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(r.W, "\n%d candidates with votes\n", len(keys))
	for _, k := range keys {
		t := tallies[k]
		fmt.Fprintf(r.W, "  %-40s accept=%d reject=%d skip=%d\n", k, t.Accept, t.Reject, t.Skip)
	}
}

func (r *Text) verdict(v string) string {
	switch v {
	case "accept":
		return r.color(Green256, v)
	case "reject":
		return r.color(Red, v)
	default:
		return r.color(Grey256, v)
	}
}

func backchannelFlags(c extract.BackchannelCandidate) []string {
	var flags []string
	if c.ALooksLikeBackchannel {
		flags = append(flags, "a_looks_like_backchannel")
	}
	if c.BHasContent {
		flags = append(flags, "b_has_content")
	}
	if c.BIsQuestion {
		flags = append(flags, "b_is_question")
	}
	if c.AfterQuestion {
		flags = append(flags, "after_question")
	}
	if c.MinorFiller {
		flags = append(flags, "minor_filler")
	}
	return flags
}

func coconstructionSignals(c extract.CoconstructionCandidate) []string {
	var signals []string
	if c.OrphanTail {
		signals = append(signals, "orphan_tail")
	}
	if c.AContinues {
		signals = append(signals, "a_continues")
	}
	if c.AIsQuestion {
		signals = append(signals, "a_is_question")
	}
	if c.BStartsBackchannelLike {
		signals = append(signals, "b_starts_backchannel_like")
	}
	if c.BHasQuestionMark {
		signals = append(signals, "b_has_question_mark")
	}
	if c.BRootIsIntjPart {
		signals = append(signals, "b_root_is_intj_part")
	}
	return signals
}
