// Package annotate applies human-adjudicated backchannel and
// co-construction decisions to a CoNLL-U file, touching only the MISC
// column of one designated token per accepted decision. All references are
// validated before any line is modified: a single bad row aborts the whole
// application rather than leaving a partial write behind.
package annotate

import "strings"

// yesValues are the accepted spellings of a positive decision cell.
var yesValues = map[string]bool{
	"1": true, "yes": true, "y": true, "true": true,
}

// IsYes reports whether a decision cell counts as accepted.
func IsYes(v string) bool {
	return yesValues[strings.ToLower(strings.TrimSpace(v))]
}

// BackchannelDecision is one adjudicated backchannel candidate row. The
// (Doc, ASentID, BSentID) triple is the candidate key.
type BackchannelDecision struct {
	Doc     string
	ASentID string
	BSentID string
	Accept  bool
	Note    string
}

// Key returns the candidate identity of the decision.
func (d BackchannelDecision) Key() string {
	return d.Doc + "|" + d.ASentID + "|" + d.BSentID
}

// CoconstructionDecision is one adjudicated co-construction row: the
// candidate key plus the reviewer-chosen relation and governor token in A.
type CoconstructionDecision struct {
	Doc             string
	ASentID         string
	BSentID         string
	Accept          bool
	Deprel          string
	GovernorTokenID int
	Note            string
}

// Key returns the candidate identity of the decision.
func (d CoconstructionDecision) Key() string {
	return d.Doc + "|" + d.ASentID + "|" + d.BSentID
}

// dedupeLast keeps only the last decision per key, preserving first-seen
// order. Contradictory duplicates are resolved in favor of the later,
// explicit row.
func dedupeLast[D interface{ Key() string }](ds []D) []D {
	last := map[string]D{}
	var order []string
	for _, d := range ds {
		k := d.Key()
		if _, ok := last[k]; !ok {
			order = append(order, k)
		}
		last[k] = d
	}
	out := make([]D, 0, len(order))
	for _, k := range order {
		out = append(out, last[k])
	}
	return out
}

// Stats summarizes one annotation application.
type Stats struct {
	// Decisions is the number of accepted decisions after dedupe.
	Decisions int

	// Applied counts tokens whose MISC was extended.
	Applied int

	// AlreadyTagged counts decisions whose tag was present already;
	// re-running an application is a no-op for those.
	AlreadyTagged int
}
