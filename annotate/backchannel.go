package annotate

import (
	"fmt"
	"strings"

	"github.com/kresnik/sogovor/conllu"
	"github.com/kresnik/sogovor/corpus"
)

// ApplyBackchannels writes Backchannel=<A-id>::<A-root-token-id> into the
// MISC column of the first token of every accepted B utterance. lines is
// the raw file; untouched lines are returned byte-identical. The whole
// decision set is validated up front; any bad reference aborts before a
// single line changes.
func ApplyBackchannels(lines []string, decisions []BackchannelDecision) ([]string, Stats, error) {
	var accepted []BackchannelDecision
	for _, d := range dedupeLast(decisions) {
		if d.Accept {
			accepted = append(accepted, d)
		}
	}
	stats := Stats{Decisions: len(accepted)}

	index := conllu.Index(conllu.ParseLines(lines))

	// B sent id -> feature string
	features := map[string]string{}
	for _, d := range accepted {
		a, ok := index[d.ASentID]
		if !ok {
			return nil, stats, fmt.Errorf("backchannel %s: A sentence %s not found", d.BSentID, d.ASentID)
		}
		if _, ok := index[d.BSentID]; !ok {
			return nil, stats, fmt.Errorf("backchannel: B sentence %s not found", d.BSentID)
		}
		root, err := singleRoot(a)
		if err != nil {
			return nil, stats, err
		}
		features[d.BSentID] = fmt.Sprintf("Backchannel=%s::%d", d.ASentID, root.ID)
	}

	out := make([]string, 0, len(lines))
	currentSID := ""
	firstToken := true

	for _, line := range lines {
		if sid, ok := sentIDLine(line); ok {
			currentSID = sid
			firstToken = true
			out = append(out, line)
			continue
		}
		if line == "" {
			firstToken = true
			out = append(out, line)
			continue
		}

		cols, ok := tokenLine(line)
		if ok && firstToken {
			firstToken = false
			if feature, ok := features[currentSID]; ok {
				line = addMiscFeature(cols, feature, &stats)
			}
		}
		out = append(out, line)
	}

	return out, stats, nil
}

// singleRoot returns the unique root token of u, or an error naming the
// utterance when the corpus is malformed there. Guessing a root would
// silently corrupt the annotation, so this fails hard.
func singleRoot(u corpus.Utterance) (corpus.Token, error) {
	switch n := u.RootCount(); {
	case n == 0:
		return corpus.Token{}, fmt.Errorf("sentence %s has no root token", u.ID)
	case n > 1:
		return corpus.Token{}, fmt.Errorf("sentence %s has %d root tokens, want exactly one", u.ID, n)
	}
	root, _ := u.Root()
	return root, nil
}

// sentIDLine extracts the id from a "# sent_id = ..." comment.
func sentIDLine(line string) (string, bool) {
	const prefix = "# sent_id = "
	if !strings.HasPrefix(line, prefix) {
		return "", false
	}
	return strings.TrimSpace(line[len(prefix):]), true
}

// tokenLine splits a regular 10-column token line; multiword ranges and
// empty nodes are not token lines for annotation purposes.
func tokenLine(line string) ([]string, bool) {
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, false
	}
	cols := strings.Split(line, "\t")
	if len(cols) != conllu.NumFields {
		return nil, false
	}
	if strings.ContainsAny(cols[0], "-.") {
		return nil, false
	}
	return cols, true
}

// addMiscFeature appends feature to the MISC column unless it is already
// present, rebuilding the line from its columns. Only cols[9] changes.
func addMiscFeature(cols []string, feature string, stats *Stats) string {
	misc := cols[9]
	switch {
	case misc == "_":
		cols[9] = feature
		stats.Applied++
	case containsFeature(misc, feature):
		stats.AlreadyTagged++
	default:
		cols[9] = misc + "|" + feature
		stats.Applied++
	}
	return strings.Join(cols, "\t")
}

func containsFeature(misc, feature string) bool {
	for _, f := range strings.Split(misc, "|") {
		if f == feature {
			return true
		}
	}
	return false
}
