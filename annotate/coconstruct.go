package annotate

import (
	"fmt"

	"github.com/kresnik/sogovor/conllu"
)

// ApplyCoconstructions writes Coconstruct=<relation>::<A-id>::<governor-id>
// into the MISC column of the root token of every accepted B utterance.
// Validation covers both utterance references, the governor token id within
// A, and root uniqueness of B; any violation aborts before lines change.
func ApplyCoconstructions(lines []string, decisions []CoconstructionDecision) ([]string, Stats, error) {
	var accepted []CoconstructionDecision
	for _, d := range dedupeLast(decisions) {
		if d.Accept {
			accepted = append(accepted, d)
		}
	}
	stats := Stats{Decisions: len(accepted)}

	index := conllu.Index(conllu.ParseLines(lines))

	features := map[string]string{}
	for _, d := range accepted {
		a, ok := index[d.ASentID]
		if !ok {
			return nil, stats, fmt.Errorf("coconstruction %s: A sentence %s not found", d.BSentID, d.ASentID)
		}
		b, ok := index[d.BSentID]
		if !ok {
			return nil, stats, fmt.Errorf("coconstruction: B sentence %s not found", d.BSentID)
		}
		if d.Deprel == "" {
			return nil, stats, fmt.Errorf("coconstruction %s: empty relation label", d.BSentID)
		}

		govFound := false
		for _, t := range a.Tokens {
			if t.ID == d.GovernorTokenID {
				govFound = true
				break
			}
		}
		if !govFound {
			return nil, stats, fmt.Errorf("coconstruction %s: governor token %d not found in A=%s",
				d.BSentID, d.GovernorTokenID, d.ASentID)
		}

		if _, err := singleRoot(b); err != nil {
			return nil, stats, err
		}

		features[d.BSentID] = fmt.Sprintf("Coconstruct=%s::%s::%d", d.Deprel, d.ASentID, d.GovernorTokenID)
	}

	out := make([]string, 0, len(lines))
	currentSID := ""

	for _, line := range lines {
		if sid, ok := sentIDLine(line); ok {
			currentSID = sid
			out = append(out, line)
			continue
		}

		cols, ok := tokenLine(line)
		if ok && cols[6] == "0" {
			if feature, ok := features[currentSID]; ok {
				line = addMiscFeature(cols, feature, &stats)
			}
		}
		out = append(out, line)
	}

	return out, stats, nil
}
