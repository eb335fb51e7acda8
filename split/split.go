// Package split partitions a merged annotated corpus back into its source
// splits. Membership comes from the sent_ids of the original split files;
// order within each split follows the merged file.
package split

import (
	"fmt"
	"strings"
)

// Source names one split and carries the raw lines of its original file.
type Source struct {
	Name  string
	Lines []string
}

// block is one sentence of the merged file: its comment and token lines,
// kept verbatim.
type block struct {
	sentID string
	lines  []string
}

// Partition assigns every sentence of merged to the split that originally
// contained it. It fails when a sent_id appears in more than one source,
// when a merged sentence belongs to no source, or when a source sentence is
// missing from the merged file.
func Partition(merged []string, sources []Source) (map[string][]string, error) {
	owner := map[string]string{}
	want := map[string]int{}
	for _, src := range sources {
		ids := sentIDs(src.Lines)
		want[src.Name] = len(ids)
		for _, id := range ids {
			if prev, ok := owner[id]; ok {
				return nil, fmt.Errorf("split: sent_id %s appears in both %s and %s", id, prev, src.Name)
			}
			owner[id] = src.Name
		}
	}

	out := map[string][]string{}
	got := map[string]int{}
	for _, src := range sources {
		out[src.Name] = nil
	}

	for _, b := range blocks(merged) {
		if b.sentID == "" {
			return nil, fmt.Errorf("split: sentence block without sent_id near %q", firstLine(b.lines))
		}
		name, ok := owner[b.sentID]
		if !ok {
			return nil, fmt.Errorf("split: sent_id %s belongs to no source split", b.sentID)
		}
		if len(out[name]) > 0 {
			out[name] = append(out[name], "")
		}
		out[name] = append(out[name], b.lines...)
		got[name]++
	}

	for _, src := range sources {
		if got[src.Name] != want[src.Name] {
			return nil, fmt.Errorf("split %s: %d sentences in merged file, source has %d",
				src.Name, got[src.Name], want[src.Name])
		}
	}

	return out, nil
}

// blocks groups lines into sentence blocks on blank-line boundaries.
func blocks(lines []string) []block {
	var bs []block
	var cur block
	flush := func() {
		if len(cur.lines) > 0 {
			bs = append(bs, cur)
		}
		cur = block{}
	}
	for _, ln := range lines {
		if strings.TrimSpace(ln) == "" {
			flush()
			continue
		}
		if strings.HasPrefix(ln, "# sent_id = ") {
			cur.sentID = strings.TrimSpace(ln[len("# sent_id = "):])
		}
		cur.lines = append(cur.lines, ln)
	}
	flush()
	return bs
}

func sentIDs(lines []string) []string {
	var ids []string
	for _, ln := range lines {
		if strings.HasPrefix(ln, "# sent_id = ") {
			ids = append(ids, strings.TrimSpace(ln[len("# sent_id = "):]))
		}
	}
	return ids
}

func firstLine(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}
