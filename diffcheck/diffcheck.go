// Package diffcheck verifies the integrity contract between a source
// corpus and its annotated final: the only permitted difference is the
// addition of Backchannel= or Coconstruct= features to the MISC column of
// token lines. Any other difference is reported as a hard failure.
package diffcheck

import (
	"fmt"
	"io"
	"strings"
)

const maxSamples = 8

// Sample is one unexpected line difference kept for the report.
type Sample struct {
	Line int
	Kind string
	Src  string
	Out  string
}

// Report is the outcome of comparing one file pair.
type Report struct {
	SrcLines int
	OutLines int
	SrcSents int
	OutSents int

	DiffLines        int
	MiscOnly         int
	AddedBackchannel int
	AddedCoconstruct int

	LineCountMismatch      int
	MetaOrBlankChanged     int
	NonTokenChanged        int
	TokenColsChanged       int
	MiscOtherChange        int
	SentIDSequenceMismatch int

	Samples []Sample
}

// Unexpected sums every difference class that violates the contract.
func (r Report) Unexpected() int {
	return r.LineCountMismatch +
		r.MetaOrBlankChanged +
		r.NonTokenChanged +
		r.TokenColsChanged +
		r.MiscOtherChange +
		r.SentIDSequenceMismatch
}

// OK reports whether the pair satisfies the integrity contract.
func (r Report) OK() bool {
	return r.Unexpected() == 0
}

// Compare diffs src against out line by line.
func Compare(src, out []string) Report {
	r := Report{SrcLines: len(src), OutLines: len(out)}

	srcSIDs := sentIDs(src)
	outSIDs := sentIDs(out)
	r.SrcSents = len(srcSIDs)
	r.OutSents = len(outSIDs)
	if !equalStrings(srcSIDs, outSIDs) {
		r.SentIDSequenceMismatch++
	}

	maxlen := len(src)
	if len(out) > maxlen {
		maxlen = len(out)
	}

	for i := 0; i < maxlen; i++ {
		var a, b string
		aOK, bOK := i < len(src), i < len(out)
		if aOK {
			a = src[i]
		}
		if bOK {
			b = out[i]
		}
		if aOK && bOK && a == b {
			continue
		}

		r.DiffLines++

		if !aOK || !bOK {
			r.LineCountMismatch++
			r.sample(i, "line_count_mismatch", a, b)
			continue
		}
		if strings.HasPrefix(a, "#") || strings.HasPrefix(b, "#") || a == "" || b == "" {
			r.MetaOrBlankChanged++
			r.sample(i, "meta_or_blank_changed", a, b)
			continue
		}

		ac := strings.Split(a, "\t")
		bc := strings.Split(b, "\t")
		if len(ac) != 10 || len(bc) != 10 {
			r.NonTokenChanged++
			r.sample(i, "non_10col_token_changed", a, b)
			continue
		}

		structuralEqual := true
		for j := 0; j < 9; j++ {
			if ac[j] != bc[j] {
				structuralEqual = false
				break
			}
		}
		if !structuralEqual || ac[9] == bc[9] {
			r.TokenColsChanged++
			r.sample(i, "token_cols_0_8_changed", a, b)
			continue
		}

		r.MiscOnly++
		addedBC := strings.Contains(bc[9], "Backchannel=") && !strings.Contains(ac[9], "Backchannel=")
		addedCC := strings.Contains(bc[9], "Coconstruct=") && !strings.Contains(ac[9], "Coconstruct=")
		if addedBC {
			r.AddedBackchannel++
		}
		if addedCC {
			r.AddedCoconstruct++
		}
		if !addedBC && !addedCC {
			r.MiscOtherChange++
			r.sample(i, "misc_other_change", a, b)
		}
	}

	return r
}

func (r *Report) sample(i int, kind, a, b string) {
	if len(r.Samples) >= maxSamples {
		return
	}
	r.Samples = append(r.Samples, Sample{Line: i + 1, Kind: kind, Src: a, Out: b})
}

// Render writes the human-readable report section for one file pair.
func (r Report) Render(w io.Writer, name, srcPath, outPath string) {
	status := "PASS"
	if !r.OK() {
		status = "FAIL"
	}
	fmt.Fprintf(w, "[%s]\n", name)
	fmt.Fprintf(w, "- src: %s\n", srcPath)
	fmt.Fprintf(w, "- out: %s\n", outPath)
	fmt.Fprintf(w, "- line counts src/out: %d/%d\n", r.SrcLines, r.OutLines)
	fmt.Fprintf(w, "- sentence counts src/out: %d/%d\n", r.SrcSents, r.OutSents)
	fmt.Fprintf(w, "- sent_id sequence identical: %t\n", r.SentIDSequenceMismatch == 0)
	fmt.Fprintf(w, "- total diff lines: %d\n", r.DiffLines)
	fmt.Fprintf(w, "- misc-only changes: %d\n", r.MiscOnly)
	fmt.Fprintf(w, "- added Backchannel lines: %d\n", r.AddedBackchannel)
	fmt.Fprintf(w, "- added Coconstruct lines: %d\n", r.AddedCoconstruct)
	fmt.Fprintf(w, "- unexpected changes: %d\n", r.Unexpected())
	fmt.Fprintf(w, "- status: %s\n", status)
	if len(r.Samples) > 0 {
		fmt.Fprintf(w, "- unexpected samples:\n")
		for _, s := range r.Samples {
			fmt.Fprintf(w, "  - line %d [%s]\n", s.Line, s.Kind)
			fmt.Fprintf(w, "    src: %s\n", s.Src)
			fmt.Fprintf(w, "    out: %s\n", s.Out)
		}
	}
	fmt.Fprintln(w)
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

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
