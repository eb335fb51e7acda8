package extract

import (
	"sort"
	"strings"

	"github.com/kresnik/sogovor/corpus"
	"github.com/kresnik/sogovor/lexicon"
)

// noisyStarters are filler-like forms that open noisy B turns but are not
// necessarily lexicon entries. Merged with the lexicon for the
// starts-backchannel-like signal.
var noisyStarters = map[string]bool{
	"eee": true, "eem": true,
	"hm": true, "hmm": true,
	"uh": true, "uhh": true,
}

// CoconstructionExtractor finds pairs where B may syntactically complete an
// unfinished A. The chain is deliberately high-recall: beyond the filler
// exclusion no syntactic or lexicon gate applies, because the completion
// judgment itself is left to the human reviewer.
type CoconstructionExtractor struct {
	Lexicon *lexicon.Lexicon

	// AnnotatedBackchannels holds B sentence ids that already carry a
	// backchannel tag; such turns are not co-construction material.
	AnnotatedBackchannels map[string]bool

	Config Config
}

func NewCoconstructionExtractor(lex *lexicon.Lexicon, annotated map[string]bool, cfg Config) *CoconstructionExtractor {
	return &CoconstructionExtractor{
		Lexicon:               lex,
		AnnotatedBackchannels: annotated,
		Config:                cfg,
	}
}

// Extract returns the surviving candidates sorted by B token count
// (shortest first, the original review order), one per B utterance.
func (e *CoconstructionExtractor) Extract(stream []corpus.Utterance) []CoconstructionCandidate {
	seen := map[string]bool{}
	var out []CoconstructionCandidate

	for _, p := range Pairs(stream) {
		cand, ok := e.evaluate(stream, p)
		if !ok {
			continue
		}
		if seen[cand.B.ID] {
			continue
		}
		seen[cand.B.ID] = true
		out = append(out, cand)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BTokenCount < out[j].BTokenCount
	})
	return out
}

func (e *CoconstructionExtractor) evaluate(stream []corpus.Utterance, p Pair) (CoconstructionCandidate, bool) {
	bContent := p.B.ContentTokens()

	gates := []gate{
		{"a-unfinished", func() GateResult {
			if EndsFinalPunct(p.A) {
				return fail("a-unfinished", "A is closed by final punctuation")
			}
			return pass("a-unfinished")
		}},
		{"b-not-backchannel", func() GateResult {
			if e.AnnotatedBackchannels[p.B.ID] {
				return fail("b-not-backchannel", "B already carries a backchannel tag")
			}
			return pass("b-not-backchannel")
		}},
		{"b-has-content", func() GateResult {
			if len(bContent) == 0 {
				return fail("b-has-content", "B has no non-punctuation token")
			}
			return pass("b-has-content")
		}},
		{"b-not-filler-only", func() GateResult {
			for _, t := range bContent {
				if !IsFiller(t) {
					return pass("b-not-filler-only")
				}
			}
			return fail("b-not-filler-only", "B consists only of filler tokens")
		}},
		{"b-first-not-filler", func() GateResult {
			if len(bContent) > 0 && IsFiller(bContent[0]) {
				return fail("b-first-not-filler", "B starts with a filler")
			}
			return pass("b-first-not-filler")
		}},
	}

	if ok, _ := runChain(gates, e.Config.Report); !ok {
		return CoconstructionCandidate{}, false
	}

	cand := CoconstructionCandidate{
		Doc:         p.A.Doc,
		A:           p.A,
		B:           p.B,
		BTokenCount: len(bContent),

		OrphanTail:  orphanTail(p.A),
		AIsQuestion: IsQuestionLike(p.A.Text),

		BFirstToken:      FirstTextToken(p.B.Text),
		BHasQuestionMark: IsQuestionLike(p.B.Text),
	}

	if p.BIdx+1 < len(stream) {
		c := stream[p.BIdx+1]
		cand.AContinues = c.Doc == p.A.Doc && c.Speaker == p.A.Speaker
	}

	if root, ok := p.B.Root(); ok {
		cand.BRootUPos = root.UPos
		cand.BRootForm = root.Form
		cand.BRootIsIntjPart = root.UPos == "INTJ" || root.UPos == "PART"
	}

	cand.BStartsBackchannelLike = cand.BFirstToken != "" &&
		(e.Lexicon.Contains(cand.BFirstToken) || noisyStarters[cand.BFirstToken])

	return cand, true
}

// orphanTail reports whether A's final three content tokens include an
// orphan relation, the treebank's marker for elided structure. A strong
// hint that A was cut off mid-dependency.
func orphanTail(u corpus.Utterance) bool {
	ct := u.ContentTokens()
	start := len(ct) - 3
	if start < 0 {
		start = 0
	}
	for _, t := range ct[start:] {
		if t.Deprel == "orphan" {
			return true
		}
	}
	return false
}

// AnnotatedBackchannels scans an already-annotated stream and collects the
// sentence ids whose tokens carry a Backchannel= feature in MISC.
func AnnotatedBackchannels(stream []corpus.Utterance) map[string]bool {
	ids := map[string]bool{}
	for _, u := range stream {
		for _, t := range u.Tokens {
			if strings.Contains(t.Misc, "Backchannel=") {
				ids[u.ID] = true
				break
			}
		}
	}
	return ids
}
