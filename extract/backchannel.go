package extract

import (
	"fmt"
	"math"

	"github.com/kresnik/sogovor/corpus"
	"github.com/kresnik/sogovor/lexicon"
)

// BackchannelExtractor runs the backchannel hard filter chain and the
// signal/score engine over an utterance stream. The lexicon and exclusion
// list are read-only for the lifetime of the extractor.
type BackchannelExtractor struct {
	Lexicon    *lexicon.Lexicon
	Exclusions lexicon.Exclusions
	Config     Config
}

func NewBackchannelExtractor(lex *lexicon.Lexicon, excl lexicon.Exclusions, cfg Config) *BackchannelExtractor {
	return &BackchannelExtractor{Lexicon: lex, Exclusions: excl, Config: cfg}
}

// Extract walks the ordered stream, evaluates every adjacent cross-speaker
// pair and returns the surviving candidates in stream order, at most one
// per B utterance. The pass is deterministic: identical inputs yield an
// identical candidate slice.
func (e *BackchannelExtractor) Extract(stream []corpus.Utterance) []BackchannelCandidate {
	seen := map[string]bool{}
	var out []BackchannelCandidate

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
	return out
}

// evaluate runs the hard gates and, for survivors, the score engine.
func (e *BackchannelExtractor) evaluate(stream []corpus.Utterance, p Pair) (BackchannelCandidate, bool) {
	first, hasFirst := FirstContentToken(p.B)
	bContent := p.B.ContentTokens()

	gates := []gate{
		{"exclusion-list", func() GateResult {
			if e.Exclusions.Matches(p.B.Text) {
				return fail("exclusion-list", "B matches an excluded phrase")
			}
			return pass("exclusion-list")
		}},
		{"first-content", func() GateResult {
			if !hasFirst {
				return fail("first-content", "B has no non-punctuation token")
			}
			return pass("first-content")
		}},
		{"lexicon", func() GateResult {
			if !hasFirst || !e.Lexicon.Contains(first.Norm()) {
				return fail("lexicon", "first token not in lexicon")
			}
			return pass("lexicon")
		}},
		{"relation", func() GateResult {
			if !hasFirst {
				return fail("relation", "no first token")
			}
			if e.Lexicon.Category(first.Norm()) == lexicon.CategoryMultiwordStarter {
				// fixed two-word idioms: the starter may carry a
				// grammatical relation (case), but the next word
				// must be a lexicon entry too
				if len(bContent) < 2 {
					return fail("relation", "multiword starter without second token")
				}
				if !e.Lexicon.Contains(bContent[1].Norm()) {
					return fail("relation", fmt.Sprintf("multiword starter but %q not in lexicon", bContent[1].Form))
				}
				return pass("relation")
			}
			if first.Deprel == "root" || RelationStartsWith(first, "discourse") {
				return pass("relation")
			}
			return fail("relation", fmt.Sprintf("deprel=%s (not discourse/root)", first.Deprel))
		}},
		{"coverage", func() GateResult {
			if !AllTokensInLexicon(p.B, e.Lexicon) {
				return fail("coverage", "B continues beyond the backchannel vocabulary")
			}
			return pass("coverage")
		}},
		{"direction", func() GateResult {
			// A short fully-covered A next to a long B usually means
			// the pair is reversed: A is the backchannel, not B.
			if LooksLikeBackchannel(p.A, e.Lexicon) && len(bContent) > 4 {
				return fail("direction", "A looks like the backchannel and B is long")
			}
			return pass("direction")
		}},
	}

	if ok, _ := runChain(gates, e.Config.Report); !ok {
		return BackchannelCandidate{}, false
	}

	base, seed, reasons, ok := e.continuation(stream, p)
	if !ok {
		return BackchannelCandidate{}, false
	}

	cand := BackchannelCandidate{
		Doc:         p.B.Doc,
		A:           p.A,
		B:           p.B,
		FirstToken:  first,
		BTokenCount: len(bContent),
		Reasons:     reasons,
		Type:        e.Lexicon.BestCategory(p.B.NormForms()),

		ALooksLikeBackchannel: LooksLikeBackchannel(p.A, e.Lexicon),
		BHasContent:           HasContentStructure(p.B),
		BIsQuestion:           IsMultiTokenQuestion(p.B),
		AfterQuestion:         IsQuestionLike(p.A.Text),
		MinorFiller:           HasMinorFiller(p.B),

		HasVerbalBackchannel: HasVerbalBackchannel(p.B, e.Lexicon),
		HasDiscourseRelation: HasDiscourseRelation(p.B),
	}

	if cand.HasDiscourseRelation {
		cand.Reasons = append(cand.Reasons, "has discourse relation")
	}

	cand.Confidence, cand.Score = e.score(seed, base, &cand)

	if root, ok := p.A.Root(); ok {
		cand.ProposedRoot = Attachment{UtteranceID: p.A.ID, TokenID: root.ID}
	}
	if last, ok := LastContentToken(p.A); ok {
		cand.ProposedLastContent = Attachment{UtteranceID: p.A.ID, TokenID: last.ID}
	}

	return cand, true
}

// continuation determines the mutually exclusive continuation evidence for
// B at stream position p.BIdx, in priority order: immediate, windowed,
// near-end-of-document. Without evidence the candidate is dropped unless
// IncludeNoContinuation is set.
func (e *BackchannelExtractor) continuation(stream []corpus.Utterance, p Pair) (base int, seed Confidence, reasons []string, ok bool) {
	i := p.BIdx
	switch {
	case i+1 < len(stream) && stream[i+1].Doc == p.B.Doc && stream[i+1].Speaker == p.A.Speaker:
		return 85, High, []string{"A continues immediately after B"}, true
	case speakerReturnsWithin(stream, i, p.A.Speaker, p.B.Doc, e.Config.Window):
		return 70, Medium, []string{fmt.Sprintf("A continues within %d turns", e.Config.Window)}, true
	case nearEndOfDoc(stream, i, e.Config.EndK):
		return 35, Low, []string{"near end of conversation"}, true
	case e.Config.IncludeNoContinuation:
		return 35, Low, []string{"short B with lexicon match, no continuation proof"}, true
	}
	return 0, Low, nil, false
}

// lengthAdjust rewards minimal turns and penalizes length: backchannels are
// expected to be 1-3 tokens, anything longer is increasingly likely to be a
// substantive response.
func lengthAdjust(n int) float64 {
	switch n {
	case 1:
		return 10
	case 2:
		return 5
	case 3:
		return 0
	case 4:
		return -15
	case 5:
		return -25
	default:
		return -50
	}
}

// score derives the confidence label and the 0-100 numeric score from the
// continuation seed and the candidate's warning flags.
func (e *BackchannelExtractor) score(seed Confidence, base int, c *BackchannelCandidate) (Confidence, int) {
	weight := 0.0
	for _, flag := range []bool{c.BHasContent, c.BIsQuestion, c.AfterQuestion, c.ALooksLikeBackchannel} {
		if flag {
			weight++
		}
	}
	if c.MinorFiller {
		weight += 0.5
	}

	score := float64(base) + lengthAdjust(c.BTokenCount) - 15*weight
	if c.AfterQuestion {
		// an answer to a question is definitionally not a backchannel
		score -= 50
	}

	label := seed
	if c.BTokenCount > 3 && label == High {
		label = Medium
	}
	switch {
	case weight >= 2:
		label = Low
	case weight >= 1:
		label = label.atMost(Medium)
	}
	if c.BIsQuestion || c.AfterQuestion {
		label = Low
	}

	n := int(math.Round(score))
	if n < 0 {
		n = 0
	} else if n > 100 {
		n = 100
	}
	return label, n
}
