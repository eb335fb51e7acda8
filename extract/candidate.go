package extract

import "github.com/kresnik/sogovor/corpus"

// Confidence is the ordinal certainty label of a candidate.
type Confidence string

const (
	High   Confidence = "HIGH"
	Medium Confidence = "MEDIUM"
	Low    Confidence = "LOW"
)

// rank orders confidence labels so downgrades can be expressed as min().
func (c Confidence) rank() int {
	switch c {
	case High:
		return 3
	case Medium:
		return 2
	default:
		return 1
	}
}

// atMost caps c at the given label.
func (c Confidence) atMost(cap Confidence) Confidence {
	if c.rank() > cap.rank() {
		return cap
	}
	return c
}

// Attachment locates a token within an utterance, the proposed link target
// for the reviewed annotation. Advisory only; the governor is never
// finalized automatically.
type Attachment struct {
	UtteranceID string
	TokenID     int
}

// IsZero reports whether no attachment could be proposed (e.g. A without a
// root token).
func (a Attachment) IsZero() bool {
	return a.UtteranceID == "" && a.TokenID == 0
}

// BackchannelCandidate is one (A, B) pair that survived the backchannel
// hard filter chain, with all soft signals computed. Created once, read-only
// thereafter; human decisions live in separate records keyed by Key().
type BackchannelCandidate struct {
	Doc string

	A corpus.Utterance
	B corpus.Utterance

	Confidence Confidence
	Score      int

	// Type is the lexicon category of the matched word(s), picked by the
	// fixed priority order.
	Type string

	FirstToken corpus.Token

	BTokenCount int

	// Reasons are the continuation-evidence notes for the reviewer.
	Reasons []string

	// Warning flags.
	ALooksLikeBackchannel bool
	BHasContent           bool
	BIsQuestion           bool
	AfterQuestion         bool
	MinorFiller           bool

	// Positive soft signals.
	HasVerbalBackchannel bool
	HasDiscourseRelation bool

	ProposedRoot        Attachment
	ProposedLastContent Attachment
}

// Key identifies the candidate: document plus both utterance ids.
func (c BackchannelCandidate) Key() string {
	return c.Doc + "|" + c.A.ID + "|" + c.B.ID
}

// CoconstructionCandidate is one (A, B) pair where B may syntactically
// complete A. All fields beyond the hard filters are triage signals for the
// reviewer, never filters.
type CoconstructionCandidate struct {
	Doc string

	A corpus.Utterance
	B corpus.Utterance

	BTokenCount int

	BRootUPos string
	BRootForm string

	// OrphanTail: A's final content tokens include an incomplete-dependency
	// marker relation.
	OrphanTail bool

	AContinues  bool
	AIsQuestion bool

	BFirstToken            string
	BStartsBackchannelLike bool
	BHasQuestionMark       bool
	BRootIsIntjPart        bool
}

// Key identifies the candidate: document plus both utterance ids.
func (c CoconstructionCandidate) Key() string {
	return c.Doc + "|" + c.A.ID + "|" + c.B.ID
}
