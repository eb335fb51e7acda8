package extract

const (
	// DefaultWindow bounds the look-ahead for windowed continuation
	// evidence. Fixed and small to keep the pass O(n).
	DefaultWindow = 5

	// DefaultEndK: B within the last K utterances of its document counts
	// as weak near-end continuation evidence.
	DefaultEndK = 2
)

// Config carries the extraction parameters. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// Window is the look-ahead bound (in turns) for the windowed
	// continuation check.
	Window int

	// EndK is the near-end-of-document margin.
	EndK int

	// IncludeNoContinuation keeps candidates lacking any continuation
	// evidence instead of dropping them.
	IncludeNoContinuation bool

	// Report switches the filter chains from hard mode (first failure
	// stops evaluation) to reporting mode, where every gate runs and all
	// failure reasons are collected. Used for lexicon tuning diagnostics;
	// the emitted candidate set is identical in both modes.
	Report bool
}

// DefaultConfig returns the documented default parameters.
func DefaultConfig() Config {
	return Config{
		Window: DefaultWindow,
		EndK:   DefaultEndK,
	}
}
