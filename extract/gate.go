package extract

// Verdict is the tagged outcome of one gate in a filter chain.
type Verdict int

const (
	Pass Verdict = iota
	Fail
	Warn
)

// GateResult records how a single gate judged a pair.
type GateResult struct {
	Gate    string
	Verdict Verdict
	Reason  string
}

// gate is one named check over a candidate pair. A nil-reason Pass is the
// common case; Fail carries the exclusion reason, Warn a soft flag.
type gate struct {
	name string
	eval func() GateResult
}

func pass(name string) GateResult {
	return GateResult{Gate: name, Verdict: Pass}
}

func fail(name, reason string) GateResult {
	return GateResult{Gate: name, Verdict: Fail, Reason: reason}
}

// runChain folds the gates. In hard mode the first Fail stops evaluation;
// in reporting mode every gate runs and all results are collected, so the
// caller can see every reason a pair was excluded.
func runChain(gates []gate, report bool) (ok bool, results []GateResult) {
	ok = true
	for _, g := range gates {
		res := g.eval()
		results = append(results, res)
		if res.Verdict == Fail {
			ok = false
			if !report {
				return ok, results
			}
		}
	}
	return ok, results
}
