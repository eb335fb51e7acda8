package extract

import "github.com/kresnik/sogovor/corpus"

// Pair is one adjacent (A, B) utterance pair with a speaker change inside
// the same document. AIdx/BIdx index into the original stream so the score
// engine can run its bounded look-ahead scans.
type Pair struct {
	AIdx, BIdx int
	A, B       corpus.Utterance
}

// Pairs walks the ordered stream and yields every adjacent cross-speaker
// pair. Pairing never crosses a document boundary and is purely positional;
// no time-alignment or overlap inference is attempted. Utterances missing a
// sentence id or speaker id cannot be paired and are skipped.
func Pairs(stream []corpus.Utterance) []Pair {
	var pairs []Pair
	for i := 1; i < len(stream); i++ {
		a, b := stream[i-1], stream[i]
		if a.Doc != b.Doc {
			continue
		}
		if a.ID == "" || b.ID == "" {
			continue
		}
		if a.Speaker == "" || b.Speaker == "" {
			continue
		}
		if a.Speaker == b.Speaker {
			continue
		}
		pairs = append(pairs, Pair{AIdx: i - 1, BIdx: i, A: a, B: b})
	}
	return pairs
}

// speakerReturnsWithin reports whether speaker reappears in
// stream[from+1 .. from+window], without crossing a document boundary.
func speakerReturnsWithin(stream []corpus.Utterance, from int, speaker, doc string, window int) bool {
	for j := from + 1; j <= from+window && j < len(stream); j++ {
		if stream[j].Doc != doc {
			return false
		}
		if stream[j].Speaker == speaker {
			return true
		}
	}
	return false
}

// nearEndOfDoc reports whether position i is within the last k utterances
// of its document.
func nearEndOfDoc(stream []corpus.Utterance, i, k int) bool {
	doc := stream[i].Doc
	last := i
	for j := i; j < len(stream) && stream[j].Doc == doc; j++ {
		last = j
	}
	return last-i <= k
}
