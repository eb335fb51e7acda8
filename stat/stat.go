// Package stat aggregates corpus-level counts used by the stat command.
package stat

import (
	"strings"

	"github.com/kresnik/sogovor/corpus"
)

type Handler struct {
	stats Stats
	docs  map[string]bool
}

type Stats struct {
	NumUtterances          int
	NumTokens              int
	NumDocs                int
	NumSpeakers            int
	TokensPerUtteranceMean int
	TokensPerUtteranceDis  map[int]int
	UtterancesPerSpeaker   map[string]int
	Backchannels           int
	Coconstructions        int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		TokensPerUtteranceDis: map[int]int{},
		UtterancesPerSpeaker:  map[string]int{},
	}
	return &Handler{
		stats: stats,
		docs:  map[string]bool{},
	}
}

func (h *Handler) Aggregate(utts []corpus.Utterance) {
	h.stats.NumUtterances += len(utts)
	for _, u := range utts {
		h.docs[u.Doc] = true
		h.stats.NumTokens += len(u.Tokens)
		h.stats.TokensPerUtteranceDis[len(u.Tokens)]++
		h.stats.UtterancesPerSpeaker[u.Speaker]++

		for _, t := range u.Tokens {
			if strings.Contains(t.Misc, "Backchannel=") {
				h.stats.Backchannels++
			}
			if strings.Contains(t.Misc, "Coconstruct=") {
				h.stats.Coconstructions++
			}
		}
	}

	h.stats.NumDocs = len(h.docs)
	h.stats.NumSpeakers = len(h.stats.UtterancesPerSpeaker)
	if h.stats.NumUtterances > 0 {
		h.stats.TokensPerUtteranceMean = h.stats.NumTokens / h.stats.NumUtterances
	}
}
