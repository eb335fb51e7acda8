package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/kresnik/sogovor/conllu"
	"github.com/kresnik/sogovor/stat"
)

func statCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "print corpus counts and annotation totals",
		ArgsUsage: "<corpus.conllu>...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("stat: no corpus files given")
			}

			hdl := stat.NewHandler()
			for _, path := range c.Args().Slice() {
				utts, err := conllu.ParseFile(path)
				if err != nil {
					return err
				}
				hdl.Aggregate(utts)
			}

			s := hdl.Get()
			fmt.Fprintf(ui.Out, "docs %d, utterances %d, tokens %d, tokens per utterance %d\n",
				s.NumDocs, s.NumUtterances, s.NumTokens, s.TokensPerUtteranceMean)
			fmt.Fprintf(ui.Out, "backchannel tags %d, coconstruct tags %d\n",
				s.Backchannels, s.Coconstructions)

			speakers := make([]string, 0, len(s.UtterancesPerSpeaker))
			for sp := range s.UtterancesPerSpeaker {
				speakers = append(speakers, sp)
			}
			sort.Strings(speakers)
			for _, sp := range speakers {
				fmt.Fprintf(ui.Out, "  %-20s %d utterances\n", sp, s.UtterancesPerSpeaker[sp])
			}
			return nil
		},
	}
}
