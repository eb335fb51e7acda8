package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/kresnik/sogovor/conllu"
	"github.com/kresnik/sogovor/extract"
	"github.com/kresnik/sogovor/lexicon"
	"github.com/kresnik/sogovor/sheet"
)

func backchannelsCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "backchannels",
		Usage:     "extract backchannel candidates into a review sheet",
		ArgsUsage: "<corpus.conllu>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lexicon",
				Aliases:  []string{"l"},
				Usage:    "backchannel lexicon file (word|category per line)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "exclusions",
				Usage: "file with excluded phrases, one per line",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   "backchannel_candidates.csv",
				Usage:   "candidate sheet output file",
			},
			&cli.IntFlag{
				Name:  "window",
				Value: extract.DefaultWindow,
				Usage: "turns to look ahead for the speaker returning",
			},
			&cli.IntFlag{
				Name:  "end-k",
				Value: extract.DefaultEndK,
				Usage: "utterances from the document end that still count as closing",
			},
			&cli.BoolFlag{
				Name:  "include-no-continuation",
				Usage: "keep candidates without continuation evidence, as LOW",
			},
			&cli.BoolFlag{
				Name:  "report",
				Usage: "evaluate all gates per pair instead of stopping at the first failure",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("backchannels: expected exactly one corpus file")
			}

			lex, err := lexicon.Load(c.String("lexicon"))
			if err != nil {
				return err
			}

			var excl lexicon.Exclusions
			if path := c.String("exclusions"); path != "" {
				excl, err = lexicon.LoadExclusions(path)
				if err != nil {
					return err
				}
			}

			stream, err := conllu.ParseFile(c.Args().First())
			if err != nil {
				return err
			}

			cfg := extract.Config{
				Window:                c.Int("window"),
				EndK:                  c.Int("end-k"),
				IncludeNoContinuation: c.Bool("include-no-continuation"),
				Report:                c.Bool("report"),
			}

			cands := extract.NewBackchannelExtractor(lex, excl, cfg).Extract(stream)

			f, err := os.Create(c.String("out"))
			if err != nil {
				return err
			}
			if err := sheet.WriteBackchannels(f, cands); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(ui.Out, "%d backchannel candidates -> %s\n", len(cands), c.String("out"))
			return nil
		},
	}
}
