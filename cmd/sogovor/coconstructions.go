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

func coconstructionsCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "coconstructions",
		Usage:     "extract co-construction candidates into a review sheet",
		ArgsUsage: "<corpus.conllu>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lexicon",
				Aliases:  []string{"l"},
				Usage:    "backchannel lexicon file (word|category per line)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   "coconstruction_candidates.csv",
				Usage:   "candidate sheet output file",
			},
			&cli.BoolFlag{
				Name:  "report",
				Usage: "evaluate all gates per pair instead of stopping at the first failure",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("coconstructions: expected exactly one corpus file")
			}

			lex, err := lexicon.Load(c.String("lexicon"))
			if err != nil {
				return err
			}

			stream, err := conllu.ParseFile(c.Args().First())
			if err != nil {
				return err
			}

			cfg := extract.DefaultConfig()
			cfg.Report = c.Bool("report")

			// utterances already tagged as backchannels never open a
			// co-construction
			annotated := extract.AnnotatedBackchannels(stream)

			cands := extract.NewCoconstructionExtractor(lex, annotated, cfg).Extract(stream)

			f, err := os.Create(c.String("out"))
			if err != nil {
				return err
			}
			if err := sheet.WriteCoconstructions(f, cands); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(ui.Out, "%d co-construction candidates -> %s\n", len(cands), c.String("out"))
			return nil
		},
	}
}
