package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/kresnik/sogovor/annotate"
	"github.com/kresnik/sogovor/conllu"
	"github.com/kresnik/sogovor/sheet"
)

func applyCoconstructionsCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "apply-coconstructions",
		Usage:     "write accepted co-construction decisions into the corpus MISC column",
		ArgsUsage: "<corpus.conllu> <decisions.csv>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "out",
				Aliases:  []string{"o"},
				Usage:    "annotated output file",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("apply-coconstructions: expected <corpus.conllu> <decisions.csv>")
			}

			lines, err := conllu.ReadLines(c.Args().Get(0))
			if err != nil {
				return err
			}

			df, err := os.Open(c.Args().Get(1))
			if err != nil {
				return err
			}
			decisions, err := sheet.ReadCoconstructionDecisions(df)
			df.Close()
			if err != nil {
				return err
			}

			out, stats, err := annotate.ApplyCoconstructions(lines, decisions)
			if err != nil {
				return err
			}
			if err := conllu.WriteLines(c.String("out"), out); err != nil {
				return err
			}

			fmt.Fprintf(ui.Out, "%d accepted, %d applied, %d already tagged -> %s\n",
				stats.Decisions, stats.Applied, stats.AlreadyTagged, c.String("out"))
			return nil
		},
	}
}
