package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/kresnik/sogovor/conllu"
	"github.com/kresnik/sogovor/split"
)

func splitCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "split",
		Usage:     "split an annotated corpus back into its source split files",
		ArgsUsage: "<annotated.conllu>",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "src",
				Usage:    "original split file, repeat per split (membership source)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "out-dir",
				Aliases: []string{"d"},
				Value:   ".",
				Usage:   "directory for the split output files",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("split: expected exactly one annotated corpus file")
			}

			merged, err := conllu.ReadLines(c.Args().First())
			if err != nil {
				return err
			}

			var sources []split.Source
			for _, path := range c.StringSlice("src") {
				lines, err := conllu.ReadLines(path)
				if err != nil {
					return err
				}
				sources = append(sources, split.Source{
					Name:  filepath.Base(path),
					Lines: lines,
				})
			}

			parts, err := split.Partition(merged, sources)
			if err != nil {
				return err
			}

			for _, src := range sources {
				out := filepath.Join(c.String("out-dir"), src.Name)
				if err := conllu.WriteLines(out, parts[src.Name]); err != nil {
					return err
				}
				fmt.Fprintf(ui.Out, "%s: %d lines\n", out, len(parts[src.Name]))
			}
			return nil
		},
	}
}
