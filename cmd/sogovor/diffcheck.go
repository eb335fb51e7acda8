package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/kresnik/sogovor/conllu"
	"github.com/kresnik/sogovor/diffcheck"
)

func diffcheckCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "diffcheck",
		Usage:     "verify that annotated files differ from their sources only in MISC tags",
		ArgsUsage: "<src.conllu> <out.conllu> [<src.conllu> <out.conllu>...]",
		Action: func(c *cli.Context) error {
			args := c.Args().Slice()
			if len(args) == 0 || len(args)%2 != 0 {
				return errors.New("diffcheck: expected src/out file pairs")
			}

			failed := 0
			for i := 0; i < len(args); i += 2 {
				srcPath, outPath := args[i], args[i+1]

				src, err := conllu.ReadLines(srcPath)
				if err != nil {
					return err
				}
				out, err := conllu.ReadLines(outPath)
				if err != nil {
					return err
				}

				report := diffcheck.Compare(src, out)
				report.Render(ui.Out, filepath.Base(outPath), srcPath, outPath)
				if !report.OK() {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("diffcheck: %d file pair(s) with unexpected changes", failed)
			}
			fmt.Fprintln(ui.Out, "all pairs clean")
			return nil
		},
	}
}
