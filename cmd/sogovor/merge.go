package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/kresnik/sogovor/conllu"
)

func mergeCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "merge",
		Usage:     "concatenate treebank split files into one corpus",
		ArgsUsage: "<split.conllu>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "out",
				Aliases:  []string{"o"},
				Usage:    "merged output file",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			paths := c.Args().Slice()
			if len(paths) == 0 {
				return errors.New("merge: no input files given")
			}

			f, err := os.Create(c.String("out"))
			if err != nil {
				return err
			}

			uiprogress.Start()
			bar := uiprogress.AddBar(len(paths))
			bar.AppendCompleted()
			bar.PrependElapsed()
			bar.AppendFunc(func(b *uiprogress.Bar) string {
				i := b.Current() - 1
				if i < 0 || i >= len(paths) {
					return ""
				}
				return filepath.Base(paths[i])
			})

			for i, path := range paths {
				if err := conllu.AppendFile(f, path, i == len(paths)-1); err != nil {
					uiprogress.Stop()
					f.Close()
					return err
				}
				bar.Incr()
			}
			uiprogress.Stop()

			fmt.Fprintf(ui.Out, "merged %d files into %s\n", len(paths), c.String("out"))
			return f.Close()
		},
	}
}
