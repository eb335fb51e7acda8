package main

import (
	"errors"
	"fmt"
	"os/user"

	"github.com/urfave/cli/v2"

	"github.com/kresnik/sogovor/conllu"
	"github.com/kresnik/sogovor/extract"
	"github.com/kresnik/sogovor/lexicon"
	"github.com/kresnik/sogovor/render"
	"github.com/kresnik/sogovor/review"
)

func reviewCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "review",
		Usage:     "review candidates interactively and record votes",
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
				Name:  "kind",
				Value: review.KindBackchannel,
				Usage: "candidate kind: backchannel or coconstruction",
			},
			&cli.StringFlag{
				Name:  "db",
				Value: "sogovor_votes.db",
				Usage: "vote store (SQLite file, or .jsonl for the file store)",
			},
			&cli.StringFlag{
				Name:  "annotator",
				Usage: "annotator name recorded with each vote (default: OS user)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("review: expected exactly one corpus file")
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

			var items []review.Item
			switch c.String("kind") {
			case review.KindBackchannel:
				cands := extract.NewBackchannelExtractor(lex, excl, extract.DefaultConfig()).Extract(stream)
				items = review.BackchannelItems(cands)
			case review.KindCoconstruction:
				annotated := extract.AnnotatedBackchannels(stream)
				cands := extract.NewCoconstructionExtractor(lex, annotated, extract.DefaultConfig()).Extract(stream)
				items = review.CoconstructionItems(cands)
			default:
				return fmt.Errorf("review: unknown kind %q", c.String("kind"))
			}

			repo, err := NewVoteRepository(c.String("db"))
			if err != nil {
				return err
			}
			defer repo.Close()

			annotator := c.String("annotator")
			if annotator == "" {
				if u, err := user.Current(); err == nil {
					annotator = u.Username
				} else {
					annotator = "anonymous"
				}
			}

			r := render.NewText(ui.Out, !c.Bool("no-color"))
			return review.NewHandler(repo, r, annotator).Run(items)
		},
	}
}
