package main

import (
	"github.com/urfave/cli/v2"

	"github.com/kresnik/sogovor/render"
)

func votesCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "votes",
		Usage: "list recorded votes and per-candidate tallies",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Value: "sogovor_votes.db",
				Usage: "vote store (SQLite file, or .jsonl for the file store)",
			},
			&cli.StringFlag{
				Name:  "kind",
				Usage: "restrict to one candidate kind",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "export votes as JSON instead of the table",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Action: func(c *cli.Context) error {
			repo, err := NewVoteRepository(c.String("db"))
			if err != nil {
				return err
			}
			defer repo.Close()

			votes, err := repo.All(c.String("kind"))
			if err != nil {
				return err
			}

			if c.Bool("json") {
				return render.NewJSONRenderer(ui.Out).Votes(votes)
			}

			tallies, err := repo.Tallies(c.String("kind"))
			if err != nil {
				return err
			}

			render.NewText(ui.Out, !c.Bool("no-color")).Votes(votes, tallies)
			return nil
		},
	}
}
