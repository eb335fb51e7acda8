package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "sogovor: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:      "sogovor",
		Usage:     "backchannel and co-construction annotation for spoken treebanks",
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		Commands: []*cli.Command{
			mergeCommand(ui),
			backchannelsCommand(ui),
			coconstructionsCommand(ui),
			applyBackchannelsCommand(ui),
			applyCoconstructionsCommand(ui),
			splitCommand(ui),
			diffcheckCommand(ui),
			reviewCommand(ui),
			votesCommand(ui),
			statCommand(ui),
			versionCommand(ui),
		},
	}
}
