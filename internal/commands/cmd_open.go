package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/klippy-app/klippy/internal/printer"
	"github.com/klippy-app/klippy/pkg/sysopen"
)

type OpenCmd struct {
	flags *Flags
}

// NewOpenCmd creates a new open command
func NewOpenCmd(flags *Flags) *OpenCmd {
	return &OpenCmd{flags: flags}
}

// Register adds the open command to the application
func (cmd *OpenCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "open",
		Usage:       "Open the data directory in the file browser",
		UsageText:   "klippy open",
		Description: "Opens the directory holding the history file in the platform's file browser.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *OpenCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if err := sysopen.Open(cmd.flags.Config.DataDir); err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}

	p.Successf("Opened %s", cmd.flags.Config.DataDir)
	return nil
}
