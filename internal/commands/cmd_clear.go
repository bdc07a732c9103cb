package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/klippy-app/klippy/internal/printer"
)

type ClearCmd struct {
	flags *Flags
}

// NewClearCmd creates a new clear command
func NewClearCmd(flags *Flags) *ClearCmd {
	return &ClearCmd{flags: flags}
}

// Register adds the clear command to the application
func (cmd *ClearCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "clear",
		Usage:       "Remove all unpinned entries",
		UsageText:   "klippy clear",
		Description: "Removes every unpinned entry from the history. Pinned entries are kept.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *ClearCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	removed := cmd.flags.Service.ClearUnpinned(ctx)
	if removed == 0 {
		p.Infof("Nothing to clear")
		return nil
	}

	p.Successf("Removed %d unpinned entr%s", removed, plural(removed, "y", "ies"))
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
