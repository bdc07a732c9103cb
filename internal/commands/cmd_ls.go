package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/klippy-app/klippy/internal/printer"
)

type LsCmd struct {
	flags *Flags
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "ls",
		Usage:       "List clipboard history",
		UsageText:   "klippy ls [--search query]",
		Description: "Displays a table of retained clipboard entries with their time, pin state, and preview.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "search",
				Aliases: []string{"s"},
				Usage:   "filter entries by case-insensitive substring",
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	entries := cmd.flags.Service.Filtered(c.String("search"))
	if len(entries) == 0 {
		p.Infof("No clipboard entries")
		return nil
	}

	out := c.Root().Writer
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TIME\tPIN\tPREVIEW")

	for _, e := range entries {
		pin := ""
		if e.Pinned {
			pin = printer.Pin
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", e.FormattedTime(), pin, e.Preview())
	}

	return w.Flush()
}
