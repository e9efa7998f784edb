package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskline/internal/config"
	"taskline/internal/console"
	"taskline/internal/exitcode"
	"taskline/internal/store"
)

func init() {
	Register(&MenuCmd{})
}

// MenuCmd implements the interactive menu command.
// Running taskline with no arguments dispatches here.
type MenuCmd struct{}

func (c *MenuCmd) Name() string      { return "menu" }
func (c *MenuCmd) Aliases() []string { return nil }
func (c *MenuCmd) Synopsis() string  { return "Open the interactive menu" }
func (c *MenuCmd) Usage() string     { return "taskline menu" }
func (c *MenuCmd) NeedsStore() bool  { return true }

func (c *MenuCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MenuCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	if err := console.New(st, in, out, errOut).Run(ctx); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
