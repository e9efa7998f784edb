package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskline/internal/config"
	"taskline/internal/exitcode"
	"taskline/internal/store"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskline help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskline                                       Open the interactive menu
  taskline menu [common flags]                   Open the interactive menu
  taskline list [common flags]                   List tasks
  taskline add [common flags] <description...>   Add a task
  taskline done [common flags] <number>          Mark a task completed
  taskline export [common flags] [--format <json|csv|pdf>] [--out <path>]
  taskline help
  taskline version

Common flags:
  --data <dir>     Override data directory
  --store <kind>   Store kind: file, sqlite, nutsdb, memory
  --file <path>    Override task file path (file store only)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
