package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"taskline/internal/config"
	"taskline/internal/exitcode"
	"taskline/internal/export"
	"taskline/internal/store"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	format  string
	outPath string
}

// SetFormat sets the export format (for testing).
func (c *ExportCmd) SetFormat(format string) {
	c.format = format
}

// SetOutPath sets the output file path (for testing).
func (c *ExportCmd) SetOutPath(path string) {
	c.outPath = path
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Export tasks as json, csv, or pdf" }
func (c *ExportCmd) Usage() string {
	return "taskline export [--format <json|csv|pdf>] [--out <path>]"
}
func (c *ExportCmd) NeedsStore() bool { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "json", "")
	fs.StringVar(&c.format, "f", "json", "")
	fs.StringVar(&c.outPath, "out", "", "")
	fs.StringVar(&c.outPath, "o", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	data, err := export.NewExporter(st).Export(ctx, c.format)
	if err != nil {
		if strings.Contains(err.Error(), "unknown format") {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.StoreError
	}

	// No output path -> write to stdout
	if c.outPath == "" {
		if _, err := out.Write(data); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.StoreError
		}
		return exitcode.Success
	}

	if err := os.WriteFile(c.outPath, data, 0644); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StoreError
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "wrote %s\n", c.outPath)
	}
	return exitcode.Success
}
