// Package export renders task snapshots as json, csv, or pdf.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"taskline/internal/store"

	"github.com/jung-kurt/gofpdf"
)

// Exporter renders the tasks of a store in an output format.
type Exporter struct{ st store.Store }

// NewExporter creates an Exporter over the given store.
func NewExporter(st store.Store) *Exporter { return &Exporter{st: st} }

// Export returns the rendered tasks. Supported formats are "json",
// "csv", and "pdf" (case-insensitive).
func (e *Exporter) Export(ctx context.Context, format string) ([]byte, error) {
	tasks, err := e.st.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		// Serialize an empty store as [] rather than null.
		tasks = []store.Task{}
	}

	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(tasks, "", "  ")
	case "csv":
		var b strings.Builder
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"number", "description", "completed"})
		for i, t := range tasks {
			_ = w.Write([]string{strconv.Itoa(i + 1), t.Description, strconv.FormatBool(t.Completed)})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	case "pdf":
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Task List")
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		for i, t := range tasks {
			line := fmt.Sprintf("%d. %s", i+1, t.Display())
			pdf.MultiCell(0, 6, line, "0", "L", false)
		}
		var buf strings.Builder
		if err := pdf.Output(io.Writer(&buf)); err != nil {
			return nil, err
		}
		return []byte(buf.String()), nil
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}
