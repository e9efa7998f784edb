// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
)

// FormatTask formats a numbered task line for the list command.
// Format: "{N:>4}  {DISPLAY}\n" (4-wide right-aligned number, two
// spaces, the store's display string).
func FormatTask(w io.Writer, num int, display string) {
	fmt.Fprintf(w, "%4d  %s\n", num, display)
}
