package tui

import (
	"fmt"
	"io"
)

// runFallback handles non-TTY execution by pointing at the commands that
// work without a terminal.
func runFallback(w io.Writer) error {
	fmt.Fprintln(w, "Non-TTY environment detected.")
	fmt.Fprintln(w, "Use 'yume breathe' for a headless session or 'yume ground' for the grounding exercise.")
	return nil
}
