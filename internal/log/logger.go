// Package log provides the verbose diagnostic logger behind --verbose.
package log

import (
	"fmt"
	"io"
)

// Logger writes diagnostic messages when Enabled is true. Output goes to
// the configured writer (typically stderr), each line prefixed with the
// program name.
type Logger struct {
	Enabled bool
	Prefix  string
	W       io.Writer
}

// Printf writes a formatted message to W when Enabled is true.
// It is a no-op when Enabled is false.
func (l *Logger) Printf(format string, args ...any) {
	if !l.Enabled {
		return
	}
	if l.Prefix != "" {
		_, _ = fmt.Fprintf(l.W, "%s: ", l.Prefix)
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}
