// Package output renders score reports as text or JSON.
package output

import (
	"io"

	"github.com/prosegrade/prosegrade/internal/stats"
)

// Report holds one scored document.
type Report struct {
	Path       string
	Aggregates stats.Aggregates
	Scores     map[string]float64
}

// Formatter defines the interface for rendering score reports. The
// metrics slice fixes column order; reports without a score for a metric
// render a dash.
type Formatter interface {
	Format(w io.Writer, reports []Report, metrics []string) error
}
