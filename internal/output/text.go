package output

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// TextFormatter renders reports as an aligned table, one row per file.
// When Stats is true the base counts are appended after the metrics.
type TextFormatter struct {
	Stats bool
}

// Format writes a header row followed by one row per report.
func (f *TextFormatter) Format(w io.Writer, reports []Report, metrics []string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprint(tw, "FILE")
	for _, name := range metrics {
		fmt.Fprintf(tw, "\t%s", name)
	}
	if f.Stats {
		fmt.Fprint(tw, "\tsentences\twords\tsyllables\tletters")
	}
	fmt.Fprintln(tw)

	for _, r := range reports {
		fmt.Fprint(tw, r.Path)
		for _, name := range metrics {
			if v, ok := r.Scores[name]; ok {
				fmt.Fprintf(tw, "\t%.2f", v)
			} else {
				fmt.Fprint(tw, "\t-")
			}
		}
		if f.Stats {
			a := r.Aggregates
			fmt.Fprintf(tw, "\t%d\t%d\t%d\t%d", a.Sentences, a.Words, a.Syllables, a.Letters)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
