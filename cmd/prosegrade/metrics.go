package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"github.com/prosegrade/prosegrade/internal/catalog"
	"github.com/prosegrade/prosegrade/internal/readability"
)

const metricsUsageText = `Usage: prosegrade metrics <command> [flags]

Commands:
  list        List metrics, optionally for one language
  languages   List languages with registered coefficient tables
`

func runMetrics(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, metricsUsageText)
		return 0
	}

	switch args[0] {
	case "list":
		return runMetricsList(args[1:])
	case "languages":
		return runMetricsLanguages(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "prosegrade: metrics: unknown command %q\n", args[0])
		return 2
	}
}

func runMetricsList(args []string) int {
	fs := flag.NewFlagSet("metrics list", flag.ContinueOnError)
	var lang string
	fs.StringVarP(&lang, "lang", "l", "", "Only metrics registered for this language")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, "Usage: prosegrade metrics list [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "prosegrade: metrics list takes no arguments\n")
		return 2
	}

	cat := catalog.Builtin()
	defs := readability.All()
	if lang != "" {
		defs = readability.Resolve(cat, lang, nil)
		if len(defs) == 0 {
			fmt.Fprintf(os.Stderr, "prosegrade: no metrics registered for language %q (known: %v)\n",
				lang, cat.Languages())
			return 2
		}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION")
	for _, def := range defs {
		fmt.Fprintf(tw, "%s\t%s\n", def.Name, def.Description)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "prosegrade: writing output: %v\n", err)
		return 1
	}
	return 0
}

func runMetricsLanguages(args []string) int {
	fs := flag.NewFlagSet("metrics languages", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, "Usage: prosegrade metrics languages\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cat := catalog.Builtin()
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LANGUAGE\tMETRICS")
	for _, lang := range cat.Languages() {
		fmt.Fprintf(tw, "%s\t%d\n", lang, len(cat.Metrics(lang)))
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "prosegrade: writing output: %v\n", err)
		return 1
	}
	return 0
}
