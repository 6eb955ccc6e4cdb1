// Command prosegrade scores text and Markdown files with per-language
// readability metrics.
package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

const version = "0.3.0"

const usageText = `Usage: prosegrade <command> [flags] [files...]

Commands:
  score     Score files (or stdin with "-") with readability metrics
  metrics   List available metrics and languages
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'prosegrade <command> --help' for more information on a command.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch args[0] {
	case "--help", "-h", "help":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	case "version", "--version":
		fmt.Printf("prosegrade %s\n", buildVersion())
		return 0
	case "score":
		return runScore(args[1:])
	case "metrics":
		return runMetrics(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "prosegrade: unknown command %q\n\n%s", args[0], usageText)
		return 2
	}
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}
