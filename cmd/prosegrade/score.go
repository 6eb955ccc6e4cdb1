package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/prosegrade/prosegrade/internal/catalog"
	"github.com/prosegrade/prosegrade/internal/config"
	"github.com/prosegrade/prosegrade/internal/discovery"
	vlog "github.com/prosegrade/prosegrade/internal/log"
	"github.com/prosegrade/prosegrade/internal/mdtext"
	"github.com/prosegrade/prosegrade/internal/output"
	"github.com/prosegrade/prosegrade/internal/readability"
	"github.com/prosegrade/prosegrade/internal/tokenize"
)

type scoreOptions struct {
	configPath string
	language   string
	metricsRaw string
	seed       int64
	format     string
	stats      bool
	verbose    bool
}

func runScore(args []string) int {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	var opts scoreOptions

	fs.StringVarP(&opts.configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&opts.language, "lang", "l", "", "Language code for coefficient selection (default en)")
	fs.StringVarP(&opts.metricsRaw, "metrics", "m", "", "Comma-separated metrics (defaults to all for the language)")
	fs.Int64Var(&opts.seed, "seed", 0, "Seed for the forcast word sample")
	fs.StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&opts.stats, "stats", false, "Include sentence/word/syllable/letter counts")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Log diagnostic messages to stderr")
	fs.Usage = func() {
		fmt.Fprint(
			os.Stderr,
			"Usage: prosegrade score [flags] [files...|-]\n\n"+
				"Score text or Markdown files with readability metrics.\n"+
				"Use \"-\" to read from stdin.\n\nFlags:\n",
		)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "prosegrade: score requires file arguments or \"-\"\n")
		return 2
	}

	logger := &vlog.Logger{Enabled: opts.verbose, Prefix: "prosegrade", W: os.Stderr}

	cfg, err := loadConfig(opts.configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prosegrade: %v\n", err)
		return 2
	}
	applyFlagOverrides(cfg, fs, &opts)
	warnUnknownParameters(logger, cfg.Parameters)

	analyzer := readability.New(readability.Options{
		Language: cfg.Language,
		Metrics:  cfg.Metrics,
		Seed:     cfg.Seed,
		Catalog:  cfg.Catalog(),
	})
	active := analyzer.Metrics()
	if len(active) == 0 {
		fmt.Fprintf(os.Stderr, "prosegrade: no metrics available for language %q\n", cfg.Language)
		return 2
	}
	logger.Printf("language %s, metrics: %s", cfg.Language, strings.Join(active, ", "))
	warnDroppedMetrics(logger, cfg.Metrics, active)

	reports, err := scoreInputs(fs.Args(), cfg, analyzer, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prosegrade: %v\n", err)
		return 1
	}

	formatter, err := newFormatter(opts.format, opts.stats)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prosegrade: %v\n", err)
		return 2
	}
	if err := formatter.Format(os.Stdout, reports, active); err != nil {
		fmt.Fprintf(os.Stderr, "prosegrade: writing output: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig(explicit string, logger *vlog.Logger) (*config.Config, error) {
	path := explicit
	if path == "" {
		found, err := config.Discover(".")
		if err != nil {
			return nil, err
		}
		path = found
	}
	if path == "" {
		return config.Defaults(), nil
	}
	logger.Printf("using config %s", path)
	return config.Load(path)
}

// applyFlagOverrides lets explicit flags win over config file values.
func applyFlagOverrides(cfg *config.Config, fs *flag.FlagSet, opts *scoreOptions) {
	if opts.language != "" {
		cfg.Language = opts.language
	}
	if opts.metricsRaw != "" {
		cfg.Metrics = readability.SplitList(opts.metricsRaw)
	}
	if fs.Changed("seed") {
		cfg.Seed = opts.seed
	}
}

func warnDroppedMetrics(logger *vlog.Logger, requested []string, active []string) {
	if len(requested) == 0 {
		return
	}
	activeSet := make(map[string]struct{}, len(active))
	for _, name := range active {
		activeSet[name] = struct{}{}
	}
	for _, name := range requested {
		if _, ok := activeSet[name]; !ok {
			logger.Printf("metric %q is not available for this language; skipping", name)
		}
	}
}

// warnUnknownParameters flags config parameter overrides whose coefficient
// name does not match the built-in table; those keys never reach a formula
// and a typo would otherwise zero a coefficient without a trace.
func warnUnknownParameters(logger *vlog.Logger, overrides catalog.Catalog) {
	for _, key := range catalog.Builtin().UnknownOverrideKeys(overrides) {
		logger.Printf("parameter %s does not match a built-in coefficient; ignoring", key)
	}
}

func scoreInputs(args []string, cfg *config.Config, analyzer *readability.Analyzer, logger *vlog.Logger) ([]output.Report, error) {
	if len(args) == 1 && args[0] == "-" {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []output.Report{scoreSource("<stdin>", source, analyzer)}, nil
	}

	files, err := discovery.Discover(discovery.Options{
		Patterns: args,
		Ignore:   cfg.Ignore,
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files matched")
	}

	reports := make([]output.Report, 0, len(files))
	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		r := scoreSource(path, source, analyzer)
		logger.Printf("%s: %d sentences, %d words", path, r.Aggregates.Sentences, r.Aggregates.Words)
		reports = append(reports, r)
	}
	return reports, nil
}

func scoreSource(path string, source []byte, analyzer *readability.Analyzer) output.Report {
	text := string(source)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		text = mdtext.Extract(source)
	}

	res := analyzer.Analyze(tokenize.Text(text))
	return output.Report{
		Path:       path,
		Aggregates: res.Aggregates,
		Scores:     res.Scores,
	}
}

func newFormatter(format string, stats bool) (output.Formatter, error) {
	switch format {
	case "text":
		return &output.TextFormatter{Stats: stats}, nil
	case "json":
		return &output.JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (supported: text, json)", format)
	}
}
