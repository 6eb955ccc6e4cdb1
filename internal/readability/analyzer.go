// Package readability scores tokenized documents with a set of
// per-language readability formulas. The analyzer collects base document
// statistics once per call and feeds them to each active formula;
// formulas never re-count.
package readability

import (
	"math/rand"

	"github.com/prosegrade/prosegrade/internal/catalog"
	"github.com/prosegrade/prosegrade/internal/doc"
	"github.com/prosegrade/prosegrade/internal/lexicon"
	"github.com/prosegrade/prosegrade/internal/stats"
	"github.com/prosegrade/prosegrade/internal/syllable"
)

// Options configures an Analyzer. The zero value scores English with the
// built-in coefficient catalog, the embedded Dale-Chall lexicon, the
// default syllable splitter, and seed 0.
type Options struct {
	// Language selects the coefficient table. Defaults to "en". A
	// language with no registered metrics yields empty results, not an
	// error.
	Language string

	// Metrics optionally restricts scoring to a subset of metric names.
	// Names not registered for Language are silently dropped.
	Metrics []string

	// Seed initializes the per-call random generator used by the
	// Forcast sample, making results reproducible.
	Seed int64

	// Catalog overrides the built-in coefficient catalog.
	Catalog catalog.Catalog

	// Lexicon overrides the embedded Dale-Chall word list.
	Lexicon *lexicon.Lexicon

	// Counter overrides the default syllable splitter.
	Counter syllable.CounterFunc
}

// Analyzer scores documents. It is immutable after New and safe for
// concurrent use: every Analyze call owns its own statistics and random
// generator.
type Analyzer struct {
	lang    string
	seed    int64
	catalog catalog.Catalog
	lexicon *lexicon.Lexicon
	counter syllable.CounterFunc
	active  []Definition
}

// New builds an Analyzer with the metric set resolved once up front.
func New(opts Options) *Analyzer {
	lang := opts.Language
	if lang == "" {
		lang = "en"
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Builtin()
	}
	lex := opts.Lexicon
	if lex == nil {
		lex = lexicon.DaleChall()
	}
	counter := opts.Counter
	if counter == nil {
		counter = syllable.Split
	}

	return &Analyzer{
		lang:    lang,
		seed:    opts.Seed,
		catalog: cat,
		lexicon: lex,
		counter: counter,
		active:  Resolve(cat, lang, opts.Metrics),
	}
}

// Metrics returns the names of the active metrics in registry order.
func (a *Analyzer) Metrics() []string {
	names := make([]string, len(a.active))
	for i, def := range a.active {
		names[i] = def.Name
	}
	return names
}

// Result holds one document's scores plus the intermediate statistics,
// for callers that expose them as document or token properties.
type Result struct {
	// Scores maps metric name to value for every active metric.
	Scores map[string]float64
	// Aggregates are the base counts the formulas consumed.
	Aggregates stats.Aggregates
	// Annotations holds per-token syllable and letter data, keyed by
	// flattened token position. Non-countable tokens are absent.
	Annotations map[int]stats.Annotation
}

// scoreInput is the per-call view a formula computes from: cached
// aggregates, the raw document for token-walking formulas, lazily built
// derived slices, and a call-scoped random generator.
type scoreInput struct {
	doc         doc.Document
	agg         stats.Aggregates
	annotations map[int]stats.Annotation
	lexicon     *lexicon.Lexicon
	coeffs      catalog.Coefficients
	rng         *rand.Rand

	sylCounts      []int
	sylCountsReady bool
}

func (in *scoreInput) countableSyllableCounts() []int {
	if !in.sylCountsReady {
		in.sylCounts = stats.CountableSyllableCounts(in.doc, in.annotations)
		in.sylCountsReady = true
	}
	return in.sylCounts
}

func (in *scoreInput) polysyllableMass() int {
	return stats.CountSyllablesAtLeast(in.annotations, 3)
}

func (in *scoreInput) complexWordCount() int {
	return stats.CountTokensWithSyllables(in.annotations, 3)
}

// Analyze collects document statistics once and computes every active
// metric. Each metric computes independently: a fault in one formula is
// contained and only that metric is missing from Scores.
func (a *Analyzer) Analyze(d doc.Document) Result {
	agg, annotations := stats.Collect(d, a.counter)

	in := &scoreInput{
		doc:         d,
		agg:         agg,
		annotations: annotations,
		lexicon:     a.lexicon,
		rng:         rand.New(rand.NewSource(a.seed)),
	}

	scores := make(map[string]float64, len(a.active))
	for _, def := range a.active {
		coeffs, ok := a.catalog.Coefficients(a.lang, def.Name)
		if !ok {
			continue
		}
		in.coeffs = coeffs
		if v, ok := computeSafe(def, in); ok {
			scores[def.Name] = v
		}
	}

	return Result{
		Scores:      scores,
		Aggregates:  agg,
		Annotations: annotations,
	}
}

// computeSafe contains arithmetic faults so a single malformed formula
// or coefficient set cannot blank the whole result mapping.
func computeSafe(def Definition, in *scoreInput) (v float64, ok bool) {
	defer func() {
		if recover() != nil {
			v, ok = 0, false
		}
	}()
	return def.Compute(in), true
}
