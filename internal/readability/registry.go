package readability

import (
	"math"

	"github.com/prosegrade/prosegrade/internal/sample"
)

// daleChallAdjust is the fixed grade adjustment applied when more than 5%
// of words are difficult. It is part of the published Dale-Chall formula
// itself, not a per-language tuning constant, so it lives here rather
// than in the coefficient catalog.
const daleChallAdjust = 3.6365

// smogMinSentences is the floor below which SMOG is statistically
// unreliable and defined to be 0.
const smogMinSentences = 30

// forcastSampleSize is the fixed word sample the Forcast formula draws.
const forcastSampleSize = 150

// Definition describes one readability metric and how to compute it from
// collected document statistics. Compute never mutates its input and
// returns 0 below the metric's degenerate floor.
type Definition struct {
	Name        string
	Description string
	Compute     func(in *scoreInput) float64
}

var registry = []Definition{
	{
		Name:        "flesch_kincaid_grade_level",
		Description: "U.S. school grade estimated from syllables per word and words per sentence.",
		Compute:     fleschKincaidGradeLevel,
	},
	{
		Name:        "flesch_kincaid_reading_ease",
		Description: "Reading ease on a 0-100 scale; higher is easier.",
		Compute:     fleschKincaidReadingEase,
	},
	{
		Name:        "dale_chall",
		Description: "Grade score from sentence length and words outside the familiar word list.",
		Compute:     daleChall,
	},
	{
		Name:        "smog",
		Description: "Grade estimate from polysyllable density; defined only at 30+ sentences.",
		Compute:     smog,
	},
	{
		Name:        "coleman_liau_index",
		Description: "Grade estimate from letters and sentences per 100 words.",
		Compute:     colemanLiau,
	},
	{
		Name:        "automated_readability_index",
		Description: "Grade estimate from letters per word and words per sentence.",
		Compute:     automatedReadability,
	},
	{
		Name:        "forcast",
		Description: "Grade estimate from monosyllabic words in a fixed 150-word sample.",
		Compute:     forcast,
	},
	{
		Name:        "gunning_fog_index",
		Description: "Years of education estimated from sentence length and complex words.",
		Compute:     gunningFog,
	},
}

func fleschKincaidGradeLevel(in *scoreInput) float64 {
	agg := in.agg
	if agg.Sentences == 0 || agg.Words == 0 || agg.Syllables == 0 {
		return 0
	}
	c := in.coeffs
	return c.Get("asw")*float64(agg.Syllables)/float64(agg.Words) +
		c.Get("asl")*float64(agg.Words)/float64(agg.Sentences) -
		c.Get("base")
}

func fleschKincaidReadingEase(in *scoreInput) float64 {
	agg := in.agg
	if agg.Sentences == 0 || agg.Words == 0 || agg.Syllables == 0 {
		return 0
	}
	c := in.coeffs
	wordsPerSent := float64(agg.Words) / float64(agg.Sentences)
	syllablesPerWord := float64(agg.Syllables) / float64(agg.Words)
	return c.Get("base") - c.Get("asl")*wordsPerSent - c.Get("asw")*syllablesPerWord
}

func daleChall(in *scoreInput) float64 {
	agg := in.agg
	if agg.Sentences == 0 || agg.Words == 0 {
		return 0
	}

	difficult := 0
	for _, tok := range in.doc.CountableTokens() {
		if !in.lexicon.Contains(tok.Text) && !in.lexicon.Contains(tok.Lemma) {
			difficult++
		}
	}

	percentDifficult := 100 * float64(difficult) / float64(agg.Words)
	avgSentenceLen := float64(agg.Words) / float64(agg.Sentences)

	c := in.coeffs
	grade := c.Get("pdw")*percentDifficult + c.Get("asl")*avgSentenceLen
	if percentDifficult > 5 {
		grade += daleChallAdjust
	}
	return grade
}

func smog(in *scoreInput) float64 {
	agg := in.agg
	if agg.Sentences < smogMinSentences || agg.Words == 0 {
		return 0
	}
	numPoly := in.polysyllableMass()
	c := in.coeffs
	return c.Get("mult")*math.Sqrt(float64(numPoly)*30/float64(agg.Sentences)) + c.Get("base")
}

func colemanLiau(in *scoreInput) float64 {
	agg := in.agg
	if agg.Words <= 0 || agg.Letters <= 0 {
		return 0
	}
	lettersPer100 := float64(agg.Letters) / float64(agg.Words) * 100
	sentencesPer100 := float64(agg.Sentences) / float64(agg.Words) * 100
	c := in.coeffs
	return c.Get("l")*lettersPer100 - c.Get("s")*sentencesPer100 - c.Get("base")
}

func automatedReadability(in *scoreInput) float64 {
	agg := in.agg
	if agg.Words <= 0 {
		return 0
	}
	lettersPerWord := float64(agg.Letters) / float64(agg.Words)
	wordsPerSent := float64(agg.Words) / float64(agg.Sentences)
	c := in.coeffs
	return c.Get("alw")*lettersPerWord + c.Get("asw")*wordsPerSent - c.Get("base")
}

func forcast(in *scoreInput) float64 {
	agg := in.agg
	if agg.Words < forcastSampleSize {
		return 0
	}

	counts := in.countableSyllableCounts()
	monosyllabic := 0
	for _, idx := range sample.Draw(in.rng, agg.Words, forcastSampleSize) {
		if counts[idx] == 1 {
			monosyllabic++
		}
	}

	c := in.coeffs
	return c.Get("base") - float64(monosyllabic)/c.Get("w")
}

// gunningFog returns 0 for empty documents, the same floor policy as
// every other formula here.
func gunningFog(in *scoreInput) float64 {
	agg := in.agg
	if agg.Sentences == 0 || agg.Words == 0 {
		return 0
	}
	complexWords := in.complexWordCount()
	complexRatio := float64(complexWords) / float64(agg.Words)
	return in.coeffs.Get("mult") * (float64(agg.Words)/float64(agg.Sentences) + 100*complexRatio)
}

// All returns every registered metric definition in registration order.
func All() []Definition {
	defs := make([]Definition, len(registry))
	copy(defs, registry)
	return defs
}

// Lookup finds a metric definition by name.
func Lookup(name string) (Definition, bool) {
	for _, def := range registry {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}
