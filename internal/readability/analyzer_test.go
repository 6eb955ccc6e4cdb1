package readability

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/prosegrade/prosegrade/internal/doc"
	"github.com/prosegrade/prosegrade/internal/lexicon"
)

// stubCounter returns a splitter with fixed syllable counts per word.
func stubCounter(table map[string]int) func(string) []string {
	return func(word string) []string {
		n, ok := table[strings.ToLower(word)]
		if !ok {
			return nil
		}
		parts := make([]string, n)
		for i := range parts {
			parts[i] = "x"
		}
		return parts
	}
}

var handCalcSyllables = map[string]int{
	"i": 1, "contain": 2, "four": 1, "words": 1,
	"therefore": 2, "it": 1, "should": 1, "be": 1, "possible": 3,
	"to": 1, "calculate": 3, "by": 1, "hand": 1,
}

// handCalcDocument is "I contain four words. Therefore, it should be
// possible to calculate by hand." with hand-checked annotations:
// 2 sentences, 13 words, 19 syllables, 61 letters.
func handCalcDocument() doc.Document {
	return doc.Document{
		{
			{Text: "I", Lemma: "i"},
			{Text: "contain", Lemma: "contain"},
			{Text: "four", Lemma: "four"},
			{Text: "words", Lemma: "word"},
			{Text: ".", Lemma: ".", IsPunct: true},
		},
		{
			{Text: "Therefore", Lemma: "therefore"},
			{Text: ",", Lemma: ",", IsPunct: true},
			{Text: "it", Lemma: "it"},
			{Text: "should", Lemma: "should"},
			{Text: "be", Lemma: "be"},
			{Text: "possible", Lemma: "possible"},
			{Text: "to", Lemma: "to"},
			{Text: "calculate", Lemma: "calculate"},
			{Text: "by", Lemma: "by"},
			{Text: "hand", Lemma: "hand"},
			{Text: ".", Lemma: ".", IsPunct: true},
		},
	}
}

// monoDocument builds sentences of monosyllabic words, plus a counter
// that rates every word at one syllable.
func monoDocument(sentences, wordsPerSentence int) (doc.Document, func(string) []string) {
	d := make(doc.Document, sentences)
	for i := range d {
		s := make(doc.Sentence, wordsPerSentence)
		for j := range s {
			word := fmt.Sprintf("w%d", j)
			s[j] = doc.Token{Text: word, Lemma: word}
		}
		d[i] = s
	}
	counter := func(string) []string { return []string{"x"} }
	return d, counter
}

func almostEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-3 {
		t.Errorf("%s = %.4f, want %.4f", name, got, want)
	}
}

func TestAnalyze_HandCalculatedScores(t *testing.T) {
	a := New(Options{Counter: stubCounter(handCalcSyllables)})
	res := a.Analyze(handCalcDocument())

	if res.Aggregates.Sentences != 2 || res.Aggregates.Words != 13 ||
		res.Aggregates.Syllables != 19 || res.Aggregates.Letters != 61 {
		t.Fatalf("aggregates = %+v, want 2/13/19/61", res.Aggregates)
	}

	almostEqual(t, "flesch_kincaid_grade_level", res.Scores["flesch_kincaid_grade_level"], 4.1912)
	almostEqual(t, "flesch_kincaid_reading_ease", res.Scores["flesch_kincaid_reading_ease"], 76.5913)
	almostEqual(t, "coleman_liau_index", res.Scores["coleman_liau_index"], 7.2369)
	almostEqual(t, "automated_readability_index", res.Scores["automated_readability_index"], 3.9208)
	almostEqual(t, "smog", res.Scores["smog"], 0) // under 30 sentences
	almostEqual(t, "forcast", res.Scores["forcast"], 0) // under 150 words
}

func TestAnalyze_GunningFog(t *testing.T) {
	a := New(Options{Counter: stubCounter(handCalcSyllables)})
	res := a.Analyze(handCalcDocument())

	// 2 of 13 words have 3+ syllables: 0.4*(13/2 + 100*2/13).
	almostEqual(t, "gunning_fog_index", res.Scores["gunning_fog_index"], 8.7538)
}

func TestAnalyze_DegenerateDocuments(t *testing.T) {
	a := New(Options{Counter: stubCounter(nil)})

	for _, tc := range []struct {
		name string
		d    doc.Document
	}{
		{"empty", nil},
		{"no sentences", doc.Document{}},
		{"punctuation only", doc.Document{{{Text: "#", IsPunct: true}}}},
	} {
		res := a.Analyze(tc.d)
		for name, score := range res.Scores {
			if score != 0 {
				t.Errorf("%s: %s = %v, want 0", tc.name, name, score)
			}
		}
		if len(res.Scores) != 8 {
			t.Errorf("%s: got %d scores, want all 8 at their zero floor", tc.name, len(res.Scores))
		}
	}
}

func TestAnalyze_SMOGFloor(t *testing.T) {
	poly := func(string) []string { return []string{"x", "x", "x"} }

	d29, _ := monoDocument(29, 5)
	res := New(Options{Counter: poly}).Analyze(d29)
	if got := res.Scores["smog"]; got != 0 {
		t.Fatalf("smog at 29 sentences = %v, want 0", got)
	}

	d30, _ := monoDocument(30, 5)
	res = New(Options{Counter: poly}).Analyze(d30)
	// numPoly = 30*5*3 = 450 over 30 sentences:
	// 1.0430*sqrt(450) + 3.1291.
	want := 1.0430*math.Sqrt(450) + 3.1291
	almostEqual(t, "smog at 30 sentences", res.Scores["smog"], want)
	if res.Scores["smog"] <= 0 {
		t.Fatal("smog at 30 sentences should be positive")
	}
}

func TestAnalyze_ForcastFloor(t *testing.T) {
	d149, counter := monoDocument(1, 149)
	res := New(Options{Counter: counter}).Analyze(d149)
	if got := res.Scores["forcast"]; got != 0 {
		t.Fatalf("forcast at 149 words = %v, want 0", got)
	}

	// All 150 draws hit monosyllabic words: 20 - 150/10 = 5 exactly,
	// independent of the sampled indices.
	d150, counter := monoDocument(1, 150)
	res = New(Options{Counter: counter}).Analyze(d150)
	almostEqual(t, "forcast at 150 words", res.Scores["forcast"], 5)
}

func TestAnalyze_ForcastReproducible(t *testing.T) {
	// Alternate 1- and 2-syllable words so the sample actually matters.
	d, _ := monoDocument(10, 20)
	counter := func(word string) []string {
		if strings.HasSuffix(word, "1") || strings.HasSuffix(word, "3") {
			return []string{"x", "x"}
		}
		return []string{"x"}
	}

	first := New(Options{Seed: 99, Counter: counter}).Analyze(d).Scores["forcast"]
	second := New(Options{Seed: 99, Counter: counter}).Analyze(d).Scores["forcast"]
	if first != second {
		t.Fatalf("same seed gave %v then %v", first, second)
	}

	a := New(Options{Seed: 99, Counter: counter})
	if x, y := a.Analyze(d).Scores["forcast"], a.Analyze(d).Scores["forcast"]; x != y {
		t.Fatalf("repeated Analyze on one analyzer gave %v then %v", x, y)
	}
}

func TestAnalyze_DaleChallBoundary(t *testing.T) {
	easy := make([]string, 0, 19)
	for i := 0; i < 19; i++ {
		easy = append(easy, fmt.Sprintf("w%d", i))
	}
	lex := lexicon.New(easy)
	counter := func(string) []string { return []string{"x"} }

	// 20 words, 1 difficult: exactly 5.0% difficult, no adjustment.
	d20, _ := monoDocument(1, 20)
	d20[0][19] = doc.Token{Text: "obfuscate", Lemma: "obfuscate"}
	res := New(Options{Lexicon: lex, Counter: counter}).Analyze(d20)
	almostEqual(t, "dale_chall at 5.0%", res.Scores["dale_chall"], 0.1579*5+0.0496*20)

	// 19 words, 1 difficult: 5.26% difficult, adjustment applies.
	d19, _ := monoDocument(1, 19)
	d19[0][18] = doc.Token{Text: "obfuscate", Lemma: "obfuscate"}
	res = New(Options{Lexicon: lex, Counter: counter}).Analyze(d19)
	want := 0.1579*(100.0/19) + 0.0496*19 + 3.6365
	almostEqual(t, "dale_chall above 5%", res.Scores["dale_chall"], want)
}

func TestAnalyze_DaleChallLemmaRescues(t *testing.T) {
	lex := lexicon.New([]string{"word", "run"})
	counter := func(string) []string { return []string{"x"} }

	d := doc.Document{{
		{Text: "Words", Lemma: "word"},    // easy via lemma
		{Text: "running", Lemma: "run"},   // easy via lemma
		{Text: "quantum", Lemma: "quantum"}, // difficult
	}}
	res := New(Options{Lexicon: lex, Counter: counter}).Analyze(d)

	// 1 of 3 difficult: 33.3% > 5, adjustment applies.
	want := 0.1579*(100.0/3) + 0.0496*3 + 3.6365
	almostEqual(t, "dale_chall", res.Scores["dale_chall"], want)
}

func TestAnalyze_GermanNarrowsMetricSet(t *testing.T) {
	a := New(Options{Language: "de", Counter: stubCounter(handCalcSyllables)})

	metrics := a.Metrics()
	if len(metrics) != 1 || metrics[0] != "flesch_kincaid_reading_ease" {
		t.Fatalf("de metrics = %v, want [flesch_kincaid_reading_ease]", metrics)
	}

	res := a.Analyze(handCalcDocument())
	if len(res.Scores) != 1 {
		t.Fatalf("de scores = %v, want one entry", res.Scores)
	}
	// 180 - 1*(13/2) - 58.5*(19/13).
	almostEqual(t, "de flesch_kincaid_reading_ease", res.Scores["flesch_kincaid_reading_ease"], 88.0)
}

func TestAnalyze_UnknownLanguage(t *testing.T) {
	a := New(Options{Language: "xx"})
	if got := a.Metrics(); len(got) != 0 {
		t.Fatalf("unknown language metrics = %v, want none", got)
	}
	res := a.Analyze(handCalcDocument())
	if len(res.Scores) != 0 {
		t.Fatalf("unknown language scores = %v, want empty", res.Scores)
	}
}

func TestComputeSafe_ContainsFaults(t *testing.T) {
	def := Definition{
		Name:    "boom",
		Compute: func(*scoreInput) float64 { panic("formula fault") },
	}
	if _, ok := computeSafe(def, &scoreInput{}); ok {
		t.Fatal("expected fault to be contained and reported as not ok")
	}
}
