// Package stats derives the base document statistics every readability
// formula reads. Aggregates are computed once per document and cached by
// the analyzer; formulas never re-count.
package stats

import (
	"unicode/utf8"

	"github.com/prosegrade/prosegrade/internal/doc"
	"github.com/prosegrade/prosegrade/internal/syllable"
)

// Aggregates are the four base counts for one document. Immutable once
// collected.
type Aggregates struct {
	Sentences int
	Words     int
	Syllables int
	Letters   int
}

// Annotation is the engine-owned sidecar for one countable token, keyed
// by the token's flattened document position. Tokens failing the
// countable filter have no annotation, not a zero one.
type Annotation struct {
	Syllables     []string
	SyllableCount int
	LetterCount   int
}

// Collect walks the document once, counting sentences and countable
// words and segmenting each word's syllables. Tokens the splitter cannot
// segment still count as words and contribute letters; they simply add
// no syllables. Deterministic for a given document and splitter.
func Collect(d doc.Document, count syllable.CounterFunc) (Aggregates, map[int]Annotation) {
	agg := Aggregates{}
	annotations := make(map[int]Annotation)

	pos := 0
	for _, sent := range d {
		agg.Sentences++
		for _, tok := range sent {
			if tok.Countable() {
				letters := utf8.RuneCountInString(tok.Text)
				ann := Annotation{LetterCount: letters}
				agg.Words++
				agg.Letters += letters

				if parts := count(tok.Text); len(parts) > 0 {
					ann.Syllables = parts
					ann.SyllableCount = len(parts)
					agg.Syllables += len(parts)
				}
				annotations[pos] = ann
			}
			pos++
		}
	}
	return agg, annotations
}

// CountSyllablesAtLeast sums the syllable counts of annotated tokens
// having at least min syllables. Used by SMOG (polysyllable mass).
func CountSyllablesAtLeast(annotations map[int]Annotation, min int) int {
	total := 0
	for _, ann := range annotations {
		if ann.SyllableCount >= min {
			total += ann.SyllableCount
		}
	}
	return total
}

// CountTokensWithSyllables counts annotated tokens having at least min
// syllables. Used by Gunning Fog (complex words).
func CountTokensWithSyllables(annotations map[int]Annotation, min int) int {
	n := 0
	for _, ann := range annotations {
		if ann.SyllableCount >= min {
			n++
		}
	}
	return n
}

// CountableSyllableCounts returns the syllable count of each countable
// token in document order, aligning slice index with the countable-token
// index range the Forcast sampler draws from.
func CountableSyllableCounts(d doc.Document, annotations map[int]Annotation) []int {
	var out []int
	pos := 0
	for _, sent := range d {
		for _, tok := range sent {
			if tok.Countable() {
				out = append(out, annotations[pos].SyllableCount)
			}
			pos++
		}
	}
	return out
}
