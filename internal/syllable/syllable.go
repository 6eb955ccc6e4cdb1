// Package syllable segments words into syllable substrings.
//
// The engine only depends on the CounterFunc capability; Split is the
// default English implementation, a vowel-group heuristic. Callers with a
// dictionary-backed splitter can supply their own CounterFunc.
package syllable

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CounterFunc returns the ordered syllable substrings of a word. An empty
// result means the word could not be segmented (symbols, vowel-less
// tokens); that is not an error.
type CounterFunc func(word string) []string

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// Split segments an English word into syllables by vowel groups: each
// maximal run of vowels anchors one syllable, a single consonant before a
// vowel group joins that group as its onset, and a trailing silent "e"
// merges into the previous syllable (except "-le" after a consonant,
// which stays syllabic, as in "possible").
func Split(word string) []string {
	runes := []rune(strings.ToLower(strings.TrimSpace(word)))
	if len(runes) == 0 {
		return nil
	}

	// Start offsets of each vowel group.
	var groups []int
	inGroup := false
	for i, r := range runes {
		if !unicode.IsLetter(r) {
			inGroup = false
			continue
		}
		if isVowel(r) {
			if !inGroup {
				groups = append(groups, i)
				inGroup = true
			}
		} else {
			inGroup = false
		}
	}
	if len(groups) == 0 {
		return nil
	}

	// Boundary before each group after the first: a single consonant
	// between groups becomes the next syllable's onset, longer clusters
	// split before their last consonant.
	bounds := []int{0}
	for _, start := range groups[1:] {
		cut := start
		if cut > 0 && !isVowel(runes[cut-1]) && unicode.IsLetter(runes[cut-1]) {
			cut--
		}
		if cut <= bounds[len(bounds)-1] {
			cut = start
		}
		bounds = append(bounds, cut)
	}

	parts := make([]string, 0, len(bounds))
	for i, start := range bounds {
		end := len(runes)
		if i+1 < len(bounds) {
			end = bounds[i+1]
		}
		parts = append(parts, string(runes[start:end]))
	}

	if len(parts) >= 2 {
		last := parts[len(parts)-1]
		prev := parts[len(parts)-2]
		switch {
		case last == "le" && endsWithConsonant(prev):
			// Syllabic "-le" after a consonant: the boundary split left
			// the onset consonant in the previous part, so pull it over
			// ("sib","le" becomes "si","ble") instead of merging "le"
			// away as a silent e.
			r, size := utf8.DecodeLastRuneInString(prev)
			parts[len(parts)-2] = prev[:len(prev)-size]
			parts[len(parts)-1] = string(r) + last
		case silentFinalE(last):
			parts[len(parts)-2] += last
			parts = parts[:len(parts)-1]
		}
	}
	return parts
}

func endsWithConsonant(part string) bool {
	r, _ := utf8.DecodeLastRuneInString(part)
	return unicode.IsLetter(r) && !isVowel(r)
}

// silentFinalE reports whether a final syllable is a silent "e": it ends
// the word with "e" and contains no other vowel. A "-le" with its onset
// consonant already in the part keeps its syllable ("ble" in possible).
func silentFinalE(part string) bool {
	if !strings.HasSuffix(part, "e") {
		return false
	}
	if strings.HasSuffix(part, "le") && len(part) >= 3 && !isVowel(rune(part[len(part)-3])) {
		return false
	}
	for _, r := range part[:len(part)-1] {
		if isVowel(r) {
			return false
		}
	}
	return true
}
