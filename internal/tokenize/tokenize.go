// Package tokenize turns plain text into the tokenized, sentence-split
// document the scoring engine consumes. It is a deliberately small rune
// scanner: sentences end at terminator punctuation or a line break, words
// keep internal apostrophes and hyphens, and numbers keep internal
// decimal points. Lemmas are the lowercased surface form.
package tokenize

import (
	"strings"
	"unicode"

	"github.com/prosegrade/prosegrade/internal/doc"
)

// Text segments input into sentences of classified tokens. Line breaks
// end sentences: upstream Markdown extraction joins soft-wrapped lines,
// so a remaining line break is a block boundary.
func Text(input string) doc.Document {
	var d doc.Document
	var cur doc.Sentence

	flush := func() {
		if len(cur) > 0 {
			d = append(d, cur)
			cur = nil
		}
	}

	for _, line := range strings.Split(input, "\n") {
		for _, tok := range scanLine(line) {
			cur = append(cur, tok)
			if tok.IsPunct && isTerminator(tok.Text) {
				flush()
			}
		}
		flush()
	}
	return d
}

func isTerminator(s string) bool {
	return strings.ContainsAny(s, ".!?")
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-'
}

func scanLine(line string) []doc.Token {
	runes := []rune(line)
	var toks []doc.Token

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isWordRune(r):
			start := i
			for i < len(runes) {
				if isWordRune(runes[i]) {
					i++
					continue
				}
				// Keep a decimal point or thousands separator that
				// sits between two digits ("3.14", "1,000").
				if (runes[i] == '.' || runes[i] == ',') &&
					i > start && i+1 < len(runes) &&
					unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
					i += 2
					continue
				}
				break
			}
			toks = append(toks, classify(string(runes[start:i])))
		default:
			// Group runs of terminator punctuation ("...", "?!") into
			// one token so an ellipsis ends exactly one sentence.
			start := i
			if strings.ContainsRune(".!?", r) {
				for i < len(runes) && strings.ContainsRune(".!?", runes[i]) {
					i++
				}
			} else {
				i++
			}
			toks = append(toks, classify(string(runes[start:i])))
		}
	}
	return toks
}

func classify(s string) doc.Token {
	hasLetter := false
	hasDigit := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}

	tok := doc.Token{Text: s, Lemma: strings.ToLower(s)}
	switch {
	case !hasLetter && !hasDigit:
		tok.IsPunct = true
	case hasDigit && !hasLetter:
		tok.IsNumeric = true
	}
	return tok
}
