// Package lexicon provides the easy-word list the Dale-Chall formula
// scores against. A word is "difficult" when neither its surface form nor
// its lemma appears in the lexicon.
package lexicon

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"
)

//go:embed dale_chall.txt
var daleChallRaw string

// Lexicon is an immutable set of known-easy words, stored lowercased.
type Lexicon struct {
	words map[string]struct{}
}

// New builds a lexicon from a word slice. Words are lowercased; blanks
// are skipped.
func New(words []string) *Lexicon {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return &Lexicon{words: set}
}

// FromReader reads a one-word-per-line list. Blank lines and lines
// starting with '#' are skipped.
func FromReader(r io.Reader) (*Lexicon, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return New(words), nil
}

// Contains reports whether the lowercased word is in the lexicon.
func (l *Lexicon) Contains(word string) bool {
	if l == nil {
		return false
	}
	_, ok := l.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

var (
	daleChallOnce sync.Once
	daleChall     *Lexicon
)

// DaleChall returns the embedded Dale-Chall familiar word list, parsed
// once on first use.
func DaleChall() *Lexicon {
	daleChallOnce.Do(func() {
		l, err := FromReader(strings.NewReader(daleChallRaw))
		if err != nil {
			// The embedded list is static; a parse failure is a build defect.
			panic(fmt.Sprintf("lexicon: embedded word list: %v", err))
		}
		daleChall = l
	})
	return daleChall
}
