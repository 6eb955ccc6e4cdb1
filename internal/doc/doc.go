// Package doc defines the tokenized document model the scoring engine
// consumes. Documents are produced by an upstream tokenizer and treated
// as read-only input.
package doc

// Token is one lexical unit of a sentence.
type Token struct {
	// Text is the surface form as it appeared in the input.
	Text string
	// Lemma is the dictionary form supplied by the tokenizer. May equal
	// Text when the tokenizer does no lemmatization.
	Lemma string
	// IsPunct marks punctuation tokens.
	IsPunct bool
	// IsNumeric marks purely numeric literals.
	IsNumeric bool
}

// Countable reports whether the token counts as a word. Punctuation and
// numeric literals are excluded; everything else counts.
func (t Token) Countable() bool {
	return !t.IsPunct && !t.IsNumeric
}

// Sentence is an ordered sequence of tokens.
type Sentence []Token

// Document is an ordered sequence of sentences.
type Document []Sentence

// Tokens returns all tokens in document order.
func (d Document) Tokens() []Token {
	n := 0
	for _, s := range d {
		n += len(s)
	}
	out := make([]Token, 0, n)
	for _, s := range d {
		out = append(out, s...)
	}
	return out
}

// CountableTokens returns the tokens passing the countable-word filter,
// in document order. Every metric that iterates tokens directly iterates
// this slice, so the index range matches the word count.
func (d Document) CountableTokens() []Token {
	var out []Token
	for _, s := range d {
		for _, t := range s {
			if t.Countable() {
				out = append(out, t)
			}
		}
	}
	return out
}
