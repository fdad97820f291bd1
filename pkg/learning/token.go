package learning

import "sort"

// Token is either a vocabulary word or the out-of-vocabulary bucket.
// The zero value is the empty word, which is distinct from OutOfVocabulary.
type Token struct {
	word string
	oov  bool
}

// OutOfVocabulary is the bucket shared by every word outside the vocabulary
var OutOfVocabulary = Token{oov: true}

// Word returns the token for an in-vocabulary word
func Word(w string) Token {
	return Token{word: w}
}

// IsOutOfVocabulary reports whether t is the out-of-vocabulary bucket
func (t Token) IsOutOfVocabulary() bool {
	return t.oov
}

// Text returns the word, or "" for the out-of-vocabulary bucket
func (t Token) Text() string {
	return t.word
}

func (t Token) String() string {
	if t.oov {
		return "<oov>"
	}
	return t.word
}

// BagOfWords maps each token of one document to its occurrence count.
// Only tokens that occur are present.
type BagOfWords map[Token]int

// Total returns the number of tokens the bag was built from, out-of-vocabulary included
func (b BagOfWords) Total() int {
	total := 0
	for _, count := range b {
		total += count
	}
	return total
}

// Vocabulary is a sorted, de-duplicated, immutable word list
type Vocabulary struct {
	words []string
	index map[string]struct{}
}

// NewVocabulary sorts and de-duplicates words into a vocabulary
func NewVocabulary(words []string) Vocabulary {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)

	v := Vocabulary{
		words: sorted[:0],
		index: make(map[string]struct{}, len(sorted)),
	}
	for _, w := range sorted {
		if _, dup := v.index[w]; dup {
			continue
		}
		v.index[w] = struct{}{}
		v.words = append(v.words, w)
	}

	return v
}

// Len returns the number of words
func (v Vocabulary) Len() int {
	return len(v.words)
}

// Words returns a copy of the words in ascending order
func (v Vocabulary) Words() []string {
	out := make([]string, len(v.words))
	copy(out, v.words)
	return out
}

// Contains reports whether w is a vocabulary word
func (v Vocabulary) Contains(w string) bool {
	_, ok := v.index[w]
	return ok
}

// Lookup maps a raw token to its vocabulary word or to OutOfVocabulary
func (v Vocabulary) Lookup(w string) Token {
	if v.Contains(w) {
		return Word(w)
	}
	return OutOfVocabulary
}

// Tokens returns every vocabulary word as a token followed by OutOfVocabulary
func (v Vocabulary) Tokens() []Token {
	tokens := make([]Token, 0, len(v.words)+1)
	for _, w := range v.words {
		tokens = append(tokens, Word(w))
	}
	return append(tokens, OutOfVocabulary)
}
