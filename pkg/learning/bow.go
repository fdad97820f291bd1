package learning

import (
	"fmt"

	"github.com/zpam/year-classifier/pkg/corpus"
)

// EncodeBagOfWords counts the tokens of the file at path against vocab.
// Words outside the vocabulary all go to the OutOfVocabulary bucket.
func EncodeBagOfWords(vocab Vocabulary, path string) (BagOfWords, error) {
	bag := make(BagOfWords)

	err := corpus.EachToken(path, func(token string) {
		bag[vocab.Lookup(token)]++
	})
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w: %w", path, ErrTargetFileUnreadable, err)
	}

	return bag, nil
}
