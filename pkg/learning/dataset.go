package learning

import (
	"fmt"

	"github.com/zpam/year-classifier/pkg/corpus"
)

// TrainingRecord is one encoded document and the label of its directory
type TrainingRecord struct {
	Label string
	Bag   BagOfWords
}

// LoadTrainingSet encodes every document under root. The label of a record is the
// name of the subdirectory holding the file. Records come in label-name then
// file-name order. Any unreadable document aborts the load.
func LoadTrainingSet(vocab Vocabulary, root string, opts ...Option) ([]TrainingRecord, error) {
	return loadTrainingSet(vocab, root, buildOptions(opts))
}

func loadTrainingSet(vocab Vocabulary, root string, o *options) ([]TrainingRecord, error) {
	defer o.stage("encode")()

	docs, err := corpus.New(root, o.extensions...).Walk()
	if err != nil {
		return nil, fmt.Errorf("load training set: %w", err)
	}

	records := make([]TrainingRecord, 0, len(docs))
	for _, doc := range docs {
		bag, err := EncodeBagOfWords(vocab, doc.Path)
		if err != nil {
			return nil, fmt.Errorf("load training set: %w", err)
		}
		records = append(records, TrainingRecord{Label: doc.Label, Bag: bag})
	}

	return records, nil
}
