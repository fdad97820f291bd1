package learning

import "errors"

var (
	// ErrCorpusFileUnreadable marks a training file skipped during the vocabulary scan
	ErrCorpusFileUnreadable = errors.New("corpus file unreadable")

	// ErrTargetFileUnreadable marks a document that could not be encoded
	ErrTargetFileUnreadable = errors.New("target file unreadable")

	// ErrEmptyVocabulary is reported when no token reaches the cutoff
	ErrEmptyVocabulary = errors.New("empty vocabulary")

	// ErrUnknownLabel is returned when a model is asked about a label it was not trained on
	ErrUnknownLabel = errors.New("unknown label")
)
