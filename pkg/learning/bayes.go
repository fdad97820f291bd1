package learning

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// smoothing is the add-one pseudo-count used for priors and conditionals
const smoothing = 1

// Model is a trained multinomial Naive Bayes model. It is read-only once built.
type Model struct {
	vocabulary Vocabulary

	// Labels in evaluation order
	labels []string

	logPrior      map[string]float64
	logLikelihood map[string]map[Token]float64

	// Training totals, kept for inspection
	totalDocuments int
	documents      map[string]int
	words          map[string]int
}

// Prior returns the add-one smoothed log prior of every label:
// log(docs with label + 1) - log(all docs + number of labels)
func Prior(records []TrainingRecord, labels []string) map[string]float64 {
	perLabel := make(map[string]int, len(labels))
	for _, r := range records {
		perLabel[r.Label]++
	}

	denom := math.Log(float64(len(records) + smoothing*len(labels)))
	logPrior := make(map[string]float64, len(labels))
	for _, label := range labels {
		logPrior[label] = math.Log(float64(perLabel[label]+smoothing)) - denom
	}

	return logPrior
}

// ConditionalProbabilities returns log p(token | label) for every vocabulary word
// and the OutOfVocabulary bucket:
// log(occurrences in label + 1) - log(all token occurrences in label + |vocab| + 1)
func ConditionalProbabilities(vocab Vocabulary, records []TrainingRecord, label string) map[Token]float64 {
	occurrences, total := labelCounts(records, label)

	denom := math.Log(float64(total + smoothing*(vocab.Len()+1)))
	logProb := make(map[Token]float64, vocab.Len()+1)
	for _, token := range vocab.Tokens() {
		logProb[token] = math.Log(float64(occurrences[token]+smoothing)) - denom
	}

	return logProb
}

// labelCounts sums the bags of one label: per-token occurrences and the total
// of every bag value, OutOfVocabulary included
func labelCounts(records []TrainingRecord, label string) (map[Token]int, int) {
	occurrences := make(map[Token]int)
	total := 0

	for _, r := range records {
		if r.Label != label {
			continue
		}
		for token, n := range r.Bag {
			occurrences[token] += n
			total += n
		}
	}

	return occurrences, total
}

// Train builds the vocabulary from root, encodes the training set and fits the model
func Train(ctx context.Context, root string, cutoff int, opts ...Option) (*Model, error) {
	o := buildOptions(opts)

	vocab, err := buildVocabulary(ctx, root, cutoff, o)
	if err != nil {
		return nil, fmt.Errorf("train %s: %w", root, err)
	}

	if vocab.Len() == 0 {
		if o.requireVocabulary {
			return nil, fmt.Errorf("train %s: cutoff %d: %w", root, cutoff, ErrEmptyVocabulary)
		}
		o.logger.WithFields(logrus.Fields{
			"root":   root,
			"cutoff": cutoff,
		}).Warn(ErrEmptyVocabulary.Error() + ", modeling out-of-vocabulary tokens only")
	}

	records, err := loadTrainingSet(vocab, root, o)
	if err != nil {
		return nil, fmt.Errorf("train %s: %w", root, err)
	}

	model := Fit(vocab, records, o.labels)
	o.logger.WithFields(logrus.Fields{
		"documents":  model.totalDocuments,
		"vocabulary": vocab.Len(),
	}).Info("model trained")

	return model, nil
}

// Fit computes the model from already encoded records
func Fit(vocab Vocabulary, records []TrainingRecord, labels []string) *Model {
	if len(labels) == 0 {
		labels = DefaultLabels
	}

	model := &Model{
		vocabulary:     vocab,
		labels:         append([]string(nil), labels...),
		logPrior:       Prior(records, labels),
		logLikelihood:  make(map[string]map[Token]float64, len(labels)),
		totalDocuments: len(records),
		documents:      make(map[string]int, len(labels)),
		words:          make(map[string]int, len(labels)),
	}

	for _, label := range labels {
		model.logLikelihood[label] = ConditionalProbabilities(vocab, records, label)
	}
	for _, r := range records {
		model.documents[r.Label]++
		model.words[r.Label] += r.Bag.Total()
	}

	return model
}

// Vocabulary returns the model vocabulary
func (m *Model) Vocabulary() Vocabulary {
	return m.vocabulary
}

// Labels returns the labels in evaluation order
func (m *Model) Labels() []string {
	return append([]string(nil), m.labels...)
}

// LogPrior returns the log prior of label
func (m *Model) LogPrior(label string) (float64, error) {
	p, ok := m.logPrior[label]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownLabel, label)
	}
	return p, nil
}

// LogLikelihood returns log p(token | label)
func (m *Model) LogLikelihood(label string, token Token) (float64, error) {
	table, ok := m.logLikelihood[label]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownLabel, label)
	}
	p, ok := table[token]
	if !ok {
		return 0, fmt.Errorf("token %s is not modeled", token)
	}
	return p, nil
}

// SentinelOnly reports whether the vocabulary is empty, leaving only the
// out-of-vocabulary bucket and the priors to decide
func (m *Model) SentinelOnly() bool {
	return m.vocabulary.Len() == 0
}
