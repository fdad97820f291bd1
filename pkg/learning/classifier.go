package learning

import (
	"fmt"
	"sort"

	"github.com/zpam/year-classifier/pkg/corpus"
)

// Classification is the outcome of scoring one document
type Classification struct {
	Path   string             `json:"path"`
	Label  string             `json:"label"`
	Scores map[string]float64 `json:"scores"`
	Tokens int                `json:"tokens"`
}

// Classify scores the document at path against every label of model
func Classify(model *Model, path string) (*Classification, error) {
	return model.Classify(path)
}

// Classify encodes the document with the model vocabulary and predicts its label.
// score(label) = log prior + sum over tokens of count * log p(token | label).
// Labels are compared in evaluation order and a later label wins a tie.
func (m *Model) Classify(path string) (*Classification, error) {
	bag, err := EncodeBagOfWords(m.vocabulary, path)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	scores := m.Score(bag)

	best := m.labels[0]
	for _, label := range m.labels[1:] {
		if scores[label] >= scores[best] {
			best = label
		}
	}

	return &Classification{
		Path:   path,
		Label:  best,
		Scores: scores,
		Tokens: bag.Total(),
	}, nil
}

// Score returns the unnormalized log posterior of every label for bag
func (m *Model) Score(bag BagOfWords) map[string]float64 {
	// Fixed token order keeps the float sums reproducible
	tokens := make([]Token, 0, len(bag))
	for token := range bag {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].oov != tokens[j].oov {
			return !tokens[i].oov
		}
		return tokens[i].word < tokens[j].word
	})

	scores := make(map[string]float64, len(m.labels))
	for _, label := range m.labels {
		table := m.logLikelihood[label]
		score := m.logPrior[label]
		for _, token := range tokens {
			if p, ok := table[token]; ok {
				score += float64(bag[token]) * p
			}
		}
		scores[label] = score
	}

	return scores
}

// Evaluation summarizes classifier accuracy on a labeled directory
type Evaluation struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`

	// Confusion[actual][predicted] counts documents
	Confusion map[string]map[string]int `json:"confusion"`
}

// Accuracy returns the share of correctly classified documents
func (e *Evaluation) Accuracy() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Correct) / float64(e.Total)
}

// Evaluate classifies every document under root, whose subdirectory names are
// the expected labels
func Evaluate(model *Model, root string, opts ...Option) (*Evaluation, error) {
	o := buildOptions(opts)
	defer o.stage("evaluate")()

	docs, err := corpus.New(root, o.extensions...).Walk()
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	eval := &Evaluation{Confusion: make(map[string]map[string]int)}
	for _, doc := range docs {
		result, err := model.Classify(doc.Path)
		if err != nil {
			return nil, fmt.Errorf("evaluate: %w", err)
		}

		row, ok := eval.Confusion[doc.Label]
		if !ok {
			row = make(map[string]int)
			eval.Confusion[doc.Label] = row
		}
		row[result.Label]++

		eval.Total++
		if result.Label == doc.Label {
			eval.Correct++
		}
	}

	return eval, nil
}
