package learning

import (
	"fmt"
	"io"
	"math"
	"sort"
)

// WordStats describes how strongly a word points to one label
type WordStats struct {
	Word          string  `json:"word"`
	LogLikelihood float64 `json:"log_likelihood"`

	// Log-likelihood ratio against the most likely other label
	Ratio float64 `json:"ratio"`
}

// TopWords returns the vocabulary words most indicative of label, strongest first
func (m *Model) TopWords(label string, limit int) ([]*WordStats, error) {
	table, ok := m.logLikelihood[label]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLabel, label)
	}

	words := make([]*WordStats, 0, m.vocabulary.Len())
	for _, w := range m.vocabulary.words {
		token := Word(w)
		other := math.Inf(-1)
		for _, l := range m.labels {
			if l != label && m.logLikelihood[l][token] > other {
				other = m.logLikelihood[l][token]
			}
		}
		words = append(words, &WordStats{
			Word:          w,
			LogLikelihood: table[token],
			Ratio:         table[token] - other,
		})
	}

	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Ratio > words[j].Ratio
	})

	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}

	return words, nil
}

// ModelInfo contains model information
type ModelInfo struct {
	Labels         []string           `json:"labels"`
	TotalDocuments int                `json:"total_documents"`
	Documents      map[string]int     `json:"documents"`
	Words          map[string]int     `json:"words"`
	VocabularySize int                `json:"vocabulary_size"`
	LogPrior       map[string]float64 `json:"log_prior"`
}

// Info returns information about the trained model
func (m *Model) Info() *ModelInfo {
	info := &ModelInfo{
		Labels:         m.Labels(),
		TotalDocuments: m.totalDocuments,
		Documents:      make(map[string]int, len(m.labels)),
		Words:          make(map[string]int, len(m.labels)),
		VocabularySize: m.vocabulary.Len(),
		LogPrior:       make(map[string]float64, len(m.labels)),
	}
	for _, label := range m.labels {
		info.Documents[label] = m.documents[label]
		info.Words[label] = m.words[label]
		info.LogPrior[label] = m.logPrior[label]
	}
	return info
}

// PrintStats prints model statistics and the top words of each label
func (m *Model) PrintStats(w io.Writer, top int) {
	info := m.Info()

	fmt.Fprintf(w, "🧠 Naive Bayes Year Model\n")
	fmt.Fprintf(w, "════════════════════════════════════════\n")
	fmt.Fprintf(w, "Training Data:\n")
	fmt.Fprintf(w, "  Documents: %d\n", info.TotalDocuments)
	for _, label := range info.Labels {
		fmt.Fprintf(w, "  %s: %d documents, %d tokens, log prior %.4f\n",
			label, info.Documents[label], info.Words[label], info.LogPrior[label])
	}
	fmt.Fprintf(w, "  Vocabulary size: %d\n", info.VocabularySize)

	if m.SentinelOnly() {
		fmt.Fprintf(w, "\n⚠️  Empty vocabulary: only the out-of-vocabulary bucket is modeled\n\n")
		return
	}

	for _, label := range info.Labels {
		fmt.Fprintf(w, "\n📈 Top %s Words:\n", label)
		words, _ := m.TopWords(label, top)
		for i, word := range words {
			fmt.Fprintf(w, "  %2d. %-15s (%.3f ratio, %.3f log p)\n",
				i+1, word.Word, word.Ratio, word.LogLikelihood)
		}
	}

	fmt.Fprintf(w, "\n")
}
