package learning

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zpam/year-classifier/pkg/corpus"
	"golang.org/x/sync/errgroup"
)

// BuildVocabulary scans every document under root's label subdirectories and keeps
// the tokens whose total occurrence count across the whole corpus is at least cutoff.
// Files that cannot be opened or read are logged and skipped.
func BuildVocabulary(ctx context.Context, root string, cutoff int, opts ...Option) (Vocabulary, error) {
	return buildVocabulary(ctx, root, cutoff, buildOptions(opts))
}

func buildVocabulary(ctx context.Context, root string, cutoff int, o *options) (Vocabulary, error) {
	if cutoff < 0 {
		return Vocabulary{}, fmt.Errorf("invalid cutoff %d: must be >= 0", cutoff)
	}
	defer o.stage("vocabulary")()

	docs, err := corpus.New(root, o.extensions...).Walk()
	if err != nil {
		return Vocabulary{}, fmt.Errorf("build vocabulary: %w", err)
	}

	counter, err := o.newCounter(ctx)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("build vocabulary: create counter: %w", err)
	}
	defer func() {
		if err := counter.Release(ctx); err != nil {
			o.logger.WithError(err).Warn("failed to release token counter")
		}
	}()

	if err := scanCounts(ctx, docs, counter, o.workers, o.logger); err != nil {
		return Vocabulary{}, fmt.Errorf("build vocabulary: %w", err)
	}

	counts, err := counter.Counts(ctx)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("build vocabulary: %w", err)
	}

	var words []string
	for token, n := range counts {
		if n >= cutoff {
			words = append(words, token)
		}
	}

	vocab := NewVocabulary(words)
	o.logger.WithFields(logrus.Fields{
		"documents": len(docs),
		"tokens":    len(counts),
		"kept":      vocab.Len(),
		"cutoff":    cutoff,
	}).Debug("vocabulary built")

	return vocab, nil
}

// scanCounts feeds the token counts of docs into counter, splitting the documents
// across workers when more than one is configured
func scanCounts(ctx context.Context, docs []corpus.Document, counter TokenCounter, workers int, logger logrus.FieldLogger) error {
	if workers <= 1 || len(docs) < 2 {
		return counter.Add(ctx, countDocuments(docs, logger))
	}

	if workers > len(docs) {
		workers = len(docs)
	}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		chunk := partition(docs, w, workers)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return counter.Add(gctx, countDocuments(chunk, logger))
		})
	}

	return g.Wait()
}

// countDocuments returns the token occurrence totals of docs
func countDocuments(docs []corpus.Document, logger logrus.FieldLogger) map[string]int {
	counts := make(map[string]int)

	for _, doc := range docs {
		// Read the whole file first so a failure mid-file leaves no partial counts
		tokens, err := corpus.ReadTokens(doc.Path)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"path":     doc.Path,
				"label":    doc.Label,
				"notFound": corpus.IsNotFound(err),
			}).WithError(err).Warn(ErrCorpusFileUnreadable.Error() + ", skipping")
			continue
		}

		for _, token := range tokens {
			counts[token]++
		}
	}

	return counts
}

// partition returns the i-th of n contiguous slices of docs
func partition(docs []corpus.Document, i, n int) []corpus.Document {
	size := len(docs) / n
	rem := len(docs) % n

	start := i*size + min(i, rem)
	end := start + size
	if i < rem {
		end++
	}

	return docs[start:end]
}
