package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zpam/year-classifier/pkg/learning"
)

var (
	vocabTrainDir string
	vocabCutoff   int
	vocabCount    bool
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Print the vocabulary built from the training corpus",
	Long: `Count every token of the training corpus and print, in lexicographic order,
the words whose total count reaches the cutoff.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		dir, cutoff := rt.trainingInputs(cmd, vocabTrainDir, vocabCutoff)

		opts, err := rt.options(cmd.Context(), nil)
		if err != nil {
			return err
		}
		vocab, err := learning.BuildVocabulary(cmd.Context(), dir, cutoff, opts...)
		if err != nil {
			return fmt.Errorf("failed to build vocabulary: %w", err)
		}

		if vocabCount {
			fmt.Println(vocab.Len())
			return nil
		}
		for _, word := range vocab.Words() {
			fmt.Println(word)
		}
		return nil
	},
}

func init() {
	vocabCmd.Flags().StringVarP(&vocabTrainDir, "train-dir", "t", "", "Training corpus root (overrides config)")
	vocabCmd.Flags().IntVarP(&vocabCutoff, "cutoff", "k", 2, "Minimum total occurrences for a vocabulary word (overrides config)")
	vocabCmd.Flags().BoolVar(&vocabCount, "count", false, "Print only the vocabulary size")
}
