package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/zpam/year-classifier/pkg/learning"
	"github.com/zpam/year-classifier/pkg/profiler"
)

var (
	classifyTrainDir string
	classifyCutoff   int
	classifyJSON     bool
	classifyProfile  bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify [file...]",
	Short: "Predict the label of one or more documents",
	Long: `Train on the configured corpus, then classify every document given on the
command line. Each document holds one token per line.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		dir, cutoff := rt.trainingInputs(cmd, classifyTrainDir, classifyCutoff)

		var prof *profiler.Profiler
		if classifyProfile {
			prof = profiler.NewProfiler()
		}

		model, err := rt.train(cmd.Context(), dir, cutoff, prof)
		if err != nil {
			return fmt.Errorf("failed to train model: %w", err)
		}

		results := make([]*learning.Classification, 0, len(args))
		for _, path := range args {
			start := time.Now()
			result, err := model.Classify(path)
			if err != nil {
				return fmt.Errorf("failed to classify %s: %w", path, err)
			}
			if prof != nil {
				prof.Record("classify", time.Since(start))
			}
			results = append(results, result)
		}

		if classifyJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}

		fmt.Printf("yearclass Classification Results:\n")
		for _, result := range results {
			fmt.Printf("\nFile: %s\n", result.Path)
			fmt.Printf("Prediction: %s\n", result.Label)
			fmt.Printf("Tokens: %d\n", result.Tokens)
			for _, label := range model.Labels() {
				fmt.Printf("  log P(%s | doc) ~ %.4f\n", label, result.Scores[label])
			}
		}

		if prof != nil {
			fmt.Println()
			prof.PrintReport(os.Stdout)
		}

		return nil
	},
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyTrainDir, "train-dir", "t", "", "Training corpus root (overrides config)")
	classifyCmd.Flags().IntVarP(&classifyCutoff, "cutoff", "k", 2, "Minimum total occurrences for a vocabulary word (overrides config)")
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Print results as JSON")
	classifyCmd.Flags().BoolVarP(&classifyProfile, "profile", "p", false, "Print stage timings")
}
