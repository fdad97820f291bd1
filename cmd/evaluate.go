package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/zpam/year-classifier/pkg/learning"
	"github.com/zpam/year-classifier/pkg/profiler"
)

var (
	evaluateTrainDir string
	evaluateTestDir  string
	evaluateCutoff   int
	evaluateJSON     bool
	evaluateProfile  bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Measure accuracy on a labeled test corpus",
	Long: `Train on the training corpus, classify every document of the test corpus and
report accuracy and the confusion matrix. Test subdirectory names are the expected labels.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		dir, cutoff := rt.trainingInputs(cmd, evaluateTrainDir, evaluateCutoff)
		testDir := evaluateTestDir
		if testDir == "" {
			testDir = rt.cfg.Corpus.TestDir
		}

		var prof *profiler.Profiler
		if evaluateProfile {
			prof = profiler.NewProfiler()
		}

		start := time.Now()
		model, err := rt.train(cmd.Context(), dir, cutoff, prof)
		if err != nil {
			return fmt.Errorf("failed to train model: %w", err)
		}

		opts, err := rt.options(cmd.Context(), prof)
		if err != nil {
			return err
		}
		eval, err := learning.Evaluate(model, testDir, opts...)
		if err != nil {
			return fmt.Errorf("failed to evaluate model: %w", err)
		}
		duration := time.Since(start)

		if evaluateJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(eval)
		}

		fmt.Printf("📈 yearclass Evaluation\n")
		fmt.Printf("═══════════════════════════════════════\n")
		fmt.Printf("📁 Training directory: %s\n", dir)
		fmt.Printf("🧪 Test directory: %s\n", testDir)
		fmt.Printf("✂️  Cutoff: %d\n", cutoff)
		fmt.Printf("\n")
		fmt.Printf("📊 Documents classified: %d\n", eval.Total)
		fmt.Printf("✅ Correct: %d\n", eval.Correct)
		fmt.Printf("🎯 Accuracy: %.2f%%\n", eval.Accuracy()*100)
		fmt.Printf("⏱️  Time taken: %v\n", duration)

		printConfusion(model.Labels(), eval)

		if prof != nil {
			fmt.Println()
			prof.PrintReport(os.Stdout)
		}

		return nil
	},
}

// printConfusion prints rows of actual labels against predicted columns.
// Actual labels outside the model label set are appended as extra rows.
func printConfusion(labels []string, eval *learning.Evaluation) {
	rows := append([]string{}, labels...)
	known := make(map[string]bool, len(labels))
	for _, label := range labels {
		known[label] = true
	}
	for actual := range eval.Confusion {
		if !known[actual] {
			rows = append(rows, actual)
			known[actual] = true
		}
	}
	sort.Strings(rows[len(labels):])

	fmt.Printf("\n🔢 Confusion matrix (rows = actual, columns = predicted):\n")
	fmt.Printf("  %-10s", "")
	for _, label := range labels {
		fmt.Printf(" %8s", label)
	}
	fmt.Printf("\n")
	for _, actual := range rows {
		fmt.Printf("  %-10s", actual)
		for _, predicted := range labels {
			fmt.Printf(" %8d", eval.Confusion[actual][predicted])
		}
		fmt.Printf("\n")
	}
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateTrainDir, "train-dir", "t", "", "Training corpus root (overrides config)")
	evaluateCmd.Flags().StringVar(&evaluateTestDir, "test-dir", "", "Test corpus root (overrides config)")
	evaluateCmd.Flags().IntVarP(&evaluateCutoff, "cutoff", "k", 2, "Minimum total occurrences for a vocabulary word (overrides config)")
	evaluateCmd.Flags().BoolVar(&evaluateJSON, "json", false, "Print the evaluation as JSON")
	evaluateCmd.Flags().BoolVarP(&evaluateProfile, "profile", "p", false, "Print stage timings")
}
