package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/zpam/year-classifier/pkg/profiler"
)

var (
	trainDir     string
	trainCutoff  int
	trainTop     int
	trainProfile bool
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the Naive Bayes model and print its statistics",
	Long: `Build the vocabulary from the training corpus, encode every document and fit
log priors and add-one smoothed word likelihoods for each label.

The corpus root holds one subdirectory per label with one token per line in every file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		dir, cutoff := rt.trainingInputs(cmd, trainDir, trainCutoff)

		var prof *profiler.Profiler
		if trainProfile {
			prof = profiler.NewProfiler()
		}

		fmt.Printf("🧠 yearclass Training\n")
		fmt.Printf("═══════════════════════════════════════\n")
		fmt.Printf("📁 Training directory: %s\n", dir)
		fmt.Printf("✂️  Cutoff: %d\n", cutoff)
		fmt.Printf("🏷️  Labels: %v\n", rt.cfg.Learning.Labels)
		if rt.cfg.Learning.Counter == "redis" {
			fmt.Printf("🗄️  Counter: redis (%s)\n", rt.cfg.Learning.Redis.RedisURL)
		}
		fmt.Printf("\n")

		start := time.Now()
		model, err := rt.train(cmd.Context(), dir, cutoff, prof)
		if err != nil {
			return fmt.Errorf("failed to train model: %w", err)
		}
		duration := time.Since(start)

		info := model.Info()
		fmt.Printf("🎉 Training Complete!\n")
		fmt.Printf("📊 Documents processed: %d\n", info.TotalDocuments)
		fmt.Printf("⏱️  Time taken: %v\n", duration)
		fmt.Printf("\n")

		model.PrintStats(os.Stdout, trainTop)

		if prof != nil {
			prof.PrintReport(os.Stdout)
		}

		return nil
	},
}

func init() {
	trainCmd.Flags().StringVarP(&trainDir, "train-dir", "t", "", "Training corpus root (overrides config)")
	trainCmd.Flags().IntVarP(&trainCutoff, "cutoff", "k", 2, "Minimum total occurrences for a vocabulary word (overrides config)")
	trainCmd.Flags().IntVar(&trainTop, "top", 10, "Number of top words to show per label")
	trainCmd.Flags().BoolVarP(&trainProfile, "profile", "p", false, "Print stage timings")
}
