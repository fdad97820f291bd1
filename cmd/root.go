package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	rootConfig   string
	rootLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "yearclass",
	Short: "yearclass - Naive Bayes 2016/2020 document classifier",
	Long: `yearclass learns word statistics from a labeled corpus (one subdirectory per
label, one token per line) and predicts whether a document belongs to 2016 or 2020.

The model lives in memory only: every command that classifies trains first.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("yearclass - Naive Bayes year classifier")
		fmt.Println("Use 'yearclass --help' for usage information")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootConfig, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(configCmd)
}
