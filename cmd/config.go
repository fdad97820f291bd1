package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zpam/year-classifier/pkg/config"
	"github.com/zpam/year-classifier/pkg/learning"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  `Generate and manage yearclass configuration files`,
}

var configGenCmd = &cobra.Command{
	Use:   "generate [config-file]",
	Short: "Generate default configuration file",
	Long:  `Generate a default configuration file with all options`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := "config.yaml"
		if len(args) > 0 {
			configPath = args[0]
		}

		if _, err := os.Stat(configPath); err == nil {
			overwrite, _ := cmd.Flags().GetBool("force")
			if !overwrite {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", configPath)
			}
		}

		if err := config.DefaultConfig().SaveConfig(configPath); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Printf("✅ Configuration file generated: %s\n", configPath)
		fmt.Printf("📝 Edit the file to point at your training corpus\n")
		fmt.Printf("🚀 Use 'yearclass train --config %s' to use the configuration\n", configPath)

		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate configuration file",
	Long:  `Validate a configuration file for syntax and logical errors`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := args[0]

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("❌ Configuration validation failed: %w", err)
		}

		warnings := validateConfigLogic(cfg)

		fmt.Printf("✅ Configuration is valid: %s\n", configPath)

		if len(warnings) > 0 {
			fmt.Printf("\n⚠️  Warnings:\n")
			for _, warning := range warnings {
				fmt.Printf("  - %s\n", warning)
			}
		}

		fmt.Printf("\n📊 Configuration Summary:\n")
		fmt.Printf("  Training directory: %s\n", cfg.Corpus.TrainDir)
		fmt.Printf("  Cutoff: %d\n", cfg.Learning.Cutoff)
		fmt.Printf("  Labels: %v\n", cfg.Learning.Labels)
		fmt.Printf("  Counter: %s\n", cfg.Learning.Counter)

		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show [config-file]",
	Short: "Show current configuration",
	Long:  `Display the current configuration with all values`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg *config.Config
		var err error

		if len(args) > 0 {
			cfg, err = config.LoadConfig(args[0])
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			fmt.Printf("Configuration: %s\n\n", args[0])
		} else {
			cfg = config.DefaultConfig()
			fmt.Printf("Default Configuration:\n\n")
		}

		fmt.Printf("📁 Corpus:\n")
		fmt.Printf("  Training directory: %s\n", cfg.Corpus.TrainDir)
		fmt.Printf("  Test directory: %s\n", cfg.Corpus.TestDir)
		if len(cfg.Corpus.Extensions) > 0 {
			fmt.Printf("  Extensions: %v\n", cfg.Corpus.Extensions)
		} else {
			fmt.Printf("  Extensions: (all files)\n")
		}

		fmt.Printf("\n🧠 Learning:\n")
		fmt.Printf("  Cutoff: %d\n", cfg.Learning.Cutoff)
		fmt.Printf("  Labels: %v (ties go to the later label)\n", cfg.Learning.Labels)
		fmt.Printf("  Require vocabulary: %v\n", cfg.Learning.RequireVocabulary)
		fmt.Printf("  Workers: %d\n", cfg.Learning.Workers)
		fmt.Printf("  Counter: %s\n", cfg.Learning.Counter)
		if cfg.Learning.Counter == "redis" {
			fmt.Printf("  Redis URL: %s (db %d)\n", cfg.Learning.Redis.RedisURL, cfg.Learning.Redis.DatabaseNum)
			fmt.Printf("  Key prefix: %s\n", cfg.Learning.Redis.KeyPrefix)
			fmt.Printf("  Batch size: %d\n", cfg.Learning.Redis.BatchSize)
			fmt.Printf("  TTL: %s\n", cfg.Learning.Redis.TTL)
		}

		fmt.Printf("\n📜 Logging:\n")
		fmt.Printf("  Level: %s\n", cfg.Logging.Level)
		fmt.Printf("  Format: %s\n", cfg.Logging.Format)
		if cfg.Logging.File != "" {
			fmt.Printf("  File: %s\n", cfg.Logging.File)
		}

		return nil
	},
}

// validateConfigLogic performs additional logical validation
func validateConfigLogic(cfg *config.Config) []string {
	var warnings []string

	if cfg.Learning.Cutoff == 0 {
		warnings = append(warnings, "Cutoff is 0 - every training token enters the vocabulary")
	}

	if cfg.Learning.Cutoff > 10 {
		warnings = append(warnings, "High cutoff might leave the vocabulary empty on small corpora")
	}

	if !sameLabels(cfg.Learning.Labels, learning.DefaultLabels) {
		warnings = append(warnings, fmt.Sprintf("Labels %v differ from the default %v", cfg.Learning.Labels, learning.DefaultLabels))
	}

	if cfg.Learning.Workers > 32 {
		warnings = append(warnings, "High worker count might exhaust file descriptors")
	}

	if cfg.Corpus.TrainDir == cfg.Corpus.TestDir {
		warnings = append(warnings, "Training and test directories are the same - accuracy will be optimistic")
	}

	if _, err := os.Stat(cfg.Corpus.TrainDir); err != nil {
		warnings = append(warnings, fmt.Sprintf("Training directory %s is not accessible", cfg.Corpus.TrainDir))
	}

	return warnings
}

func sameLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func init() {
	configCmd.AddCommand(configGenCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)

	configGenCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
