package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents yearclass configuration
type Config struct {
	// Corpus locations
	Corpus CorpusConfig `yaml:"corpus"`

	// Learning settings
	Learning LearningConfig `yaml:"learning"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
}

// CorpusConfig describes where the labeled documents live
type CorpusConfig struct {
	TrainDir string `yaml:"train_dir"` // one subdirectory per label
	TestDir  string `yaml:"test_dir"`  // same layout, used by evaluate

	// Only files with these extensions are documents; empty = every file
	Extensions []string `yaml:"extensions"`
}

// LearningConfig contains model training settings
type LearningConfig struct {
	// Minimum total occurrences for a token to enter the vocabulary
	Cutoff int `yaml:"cutoff"`

	// Label set in evaluation order. On a score tie the later label wins.
	Labels []string `yaml:"labels"`

	// Fail training instead of falling back to sentinel-only modeling
	RequireVocabulary bool `yaml:"require_vocabulary"`

	// Token counter backend for the vocabulary scan: "memory" or "redis"
	Counter string `yaml:"counter"`

	// Vocabulary scan workers (1 = sequential)
	Workers int `yaml:"workers"`

	// Redis counter settings
	Redis RedisCounterConfig `yaml:"redis"`
}

// RedisCounterConfig contains Redis-backed token counting settings
type RedisCounterConfig struct {
	RedisURL    string `yaml:"redis_url"`
	KeyPrefix   string `yaml:"key_prefix"`
	DatabaseNum int    `yaml:"database_num"`
	BatchSize   int    `yaml:"batch_size"`

	// Safety expiry for per-run count hashes. Duration string like "1h"
	TTL string `yaml:"ttl"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	File   string `yaml:"file"`   // log file path, empty = stderr
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns yearclass default configuration
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			TrainDir:   "corpus/training",
			TestDir:    "corpus/test",
			Extensions: []string{},
		},
		Learning: LearningConfig{
			Cutoff:            2,
			Labels:            []string{"2016", "2020"},
			RequireVocabulary: false,
			Counter:           "memory",
			Workers:           1,
			Redis: RedisCounterConfig{
				RedisURL:    "redis://localhost:6379",
				KeyPrefix:   "yearclass:vocab",
				DatabaseNum: 0,
				BatchSize:   500,
				TTL:         "1h",
			},
		},
		Logging: LoggingConfig{
			Level:  "warn",
			File:   "",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from file
func LoadConfig(configPath string) (*Config, error) {
	// Start with defaults
	config := DefaultConfig()

	// If no config file specified, return defaults
	if configPath == "" {
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// SaveConfig saves configuration to file
func (c *Config) SaveConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Learning.Cutoff < 0 {
		return fmt.Errorf("cutoff must be >= 0")
	}

	if len(c.Learning.Labels) < 2 {
		return fmt.Errorf("at least two labels are required")
	}
	seen := make(map[string]bool)
	for _, label := range c.Learning.Labels {
		if label == "" {
			return fmt.Errorf("labels cannot be empty")
		}
		if seen[label] {
			return fmt.Errorf("duplicate label: %s", label)
		}
		seen[label] = true
	}

	if c.Learning.Workers < 1 {
		return fmt.Errorf("workers must be >= 1")
	}

	switch c.Learning.Counter {
	case "memory":
	case "redis":
		if c.Learning.Redis.RedisURL == "" {
			return fmt.Errorf("redis_url cannot be empty when counter is redis")
		}
		if c.Learning.Redis.BatchSize < 1 {
			return fmt.Errorf("redis batch_size must be >= 1")
		}
		if _, err := c.Learning.Redis.ParseTTL(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown counter backend: %s", c.Learning.Counter)
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	validLevel := false
	for _, level := range validLevels {
		if c.Logging.Level == level {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}

	return nil
}

// ParseTTL returns the count hash expiry; empty means no expiry
func (r RedisCounterConfig) ParseTTL() (time.Duration, error) {
	if r.TTL == "" {
		return 0, nil
	}
	ttl, err := time.ParseDuration(r.TTL)
	if err != nil {
		return 0, fmt.Errorf("invalid redis ttl %q: %w", r.TTL, err)
	}
	return ttl, nil
}
