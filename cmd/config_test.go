package cmd

import (
	"strings"
	"testing"

	"github.com/zpam/year-classifier/pkg/config"
)

func TestValidateConfigLogic(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
		want   string
	}{
		{
			name:   "zero cutoff",
			modify: func(c *config.Config) { c.Learning.Cutoff = 0 },
			want:   "Cutoff is 0",
		},
		{
			name:   "high cutoff",
			modify: func(c *config.Config) { c.Learning.Cutoff = 50 },
			want:   "High cutoff",
		},
		{
			name:   "custom labels",
			modify: func(c *config.Config) { c.Learning.Labels = []string{"2012", "2016"} },
			want:   "differ from the default",
		},
		{
			name:   "many workers",
			modify: func(c *config.Config) { c.Learning.Workers = 64 },
			want:   "High worker count",
		},
		{
			name:   "train equals test",
			modify: func(c *config.Config) { c.Corpus.TestDir = c.Corpus.TrainDir },
			want:   "same",
		},
		{
			name:   "missing training directory",
			modify: func(c *config.Config) { c.Corpus.TrainDir = "/nonexistent/yearclass" },
			want:   "not accessible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Corpus.TrainDir = t.TempDir()
			tt.modify(cfg)

			warnings := validateConfigLogic(cfg)
			found := false
			for _, w := range warnings {
				if strings.Contains(w, tt.want) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected warning containing %q, got %v", tt.want, warnings)
			}
		})
	}
}

func TestValidateConfigLogicClean(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Corpus.TrainDir = t.TempDir()

	if warnings := validateConfigLogic(cfg); len(warnings) != 0 {
		t.Errorf("expected no warnings for defaults, got %v", warnings)
	}
}

func TestTrainingInputs(t *testing.T) {
	rt := &runtime{cfg: config.DefaultConfig()}
	rt.cfg.Learning.Cutoff = 4

	dir, cutoff := rt.trainingInputs(vocabCmd, "", 2)
	if dir != rt.cfg.Corpus.TrainDir {
		t.Errorf("dir = %s, expected %s", dir, rt.cfg.Corpus.TrainDir)
	}
	if cutoff != 4 {
		t.Errorf("cutoff = %d, expected configured 4", cutoff)
	}

	if err := vocabCmd.Flags().Set("cutoff", "0"); err != nil {
		t.Fatal(err)
	}
	defer func() { vocabCmd.Flags().Lookup("cutoff").Changed = false }()

	dir, cutoff = rt.trainingInputs(vocabCmd, "other", 0)
	if dir != "other" || cutoff != 0 {
		t.Errorf("got (%s, %d), expected flags to win", dir, cutoff)
	}
}
