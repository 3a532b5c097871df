package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Database.Path == "" {
		t.Error("default database path is empty")
	}
	if len(cfg.Scoring.BaseKeywords) == 0 {
		t.Error("default base keywords are empty")
	}
	if cfg.Scoring.BaseKeywords["SaaS"] != 2 {
		t.Errorf("SaaS weight = %g, want 2", cfg.Scoring.BaseKeywords["SaaS"])
	}
	if cfg.Scoring.BaseKeywords["Software"] != 1 {
		t.Errorf("Software weight = %g, want 1", cfg.Scoring.BaseKeywords["Software"])
	}
	if cfg.Scoring.NegativePenalty != 5 {
		t.Errorf("NegativePenalty = %g, want 5", cfg.Scoring.NegativePenalty)
	}
	if cfg.Scoring.VetoScore != -100 {
		t.Errorf("VetoScore = %g, want -100", cfg.Scoring.VetoScore)
	}
	if len(cfg.Scoring.DisqualifyingNames) != 2 {
		t.Errorf("DisqualifyingNames = %v", cfg.Scoring.DisqualifyingNames)
	}
	if cfg.Review.DefaultThreshold != 0 {
		t.Errorf("DefaultThreshold = %g, want 0", cfg.Review.DefaultThreshold)
	}
	if cfg.Review.LearningRate != 0.1 {
		t.Errorf("LearningRate = %g, want 0.1", cfg.Review.LearningRate)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.Scoring.BaseKeywords) == 0 {
		t.Error("missing file did not fall back to defaults")
	}
	if strings.HasPrefix(cfg.Database.Path, "~") {
		t.Errorf("database path not expanded: %s", cfg.Database.Path)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[database]
path = "` + filepath.Join(dir, "custom.db") + `"

[review]
default_threshold = 2.0
learning_rate = 0.2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Review.DefaultThreshold != 2.0 {
		t.Errorf("DefaultThreshold = %g, want 2.0", cfg.Review.DefaultThreshold)
	}
	if cfg.Review.LearningRate != 0.2 {
		t.Errorf("LearningRate = %g, want 0.2", cfg.Review.LearningRate)
	}
	// Sections not present in the file keep their defaults.
	if len(cfg.Scoring.BaseKeywords) == 0 {
		t.Error("scoring defaults lost on partial override")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[review]
learning_rate = -1.0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected validation error for negative learning rate")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty database path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: true,
		},
		{
			name:    "empty keyword dictionary",
			mutate:  func(c *Config) { c.Scoring.BaseKeywords = nil },
			wantErr: true,
		},
		{
			name:    "negative keyword weight",
			mutate:  func(c *Config) { c.Scoring.BaseKeywords["AI"] = -1 },
			wantErr: true,
		},
		{
			name:    "negative penalty below zero",
			mutate:  func(c *Config) { c.Scoring.NegativePenalty = -5 },
			wantErr: true,
		},
		{
			name:    "non-negative veto score",
			mutate:  func(c *Config) { c.Scoring.VetoScore = 0 },
			wantErr: true,
		},
		{
			name:    "zero learning rate",
			mutate:  func(c *Config) { c.Review.LearningRate = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := expandPath("~/foo/bar.db")
	if err != nil {
		t.Fatalf("expandPath() error: %v", err)
	}
	if got != filepath.Join(home, "foo/bar.db") {
		t.Errorf("expandPath() = %s", got)
	}

	got, err = expandPath("/absolute/path.db")
	if err != nil {
		t.Fatalf("expandPath() error: %v", err)
	}
	if got != "/absolute/path.db" {
		t.Errorf("absolute path changed: %s", got)
	}
}
