package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel            = "gpt-4o-mini"
	DefaultFallbackEncoding = "cl100k_base"
	DefaultOutputFactor     = 4.0
)

type Config struct {
	Model            string  `yaml:"model"`
	FallbackEncoding string  `yaml:"fallback_encoding"`
	OutputFactor     float64 `yaml:"output_factor"`
	DisableHistory   bool    `yaml:"disable_history"`
	BaseDir          string  `yaml:"base_dir"`
}

func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Model:            DefaultModel,
		FallbackEncoding: DefaultFallbackEncoding,
		OutputFactor:     DefaultOutputFactor,
		BaseDir:          filepath.Join(home, ".tokcap"),
	}
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. Zero values left by a partial file are backfilled.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.FallbackEncoding == "" {
		cfg.FallbackEncoding = DefaultFallbackEncoding
	}
	if cfg.OutputFactor == 0 {
		cfg.OutputFactor = DefaultOutputFactor
	}
	if cfg.BaseDir == "" {
		home, _ := os.UserHomeDir()
		cfg.BaseDir = filepath.Join(home, ".tokcap")
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.OutputFactor <= 0 {
		return fmt.Errorf("config: output_factor must be > 0, got %v", c.OutputFactor)
	}
	return nil
}

// HistoryPath returns the sqlite file that stores past estimates.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.BaseDir, "history.db")
}

func (c *Config) EnsureDirs() error {
	if err := os.MkdirAll(c.BaseDir, 0o755); err != nil {
		return fmt.Errorf("config: create %s: %w", c.BaseDir, err)
	}
	return nil
}
