package testsupport

import (
	"path/filepath"
	"testing"

	"tareval/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	cfg := &cfgVal
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSmoothing enables BLEU smoothing on the test config.
func WithSmoothing() ConfigOption {
	return func(c *config.Config) {
		c.Scoring.Smooth = true
	}
}

// WithMaxNgramOrder overrides the BLEU n-gram order on the test config.
func WithMaxNgramOrder(order int) ConfigOption {
	return func(c *config.Config) {
		c.Scoring.MaxNgramOrder = order
	}
}
