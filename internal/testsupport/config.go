package testsupport

import (
	"path/filepath"
	"testing"

	"bloggen/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CorpusDir = filepath.Join(base, "corpus")
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.CacheDir = filepath.Join(base, "cache")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithMinContentChars overrides the minimum article length on the test config.
func WithMinContentChars(n int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Generation.MinContentChars = n
	}
}

// WithPromptCharBudget overrides the prompt character budget on the test config.
func WithPromptCharBudget(n int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Generation.PromptCharBudget = n
	}
}
