package testsupport

import (
	"path/filepath"
	"testing"

	"moviemanager/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// WithLookupURL points the IMDb provider at url.
func WithLookupURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.IMDb.BaseURL = url
	}
}

// NewConfig produces a default config whose lock directory lives under a
// per-test temp directory.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.LockDir = filepath.Join(t.TempDir(), "locks")
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}
