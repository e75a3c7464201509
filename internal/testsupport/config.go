package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"trackforge/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	builder := &configBuilder{
		t:       t,
		baseDir: t.TempDir(),
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithTools overrides the configured program names. Empty names keep the
// defaults.
func WithTools(flac, metaflac, oggenc string) ConfigOption {
	return func(b *configBuilder) {
		if flac != "" {
			b.cfg.Tools.FLAC = flac
		}
		if metaflac != "" {
			b.cfg.Tools.Metaflac = metaflac
		}
		if oggenc != "" {
			b.cfg.Tools.Oggenc = oggenc
		}
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, the configured tools are stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		stubs := names
		if len(stubs) == 0 {
			stubs = []string{b.cfg.Tools.FLAC, b.cfg.Tools.Metaflac, b.cfg.Tools.Oggenc}
		}
		StubBinaries(b.t, filepath.Join(b.baseDir, "bin"), stubs...)
	}
}

// StubBinaries writes no-op executables into dir and prepends dir to PATH for
// the rest of the test.
func StubBinaries(t testing.TB, dir string, names ...string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	script := []byte("#!/bin/sh\nexit 0\n")
	for _, name := range names {
		target := filepath.Join(dir, name)
		if err := os.WriteFile(target, script, 0o755); err != nil {
			t.Fatalf("write stub %s: %v", name, err)
		}
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}
