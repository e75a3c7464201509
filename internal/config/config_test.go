package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"trackforge/internal/config"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(tempHome, ".config", "trackforge", "config.toml")
	if resolved != want {
		t.Fatalf("resolved path = %q, want %q", resolved, want)
	}
	if !cfg.Sanity.Warnings {
		t.Fatal("expected sanity warnings enabled by default")
	}
	if cfg.Tools.FLAC != "flac" || cfg.Tools.Metaflac != "metaflac" || cfg.Tools.Oggenc != "oggenc" {
		t.Fatalf("unexpected tool defaults: %+v", cfg.Tools)
	}
	if cfg.Tools.OggBitrate != 128 {
		t.Fatalf("unexpected ogg bitrate: %d", cfg.Tools.OggBitrate)
	}
	if cfg.Scan.Concurrency != 4 {
		t.Fatalf("unexpected scan concurrency: %d", cfg.Scan.Concurrency)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[grouping]
simple_album = true

[sanity]
warnings = false

[makefile]
verbose = true
use_echo_e = true

[tools]
oggenc = "  oggenc2  "
ogg_bitrate = 192

[logging]
format = "JSON"
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if !cfg.Grouping.SimpleAlbum || cfg.Sanity.Warnings {
		t.Fatalf("unexpected grouping/sanity: %+v %+v", cfg.Grouping, cfg.Sanity)
	}
	if !cfg.Makefile.Verbose || !cfg.Makefile.UseEchoE {
		t.Fatalf("unexpected makefile section: %+v", cfg.Makefile)
	}
	if cfg.Tools.Oggenc != "oggenc2" || cfg.Tools.OggBitrate != 192 || cfg.Tools.FLAC != "flac" {
		t.Fatalf("unexpected tools: %+v", cfg.Tools)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "bitrate", content: "[tools]\nogg_bitrate = 8\n", want: "tools.ogg_bitrate"},
		{name: "concurrency", content: "[scan]\nconcurrency = -1\n", want: "scan.concurrency"},
		{name: "format", content: "[logging]\nformat = \"xml\"\n", want: "logging.format"},
		{name: "level", content: "[logging]\nlevel = \"loud\"\n", want: "logging.level"},
		{name: "tool with spaces", content: "[tools]\nflac = \"flac --best\"\n", want: "tools.flac"},
		{name: "unknown key", content: "[grouping]\nbogus = true\n", want: "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var decoded config.Config
	if err := toml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("sample is not valid TOML: %v", err)
	}
	if decoded != config.Default() {
		t.Fatalf("sample config drifted from defaults:\n%+v\n%+v", decoded, config.Default())
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/music/list.xml")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "music", "list.xml") {
		t.Fatalf("ExpandPath = %q", got)
	}
}
