package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsDefaults(t *testing.T) {
	paths := NewPaths(t.TempDir())

	cfg, err := LoadSettings(paths)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if cfg.StorageBackend() != BackendFile {
		t.Fatalf("unexpected backend: %q", cfg.StorageBackend())
	}
	if cfg.LogLevel() != "info" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel())
	}
	if got, want := cfg.QuoteWindowSeconds(), 900; got != want {
		t.Fatalf("unexpected quote window: %d", got)
	}
	if got, want := cfg.QuoteMaxRequests(), 3; got != want {
		t.Fatalf("unexpected quote limit: %d", got)
	}
	if got, want := cfg.MaxCountdownSeconds(), 86400; got != want {
		t.Fatalf("unexpected countdown cap: %d", got)
	}
	presets := cfg.TimerPresets()
	if len(presets) != 4 || presets[0] != 30 || presets[3] != 660 {
		t.Fatalf("unexpected presets: %v", presets)
	}
	min, max := cfg.HaikuBounds()
	if min != [3]int{3, 4, 3} || max != [3]int{5, 7, 5} {
		t.Fatalf("unexpected haiku bounds: min=%v max=%v", min, max)
	}
}

func TestLoadSettingsFromTOML(t *testing.T) {
	dir := t.TempDir()
	paths := NewPaths(dir)
	content := []byte(
		"[storage]\nbackend = \"bolt\"\n" +
			"[logging]\nlevel = \"debug\"\n" +
			"[timer]\npresets = [60, 300]\n" +
			"[haiku]\nmin_words = [5, 7, 5]\nmax_words = [5, 7, 5]\n" +
			"[quotes]\nwindow_seconds = 60\nmax_requests = 1\n")
	if err := os.WriteFile(filepath.Join(dir, "settings.toml"), content, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadSettings(paths)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if cfg.StorageBackend() != BackendBolt {
		t.Fatalf("unexpected backend: %q", cfg.StorageBackend())
	}
	if cfg.LogLevel() != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel())
	}
	presets := cfg.TimerPresets()
	if len(presets) != 2 || presets[0] != 60 || presets[1] != 300 {
		t.Fatalf("unexpected presets: %v", presets)
	}
	min, max := cfg.HaikuBounds()
	if min != [3]int{5, 7, 5} || max != [3]int{5, 7, 5} {
		t.Fatalf("unexpected haiku bounds: min=%v max=%v", min, max)
	}
	if got := cfg.QuoteWindowSeconds(); got != 60 {
		t.Fatalf("unexpected quote window: %d", got)
	}
	if got := cfg.QuoteMaxRequests(); got != 1 {
		t.Fatalf("unexpected quote limit: %d", got)
	}
}

func TestHaikuBoundsFallback(t *testing.T) {
	cfg := DefaultSettings()
	cfg.Haiku.MinWords = []int{9, 9}
	min, max := cfg.HaikuBounds()
	if min != [3]int{3, 4, 3} || max != [3]int{5, 7, 5} {
		t.Fatalf("partial config should fall back: min=%v max=%v", min, max)
	}

	cfg = DefaultSettings()
	cfg.Haiku.MinWords = []int{4, 4, 4}
	cfg.Haiku.MaxWords = []int{3, 7, 5}
	min, max = cfg.HaikuBounds()
	if min != [3]int{3, 4, 3} || max != [3]int{5, 7, 5} {
		t.Fatalf("inverted bounds should fall back: min=%v max=%v", min, max)
	}
}

func TestStorageBackendFallback(t *testing.T) {
	cfg := DefaultSettings()
	cfg.Storage.Backend = "postgres"
	if cfg.StorageBackend() != BackendFile {
		t.Fatalf("unknown backend should fall back to file")
	}
}

func TestLogFile(t *testing.T) {
	paths := NewPaths("data")
	cfg := DefaultSettings()

	if got, want := cfg.LogFile(paths), filepath.Join("data", "notator.log"); got != want {
		t.Fatalf("unexpected log file: got=%q want=%q", got, want)
	}

	cfg.Logging.File = "/var/log/notator.log"
	if got := cfg.LogFile(paths); got != "/var/log/notator.log" {
		t.Fatalf("absolute log file rewritten: %q", got)
	}

	cfg.Logging.File = "-"
	if got := cfg.LogFile(paths); got != "" {
		t.Fatalf("disabled log file should be empty, got %q", got)
	}
}
