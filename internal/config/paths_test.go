package config

import (
	"path/filepath"
	"testing"
)

func TestResolveDataDir(t *testing.T) {
	t.Setenv("NOTATOR_DATA", "")

	paths, err := ResolveDataDir("")
	if err != nil {
		t.Fatalf("ResolveDataDir: %v", err)
	}
	if paths.DataDir() != DefaultDataDir {
		t.Fatalf("unexpected default data dir: %s", paths.DataDir())
	}

	paths, err = ResolveDataDir("/tmp/notes")
	if err != nil {
		t.Fatalf("ResolveDataDir flag: %v", err)
	}
	if paths.DataDir() != "/tmp/notes" {
		t.Fatalf("unexpected flag data dir: %s", paths.DataDir())
	}

	t.Setenv("NOTATOR_DATA", "/srv/notator")
	paths, err = ResolveDataDir("")
	if err != nil {
		t.Fatalf("ResolveDataDir env: %v", err)
	}
	if paths.DataDir() != "/srv/notator" {
		t.Fatalf("unexpected env data dir: %s", paths.DataDir())
	}
}

func TestResolveDataDirExpandsHome(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)
	t.Setenv("NOTATOR_DATA", "")

	paths, err := ResolveDataDir("~/notes")
	if err != nil {
		t.Fatalf("ResolveDataDir: %v", err)
	}
	if want := filepath.Join(home, "notes"); paths.DataDir() != want {
		t.Fatalf("unexpected data dir: got=%q want=%q", paths.DataDir(), want)
	}
}

func TestPaths(t *testing.T) {
	paths := NewPaths("/var/lib/notator")

	if got := paths.SnapshotPath(); got != filepath.Join("/var/lib/notator", "tabs_state.json") {
		t.Fatalf("unexpected snapshot path: %s", got)
	}
	if got := paths.QuotesPath(); got != filepath.Join("/var/lib/notator", "quotes.txt") {
		t.Fatalf("unexpected quotes path: %s", got)
	}
	if got := paths.KeymapPath(); got != filepath.Join("/var/lib/notator", "keymap.json") {
		t.Fatalf("unexpected keymap path: %s", got)
	}
	if got := paths.SettingsPath(); got != filepath.Join("/var/lib/notator", "settings.toml") {
		t.Fatalf("unexpected settings path: %s", got)
	}
	if got := paths.BoltPath(); got != filepath.Join("/var/lib/notator", "notator.db") {
		t.Fatalf("unexpected bolt path: %s", got)
	}
}

func TestNotePath(t *testing.T) {
	paths := NewPaths("data")

	if got := paths.NotePath("draft.txt"); got != filepath.Join("data", "draft.txt") {
		t.Fatalf("unexpected note path: %s", got)
	}
	if got := paths.NotePath("/abs/other.txt"); got != "/abs/other.txt" {
		t.Fatalf("absolute note path rewritten: %s", got)
	}
	nested := filepath.Join("sub", "note.txt")
	if got := paths.NotePath(nested); got != nested {
		t.Fatalf("nested note path rewritten: %s", got)
	}
}
