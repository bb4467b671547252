package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDataDir is the directory Notator keeps its notes and state in
// when no override is given. It is resolved relative to the working
// directory so a notes collection travels with the place it is run from.
const DefaultDataDir = "data"

const envDataDir = "NOTATOR_DATA"

// Paths resolves every file Notator touches against one data directory.
type Paths struct {
	dataDir string
}

// ResolveDataDir picks the data directory: an explicit flag value wins,
// then the NOTATOR_DATA environment variable, then the default. A "~/"
// prefix is expanded against the user's home directory.
func ResolveDataDir(flagValue string) (Paths, error) {
	dir := strings.TrimSpace(flagValue)
	if dir == "" {
		dir = strings.TrimSpace(os.Getenv(envDataDir))
	}
	if dir == "" {
		dir = DefaultDataDir
	}
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, err
		}
		dir = filepath.Join(home, dir[2:])
	}
	return Paths{dataDir: dir}, nil
}

// NewPaths wraps an already-resolved data directory.
func NewPaths(dataDir string) Paths {
	return Paths{dataDir: dataDir}
}

func (p Paths) DataDir() string {
	if p.dataDir == "" {
		return DefaultDataDir
	}
	return p.dataDir
}

// EnsureDataDir creates the data directory if it does not exist yet.
func (p Paths) EnsureDataDir() error {
	return os.MkdirAll(p.DataDir(), 0o755)
}

// SnapshotPath returns the path of the open-tabs snapshot file.
func (p Paths) SnapshotPath() string {
	return filepath.Join(p.DataDir(), "tabs_state.json")
}

// BoltPath returns the path of the bbolt database used when the bolt
// storage backend is selected.
func (p Paths) BoltPath() string {
	return filepath.Join(p.DataDir(), "notator.db")
}

// QuotesPath returns the path of the quote corpus.
func (p Paths) QuotesPath() string {
	return filepath.Join(p.DataDir(), "quotes.txt")
}

// KeymapPath returns the path of the optional keybinding override file.
func (p Paths) KeymapPath() string {
	return filepath.Join(p.DataDir(), "keymap.json")
}

// SettingsPath returns the path of the settings file.
func (p Paths) SettingsPath() string {
	return filepath.Join(p.DataDir(), "settings.toml")
}

// NotePath resolves a note file name against the data directory. Absolute
// paths and paths that already point into a directory are kept as-is.
func (p Paths) NotePath(name string) string {
	if filepath.IsAbs(name) || strings.ContainsRune(name, os.PathSeparator) {
		return name
	}
	return filepath.Join(p.DataDir(), name)
}
