package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/netrom-source/notator/internal/app"
	"github.com/netrom-source/notator/internal/config"
	"github.com/netrom-source/notator/internal/logging"
	"github.com/netrom-source/notator/internal/store"
)

const usageText = `notator is a distraction-light note-taking terminal.

Usage:
  notator [flags]

Flags:
  -data dir          data directory (default "data", or $NOTATOR_DATA)
  -log-level level   debug, info, warn or error (overrides settings.toml)
  -version           print version and exit
  -h, --help         show help

Files (inside the data directory):
  settings.toml      configuration
  tabs_state.json    open-tab snapshot (or notator.db with the bolt backend)
  keymap.json        optional keybinding overrides
  quotes.txt         quote corpus, entries separated by blank lines
`

func main() {
	fs := flag.NewFlagSet("notator", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usageText) }
	dataDir := fs.String("data", "", "data directory")
	logLevel := fs.String("log-level", "", "log level override")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return
		}
		os.Exit(2)
	}
	if *showVersion {
		fmt.Println(buildVersion())
		return
	}
	if err := run(*dataDir, *logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "notator error: %v\n", err)
		os.Exit(1)
	}
}

func run(dataDir, logLevel string) error {
	paths, err := config.ResolveDataDir(dataDir)
	if err != nil {
		return err
	}
	if err := paths.EnsureDataDir(); err != nil {
		return err
	}
	settings, err := config.LoadSettings(paths)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if strings.TrimSpace(logLevel) == "" {
		logLevel = settings.LogLevel()
	}

	log, closeLog, err := openLogger(settings, paths, logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	repoPaths := store.RepositoryPaths{
		StatePath:  paths.SnapshotPath(),
		KeymapPath: paths.KeymapPath(),
		DBPath:     paths.BoltPath(),
	}
	backend := settings.StorageBackend()
	if backend == config.BackendBolt {
		backend = store.RepositoryBackendBbolt
	}
	repo, err := store.OpenRepository(repoPaths, backend)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer repo.Close()

	ctx := context.Background()
	if err := store.SeedRepositoryFromFiles(ctx, repo, repoPaths); err != nil {
		log.Warn("storage seed failed", logging.F("error", err))
	}

	overrides, err := repo.Keymaps().Load(ctx)
	if err != nil {
		return fmt.Errorf("load keymap: %w", err)
	}
	keymap, err := app.NewKeymap(overrides)
	if err != nil {
		return fmt.Errorf("keymap: %w", err)
	}

	model := app.NewModel(app.Options{
		Settings: settings,
		Paths:    paths,
		Repo:     repo,
		Notes:    store.NewNoteStore(paths.DataDir()),
		Keymap:   keymap,
		Logger:   log,
	})
	log.Info("notator starting",
		logging.F("version", buildVersion()),
		logging.F("data_dir", paths.DataDir()),
		logging.F("backend", repo.Backend()),
	)

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// openLogger writes logfmt to the configured file. Stdout belongs to
// the TUI, so "-" (no file) discards instead.
func openLogger(settings config.Settings, paths config.Paths, level string) (logging.Logger, func(), error) {
	path := settings.LogFile(paths)
	if path == "" {
		return logging.Nop(), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log := logging.New(file, logging.ParseLevel(level))
	return log, func() { _ = file.Close() }, nil
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision, modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			if modified == "true" {
				return revision + "-dirty"
			}
			return revision
		}
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "dev"
}
