package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultLogLevel     = "info"
	defaultLogFile      = "notator.log"
	defaultQuoteWindow  = 900
	defaultQuoteLimit   = 3
	defaultMaxCountdown = 86400
)

var defaultTimerPresets = []int{30, 180, 420, 660}

var (
	defaultHaikuMinWords = []int{3, 4, 3}
	defaultHaikuMaxWords = []int{5, 7, 5}
)

type Settings struct {
	Storage StorageConfig `toml:"storage"`
	Logging LoggingConfig `toml:"logging"`
	Timer   TimerConfig   `toml:"timer"`
	Haiku   HaikuConfig   `toml:"haiku"`
	Quotes  QuotesConfig  `toml:"quotes"`
}

type StorageConfig struct {
	Backend string `toml:"backend"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type TimerConfig struct {
	Presets    []int `toml:"presets"`
	MaxSeconds int   `toml:"max_seconds"`
}

type HaikuConfig struct {
	MinWords []int `toml:"min_words"`
	MaxWords []int `toml:"max_words"`
}

type QuotesConfig struct {
	WindowSeconds int `toml:"window_seconds"`
	MaxRequests   int `toml:"max_requests"`
}

func DefaultSettings() Settings {
	return Settings{
		Storage: StorageConfig{Backend: BackendFile},
		Logging: LoggingConfig{Level: defaultLogLevel, File: defaultLogFile},
		Timer: TimerConfig{
			Presets:    append([]int{}, defaultTimerPresets...),
			MaxSeconds: defaultMaxCountdown,
		},
		Haiku: HaikuConfig{
			MinWords: append([]int{}, defaultHaikuMinWords...),
			MaxWords: append([]int{}, defaultHaikuMaxWords...),
		},
		Quotes: QuotesConfig{
			WindowSeconds: defaultQuoteWindow,
			MaxRequests:   defaultQuoteLimit,
		},
	}
}

// Storage backends for the session snapshot.
const (
	BackendFile = "file"
	BackendBolt = "bolt"
)

func LoadSettings(paths Paths) (Settings, error) {
	return loadSettingsFromPath(paths.SettingsPath())
}

func (s Settings) StorageBackend() string {
	backend := strings.ToLower(strings.TrimSpace(s.Storage.Backend))
	switch backend {
	case BackendFile, BackendBolt:
		return backend
	default:
		return BackendFile
	}
}

func (s Settings) LogLevel() string {
	level := strings.TrimSpace(s.Logging.Level)
	if level == "" {
		return defaultLogLevel
	}
	return level
}

// LogFile resolves the log destination against the data directory unless
// the configured path is absolute. An explicit "-" disables file logging.
func (s Settings) LogFile(paths Paths) string {
	file := strings.TrimSpace(s.Logging.File)
	if file == "-" {
		return ""
	}
	if file == "" {
		file = defaultLogFile
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(paths.DataDir(), file)
}

func (s Settings) TimerPresets() []int {
	presets := make([]int, 0, len(s.Timer.Presets))
	for _, p := range s.Timer.Presets {
		if p > 0 {
			presets = append(presets, p)
		}
	}
	if len(presets) == 0 {
		presets = append(presets, defaultTimerPresets...)
	}
	return presets
}

func (s Settings) MaxCountdownSeconds() int {
	if s.Timer.MaxSeconds <= 0 {
		return defaultMaxCountdown
	}
	return s.Timer.MaxSeconds
}

// HaikuBounds returns per-line (min, max) word counts for the deletion
// gate. Invalid or partial configuration falls back to the defaults.
func (s Settings) HaikuBounds() (min [3]int, max [3]int) {
	copy(min[:], defaultHaikuMinWords)
	copy(max[:], defaultHaikuMaxWords)
	if len(s.Haiku.MinWords) != 3 || len(s.Haiku.MaxWords) != 3 {
		return min, max
	}
	for i := 0; i < 3; i++ {
		lo, hi := s.Haiku.MinWords[i], s.Haiku.MaxWords[i]
		if lo < 1 || hi < lo {
			copy(min[:], defaultHaikuMinWords)
			copy(max[:], defaultHaikuMaxWords)
			return min, max
		}
	}
	copy(min[:], s.Haiku.MinWords)
	copy(max[:], s.Haiku.MaxWords)
	return min, max
}

func (s Settings) QuoteWindowSeconds() int {
	if s.Quotes.WindowSeconds <= 0 {
		return defaultQuoteWindow
	}
	return s.Quotes.WindowSeconds
}

func (s Settings) QuoteMaxRequests() int {
	if s.Quotes.MaxRequests <= 0 {
		return defaultQuoteLimit
	}
	return s.Quotes.MaxRequests
}

func loadSettingsFromPath(path string) (Settings, error) {
	cfg := DefaultSettings()
	if err := readTOML(path, &cfg); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}
