package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "tilerect.yaml"

// Config represents the top-level configuration parsed from tilerect.yaml.
type Config struct {
	// Search tunes the rectangle search.
	Search SearchConfig `yaml:"search"`
	// Output selects how results are printed.
	Output OutputConfig `yaml:"output"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig controls tracing and the constrained search.
type SearchConfig struct {
	// Workers is the number of goroutines used by the enclosed search.
	Workers int `yaml:"workers"`
	// Index is the containment check: "scan" or "prefix".
	Index string `yaml:"index"`
	// AllowDiagonalEdges traces non axis-aligned edges as filled rectangles
	// instead of rejecting the input.
	AllowDiagonalEdges bool `yaml:"allow_diagonal_edges"`
}

// OutputConfig configures result printing.
type OutputConfig struct {
	// Format is "text" or "yaml".
	Format string `yaml:"format"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path"`
	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int `yaml:"max_size_mb"`
	// MaxBackups is the number of rotated files kept.
	MaxBackups int `yaml:"max_backups"`
	// MaxAgeDays is how long rotated files are kept.
	MaxAgeDays int `yaml:"max_age_days"`
}

var validIndexes = map[string]bool{
	"scan":   true,
	"prefix": true,
}

var validFormats = map[string]bool{
	"text": true,
	"yaml": true,
}

// Load reads the config at path, applies environment overrides and defaults,
// and validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := ApplyEnv(&cfg); err != nil {
		return nil, err
	}
	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envOverrides maps environment variables onto config fields.
var envOverrides = []struct {
	key string
	set func(cfg *Config, val string) error
}{
	{"TILERECT_WORKERS", func(cfg *Config, val string) error {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("cannot parse %q as int: %w", val, err)
		}
		cfg.Search.Workers = n
		return nil
	}},
	{"TILERECT_INDEX", func(cfg *Config, val string) error {
		cfg.Search.Index = val
		return nil
	}},
	{"TILERECT_ALLOW_DIAGONAL", func(cfg *Config, val string) error {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("cannot parse %q as bool (use true/false/1/0): %w", val, err)
		}
		cfg.Search.AllowDiagonalEdges = b
		return nil
	}},
	{"TILERECT_FORMAT", func(cfg *Config, val string) error {
		cfg.Output.Format = val
		return nil
	}},
	{"TILERECT_LOG_LEVEL", func(cfg *Config, val string) error {
		cfg.Logging.Level = val
		return nil
	}},
	{"TILERECT_LOG_PATH", func(cfg *Config, val string) error {
		cfg.Logging.Path = val
		return nil
	}},
}

// ApplyEnv loads .env from the working directory when present, then lets
// TILERECT_* variables override file values. Variables already set in the
// process environment win over .env entries.
func ApplyEnv(cfg *Config) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	for _, o := range envOverrides {
		val, ok := os.LookupEnv(o.key)
		if !ok || val == "" {
			continue
		}
		if err := o.set(cfg, val); err != nil {
			return fmt.Errorf("%s: %w", o.key, err)
		}
	}
	return nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.Search.Workers == 0 {
		config.Search.Workers = 1
	}
	if config.Search.Index == "" {
		config.Search.Index = "scan"
	}
	if config.Output.Format == "" {
		config.Output.Format = "text"
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.MaxSizeMB == 0 {
		config.Logging.MaxSizeMB = 10
	}
	if config.Logging.MaxBackups == 0 {
		config.Logging.MaxBackups = 3
	}
	if config.Logging.MaxAgeDays == 0 {
		config.Logging.MaxAgeDays = 28
	}
}

// Validate checks the configuration for unsupported values.
func Validate(config *Config) error {
	if config.Search.Workers < 0 {
		return fmt.Errorf("invalid search workers: %d (must be >= 0)", config.Search.Workers)
	}
	if !validIndexes[config.Search.Index] {
		return fmt.Errorf("invalid search index: %s (allowed: %s)", config.Search.Index, allowedList(validIndexes))
	}
	if !validFormats[config.Output.Format] {
		return fmt.Errorf("invalid output format: %s (allowed: %s)", config.Output.Format, allowedList(validFormats))
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}
	if config.Logging.MaxSizeMB < 0 || config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("logging rotation limits must not be negative")
	}

	return nil
}

func allowedList(m map[string]bool) string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
