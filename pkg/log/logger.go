package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu   sync.Mutex
	sink io.Closer
)

// Options configures the global logger.
type Options struct {
	// Level is one of "debug", "info", "warn", "error". Defaults to "info".
	Level string
	// Path is the log file. If empty, logs go to Stderr.
	Path string
	// MaxSizeMB, MaxBackups and MaxAgeDays control rotation of Path.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	// Stderr overrides os.Stderr, mainly for tests.
	Stderr io.Writer
}

// Init initializes the global logger.
// It configures the default slog logger to write to a rotating file at
// opts.Path (or stderr) at the requested level. Calling Init again closes
// the previous file.
func Init(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	var w io.Writer = os.Stderr
	if opts.Stderr != nil {
		w = opts.Stderr
	}

	var next io.Closer
	if opts.Path != "" {
		dir := filepath.Dir(opts.Path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}

		lj := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}
		w = lj
		next = lj
	}

	if sink != nil {
		_ = sink.Close()
	}
	sink = next

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(opts.Level),
	})
	slog.SetDefault(slog.New(handler))
	return nil
}

// Close flushes and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if sink == nil {
		return nil
	}
	err := sink.Close()
	sink = nil
	return err
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
