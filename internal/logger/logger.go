// Package logger builds the structured logger used by the album
// collection manager.
//
// Records are JSON encoded with UTC timestamps and written to a
// size-rotated file. Console output belongs to the command protocol,
// so the logger never writes to stdout or stderr.
package logger

import (
	"io"
	"log/slog"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how much is logged.
type Config struct {
	// Path of the log file. Empty disables logging.
	Path string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	// Debug lowers the level from Info to Debug.
	Debug bool
}

// New returns a JSON logger and a function that closes the underlying
// file. The close function is always non-nil.
//
// Example:
//
//	log, closeLog, err := logger.New(logger.Config{Path: "/tmp/albumcat.log"})
//	if err != nil {
//	    return err
//	}
//	defer closeLog()
func New(cfg Config) (*slog.Logger, func() error, error) {
	if cfg.Path == "" {
		return Discard(), func() error { return nil }, nil
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   false,
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	return NewWithWriter(rotator, level), rotator.Close, nil
}

// NewWithWriter returns a JSON logger writing to w.
func NewWithWriter(w io.Writer, level slog.Leveler) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
	return slog.New(handler).With("app", "albumcat")
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
