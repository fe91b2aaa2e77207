// Package logger holds the process-wide logrus logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global logger. It discards output until Init is called, so
// packages may log freely from tests and library code.
var Log = newDiscard()

// Options configure Init.
type Options struct {
	Level  string // logrus level name; empty means "info"
	Format string // "json" or "text"
	File   string // rotated log file; empty means stderr
}

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init configures Log from opts. The terminal belongs to the game screen, so
// interactive runs should always pass a File.
func Init(opts Options) error {
	l := logrus.New()

	levelName := opts.Level
	if levelName == "" {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	l.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: opts.File != ""})
	}

	if opts.File == "" {
		l.SetOutput(os.Stderr)
	} else {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return fmt.Errorf("logger: create log dir: %w", err)
		}
		l.SetOutput(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}

	Log = l
	return nil
}

// DefaultFile returns $XDG_DATA_HOME/delve/delve.log, falling back to
// ~/.local/share/delve/delve.log.
func DefaultFile() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dir, "delve", "delve.log")
}
