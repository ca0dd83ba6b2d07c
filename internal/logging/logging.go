// Package logging owns the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	charmlog "github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeFormat = "2006-01-02 15:04:05"

var (
	mu     sync.RWMutex
	logger = newLogger(os.Stderr, charmlog.InfoLevel)
)

func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Prefix:          "botimint",
	})
}

// Init configures a logger that writes to stderr and a rotating file.
func Init(logPath, level string) error {
	if logPath == "" {
		return fmt.Errorf("log path is empty")
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    25, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	}

	l := newLogger(io.MultiWriter(os.Stderr, rotator), lvl)

	mu.Lock()
	logger = l
	mu.Unlock()

	l.Debug("logging initialized", "path", logPath, "level", lvl.String())
	return nil
}

// SetOutput replaces the logger with one writing only to w. Used by tests
// and one-shot CLI commands that must keep stdout clean.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w, logger.GetLevel())
}

func SetLevel(level charmlog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetLevel(level)
}

// SetLevelName parses name and applies it.
func SetLevelName(name string) error {
	lvl, err := ParseLevel(name)
	if err != nil {
		return err
	}
	SetLevel(lvl)
	return nil
}

// ParseLevel accepts the level names used in configuration. Empty means info.
func ParseLevel(name string) (charmlog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return charmlog.InfoLevel, nil
	}
	lvl, err := charmlog.ParseLevel(name)
	if err != nil {
		return charmlog.InfoLevel, fmt.Errorf("invalid log level %q", name)
	}
	return lvl, nil
}

func L() *charmlog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
