// Package logger configures the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	LevelDebug   = slog.LevelDebug
	LevelInfo    = slog.LevelInfo
	LevelWarning = slog.LevelWarn
	LevelError   = slog.LevelError
)

// Output formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

var programLevel = new(slog.LevelVar)

// Logger is the configured process logger. It is also installed as the
// slog default by Setup.
var Logger = slog.Default()

// ParseLevel converts a level name to slog.Level
func ParseLevel(levelStr string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return LevelDebug, nil
	case "", "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %s", levelStr)
	}
}

// New builds a logger writing to w in the given format
func New(w io.Writer, level slog.Leveler, format string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(format) {
	case "", FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", format)
	}
}

// Setup configures Logger from a level name and format and installs it as
// the slog default. Output goes to stdout.
func Setup(levelStr, format string) (*slog.Logger, error) {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	programLevel.Set(level)

	l, err := New(os.Stdout, programLevel, format)
	if err != nil {
		return nil, err
	}
	Logger = l
	slog.SetDefault(l)
	return l, nil
}

// SetLevel changes the minimum level of the configured logger
func SetLevel(level slog.Level) {
	programLevel.Set(level)
}

// GetLevel returns the minimum level of the configured logger
func GetLevel() slog.Level {
	return programLevel.Level()
}

// Discard returns a logger that drops everything, for tests and quiet CLIs
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: LevelError + 1}))
}
