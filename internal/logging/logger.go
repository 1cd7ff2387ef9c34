// Package logging wraps zerolog with subsystem-scoped child loggers.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// levels maps config names to zerolog levels, quietest first.
var levels = []struct {
	name  string
	level zerolog.Level
}{
	{"silent", zerolog.Disabled},
	{"fatal", zerolog.FatalLevel},
	{"error", zerolog.ErrorLevel},
	{"warn", zerolog.WarnLevel},
	{"info", zerolog.InfoLevel},
	{"debug", zerolog.DebugLevel},
	{"trace", zerolog.TraceLevel},
}

// Levels lists the accepted level names.
var Levels = func() []string {
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.name
	}
	return names
}()

// ValidLevel reports whether name is an accepted level. Case is ignored.
func ValidLevel(name string) bool {
	_, ok := lookupLevel(name)
	return ok
}

// Logger wraps zerolog to provide subsystem-scoped child loggers.
type Logger struct {
	zl zerolog.Logger
}

// New creates a root logger writing JSON lines to w at the given level.
// If w is nil, output goes to a console writer on stderr.
func New(w io.Writer, level string) *Logger {
	if w == nil {
		return NewConsole(os.Stderr, level)
	}
	zl := zerolog.New(w).With().Timestamp().Logger()
	return &Logger{zl: zl.Level(parseLevel(level))}
}

// NewConsole creates a logger writing uncolored, human-readable lines to
// w. CLI subcommands log this way.
func NewConsole(w io.Writer, level string) *Logger {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.Kitchen,
	}
	zl := zerolog.New(cw).With().Timestamp().Logger()
	return &Logger{zl: zl.Level(parseLevel(level))}
}

// NewFile creates a JSON logger appending to path. The TUI owns the
// terminal, so it logs here instead of stderr. The returned closer must be
// called on shutdown.
func NewFile(path, level string) (*Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return New(f, level), f, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Sub returns a child logger tagged with a subsystem name.
func (l *Logger) Sub(subsystem string) *Logger {
	return &Logger{zl: l.zl.With().Str("subsystem", subsystem).Logger()}
}

// Debug logs at debug level.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }

// Info logs at info level.
func (l *Logger) Info() *zerolog.Event { return l.zl.Info() }

// Warn logs at warn level.
func (l *Logger) Warn() *zerolog.Event { return l.zl.Warn() }

// Error logs at error level.
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

func lookupLevel(name string) (zerolog.Level, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, l := range levels {
		if l.name == name {
			return l.level, true
		}
	}
	return zerolog.InfoLevel, false
}

// parseLevel falls back to info for unknown names.
func parseLevel(name string) zerolog.Level {
	level, _ := lookupLevel(name)
	return level
}
