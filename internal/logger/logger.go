// Package logger writes the coderefine debug log. Everything goes to one
// file (DefaultLogPath unless Init picks another) through log/slog. The file
// is rotated when it grows past MaxLogSize at open time, keeping MaxBackups
// numbered copies next to it.
//
// Call sites either use the printf helpers (Debug, Info, Warn, Error) for
// one-off messages or a structured logger from ComponentLogger or
// WithRequest.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// DefaultLogPath is the log file used when Init is never called.
const DefaultLogPath = "/tmp/coderefine-debug.log"

const (
	// MaxLogSize is the size at which an existing log is rotated on open.
	MaxLogSize = 5 << 20
	// MaxBackups is the number of rotated copies kept (path.1 is newest).
	MaxBackups = 3
)

var (
	mu       sync.Mutex
	root     *slog.Logger
	logFile  *os.File
	levelVar = new(slog.LevelVar)
	opened   bool
)

// SetDebug switches between debug and info level. It may be called before
// or after the log file is opened.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Init opens the log at path. Only the first successful call (or the first
// implicit open at DefaultLogPath) takes effect until Reset.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	if opened {
		return nil
	}
	return openLocked(path)
}

// openLocked rotates and opens path. mu must be held.
func openLocked(path string) error {
	if err := rotate(path); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	root = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	opened = true

	root.Info("logger initialized", "path", path, "level", levelVar.Level().String())
	return nil
}

// rotate shifts path to path.1, path.1 to path.2 and so on when path is a
// regular file of at least MaxLogSize bytes. The oldest copy is dropped.
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() || info.Size() < MaxLogSize {
		return nil
	}
	for i := MaxBackups - 1; i >= 1; i-- {
		if err := os.Rename(backupPath(path, i), backupPath(path, i+1)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to rotate log %s: %w", path, err)
		}
	}
	if err := os.Rename(path, backupPath(path, 1)); err != nil {
		return fmt.Errorf("failed to rotate log %s: %w", path, err)
	}
	return nil
}

func backupPath(path string, n int) string {
	return path + "." + strconv.Itoa(n)
}

// current returns the root logger, opening DefaultLogPath on first use. It
// returns nil when the log cannot be written. mu must be held.
func current() *slog.Logger {
	if !opened {
		if err := openLocked(DefaultLogPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			opened = true
		}
	}
	return root
}

func logf(level slog.Level, format string, args ...any) {
	mu.Lock()
	l := current()
	mu.Unlock()

	if l == nil || !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug writes a printf-style debug message
func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }

// Info writes a printf-style info message
func Info(format string, args ...any) { logf(slog.LevelInfo, format, args...) }

// Warn writes a printf-style warning
func Warn(format string, args ...any) { logf(slog.LevelWarn, format, args...) }

// Error writes a printf-style error
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }

// ComponentLogger returns a logger tagged with component=name.
//
//	log := logger.ComponentLogger("Clipboard")
//	log.Debug("wrote text", "bytes", n)
func ComponentLogger(name string) *slog.Logger {
	return with(slog.String("component", name))
}

// WithRequest returns a logger tagged with the request kind and token, for
// tracing one round trip through the service including stale drops.
func WithRequest(kind string, token uint64) *slog.Logger {
	return with(slog.String("request", kind), slog.Uint64("token", token))
}

func with(attrs ...slog.Attr) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	l := current()
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return l.With(args...)
}

// Close closes the log file. Later messages are dropped.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	root = nil
	opened = true
}

// Reset closes the log and forgets the path and level so the next Init or
// message opens a fresh file. Tests use it between cases.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	root = nil
	opened = false
	levelVar = new(slog.LevelVar)
}

// ClearLogs removes DefaultLogPath and its rotated copies and returns how
// many files were deleted.
func ClearLogs() (int, error) {
	return clearLogs(DefaultLogPath)
}

func clearLogs(path string) (int, error) {
	count := 0
	if err := os.Remove(path); err == nil {
		count++
	} else if !os.IsNotExist(err) {
		return count, err
	}

	backups, err := filepath.Glob(path + ".[0-9]*")
	if err != nil {
		return count, err
	}
	for _, p := range backups {
		if err := os.Remove(p); err == nil {
			count++
		} else if !os.IsNotExist(err) {
			return count, err
		}
	}
	return count, nil
}
