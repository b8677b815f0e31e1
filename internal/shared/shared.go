// package shared defines shared helpers
package shared

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// NewLogger creates a new [log.Logger] instance with the specified [io.Writer], with timestamps and caller reporting enabled.
//
// The writer defaults to [os.Stderr]
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true, ReportCaller: true}
	return log.NewWithOptions(w, opts)
}

// NewFileLogger creates a [log.Logger] that appends to the file at path, creating parent directories as needed.
//
// TUI commands log here so that stderr output does not tear the rendered screen.
// The returned [io.Closer] releases the file.
func NewFileLogger(path string) (*log.Logger, io.Closer, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewLogger(f), f, nil
}

// WithLogger creates a child [log.Logger] with the specified key-value pairs added to all log entries.
func WithLogger(l *log.Logger, kv ...any) *log.Logger {
	return l.With(kv...)
}

// SetLogLevel sets the [log.Level] for the given [log.Logger].
func SetLogLevel(l *log.Logger, ll log.Level) {
	l.SetLevel(ll)
}

// SetLogLevelString parses level (debug, info, warn, error, fatal) and applies it to l.
func SetLogLevelString(l *log.Logger, level string) error {
	if level == "" {
		return nil
	}
	ll, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, level)
	}
	l.SetLevel(ll)
	return nil
}

// DiscardLogger returns a logger that writes nowhere; used as the default for library components.
func DiscardLogger() *log.Logger {
	return log.New(io.Discard)
}

// GenerateID generates a new v4 [uuid.UUID] as a string
func GenerateID() string {
	return uuid.New().String()
}
