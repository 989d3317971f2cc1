// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"

	"go.trai.ch/xcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
	out    io.Writer
	json   bool
}

// New creates a new Logger writing human-readable text to stderr.
func New() *Logger {
	l := &Logger{out: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.rebuild()
}

// SetJSON switches between the text and JSON handlers.
func (l *Logger) SetJSON(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.json = enabled
	l.rebuild()
}

// rebuild must be called with mu held for writing.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.json {
		l.logger = slog.New(slog.NewJSONHandler(l.out, opts))
		return
	}
	l.logger = slog.New(slog.NewTextHandler(l.out, opts))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error message along with any metadata attached to it.
func (l *Logger) Error(err error) {
	attrs := []any{"error", err}
	attrs = append(attrs, metadataAttrs(err)...)

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", attrs...)
}

// metadataAttrs flattens the metadata of the outermost zerr error in the chain.
func metadataAttrs(err error) []any {
	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		return nil
	}
	meta := zErr.Metadata()
	attrs := make([]any, 0, 2*len(meta))
	for _, key := range slices.Sorted(maps.Keys(meta)) {
		attrs = append(attrs, key, meta[key])
	}
	return attrs
}
