// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/droid/internal/core/ports"
	"go.trai.ch/droid/internal/ui/style"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// metadataer describes an error carrying structured metadata, like zerr.Error.
type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger instance writing pretty output to stderr.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(newHandler(os.Stderr, false)),
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination, preserving the current mode.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(newHandler(w, l.jsonMode))
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(newHandler(l.output, enable))
}

func newHandler(w io.Writer, jsonMode bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
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

// Error logs an error and its cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the error chain. zerr errors contribute their own
// message and metadata; the first standard error ends the walk with its full text.
// Message-less zerr links (metadata attached to a foreign error) merge their
// metadata into the next entry.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), metadata: pending})
			break
		}

		var meta map[string]any
		if md, ok := current.(metadataer); ok {
			meta = md.Metadata()
		}

		if m.Message() == "" {
			pending = mergeMetadata(pending, meta)
		} else {
			entries = append(entries, errorEntry{message: m.Message(), metadata: mergeMetadata(pending, meta)})
			pending = nil
		}
		current = errors.Unwrap(current)
	}

	if len(entries) == 0 {
		entries = append(entries, errorEntry{message: err.Error(), metadata: pending})
	}
	return entries
}

func mergeMetadata(a, b map[string]any) map[string]any {
	if len(a) == 0 {
		return b
	}
	merged := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

// formatErrorEntries renders entries as a main error followed by its causes.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.message, "\n")
		first := msgLines[0] + formatMetadata(entry.metadata)

		if i == 0 {
			lines = append(lines, "Error: "+first)
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    "+style.Arrow+" "+first)
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(meta map[string]any) string {
	if len(meta) == 0 {
		return ""
	}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, meta[k]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
