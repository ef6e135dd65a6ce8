package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/droid/internal/ui/output"
	"go.trai.ch/droid/internal/ui/style"
)

// PrettyHandler is a slog.Handler writing one coloured line per record:
// an icon for warnings and errors, the message, then key=value pairs.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// bound holds the key=value pairs added through WithAttrs, already qualified.
	bound []string
	// prefix qualifies keys of attributes added after WithGroup, e.g. "gradle.".
	prefix string
}

// NewPrettyHandler returns a PrettyHandler on w (os.Stderr when nil).
// Only opts.Level is honoured; it defaults to slog.LevelInfo.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether records at level are written.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes r as a single line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := decoration(r.Level)

	var b strings.Builder
	if icon != "" {
		b.WriteString(icon + " ")
	}
	b.WriteString(r.Message)

	pairs := slices.Clone(h.bound)
	r.Attrs(func(attr slog.Attr) bool {
		pairs = appendAttr(pairs, h.prefix, attr)
		return true
	})
	for _, p := range pairs {
		b.WriteString(" " + p)
	}

	line := h.out.String(b.String()).Foreground(color).String()
	_, err := h.out.WriteString(line + "\n")
	return err
}

// WithAttrs returns a handler that adds attrs to every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	bound := slices.Clip(slices.Clone(h.bound))
	for _, attr := range attrs {
		bound = appendAttr(bound, h.prefix, attr)
	}

	clone := *h
	clone.bound = bound
	return &clone
}

// WithGroup returns a handler that qualifies keys of later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func decoration(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}

// appendAttr appends attr as key=value pairs, flattening group values.
func appendAttr(pairs []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return pairs
	}

	if attr.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			pairs = appendAttr(pairs, groupPrefix, member)
		}
		return pairs
	}

	return append(pairs, prefix+attr.Key+"="+attr.Value.String())
}
