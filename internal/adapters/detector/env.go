// Package detector provides environment detection for log format selection.
package detector

import (
	"os"

	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// LogFormat represents how log records are rendered.
type LogFormat int

const (
	// FormatAuto chooses a format from the environment.
	FormatAuto LogFormat = iota
	// FormatPretty renders coloured, human-readable lines.
	FormatPretty
	// FormatJSON renders one JSON object per line.
	FormatJSON
)

// String returns the flag spelling of the format.
func (f LogFormat) String() string {
	switch f {
	case FormatPretty:
		return "pretty"
	case FormatJSON:
		return "json"
	default:
		return "auto"
	}
}

// IsCI reports whether the CI environment variable marks a CI run.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// DetectEnvironment returns the recommended log format based on the environment.
// It checks if stderr is a TTY and if CI environment variables are set.
func DetectEnvironment() LogFormat {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	if !isTTY || IsCI() {
		return FormatJSON
	}
	return FormatPretty
}

// ResolveFormat applies the user's --log-format flag to auto-detection.
// userFlag is one of "auto" (or empty), "pretty" (alias "text") or "json";
// anything else fails with domain.ErrInvalidLogFormat.
func ResolveFormat(autoDetected LogFormat, userFlag string) (LogFormat, error) {
	switch userFlag {
	case "", "auto":
		return autoDetected, nil
	case "pretty", "text":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	default:
		return autoDetected, zerr.With(zerr.Wrap(domain.ErrInvalidLogFormat, "cannot resolve log format"), "log_format", userFlag)
	}
}
