package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.trai.ch/zerr"
)

// BuildMode selects the Android build variant.
type BuildMode string

const (
	// BuildModeDebug is the debuggable, unsigned variant.
	BuildModeDebug BuildMode = "debug"
	// BuildModeRelease is the optimized, signed variant.
	BuildModeRelease BuildMode = "release"
)

// BuildModes lists every supported build mode.
var BuildModes = []BuildMode{BuildModeDebug, BuildModeRelease}

// ParseBuildMode converts a user supplied string into a BuildMode.
// Matching is case-insensitive.
func ParseBuildMode(s string) (BuildMode, error) {
	switch BuildMode(strings.ToLower(strings.TrimSpace(s))) {
	case BuildModeDebug:
		return BuildModeDebug, nil
	case BuildModeRelease:
		return BuildModeRelease, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidBuildMode, "cannot parse build mode"), "mode", s)
	}
}

// String returns the raw mode value.
func (m BuildMode) String() string {
	return string(m)
}

// PascalCase returns the mode with its first letter upper-cased, e.g. "Release".
func (m BuildMode) PascalCase() string {
	return PascalCase(string(m))
}

// PascalCase upper-cases the first rune of s and leaves the remainder untouched.
func PascalCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
