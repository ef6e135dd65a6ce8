package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/droid/internal/adapters/detector"
	"go.trai.ch/droid/internal/core/domain"
)

func TestDetectEnvironment_CI(t *testing.T) {
	tests := []struct {
		name    string
		ciValue string
		isCI    bool
	}{
		{name: "CI=true forces json", ciValue: "true", isCI: true},
		{name: "CI=1 forces json", ciValue: "1", isCI: true},
		{name: "CI=false does not force json", ciValue: "false", isCI: false},
		{name: "No CI env var", ciValue: "", isCI: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)

			assert.Equal(t, tt.isCI, detector.IsCI())
			if tt.isCI {
				assert.Equal(t, detector.FormatJSON, detector.DetectEnvironment())
			}
		})
	}
}

func TestDetectEnvironment_NeverAuto(t *testing.T) {
	t.Setenv("CI", "")

	got := detector.DetectEnvironment()
	assert.Contains(t, []detector.LogFormat{detector.FormatPretty, detector.FormatJSON}, got)
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.LogFormat
		userFlag     string
		expected     detector.LogFormat
	}{
		{name: "auto respects detection (pretty)", autoDetected: detector.FormatPretty, userFlag: "auto", expected: detector.FormatPretty},
		{name: "auto respects detection (json)", autoDetected: detector.FormatJSON, userFlag: "auto", expected: detector.FormatJSON},
		{name: "empty flag respects detection", autoDetected: detector.FormatPretty, userFlag: "", expected: detector.FormatPretty},
		{name: "pretty overrides detection", autoDetected: detector.FormatJSON, userFlag: "pretty", expected: detector.FormatPretty},
		{name: "text is alias for pretty", autoDetected: detector.FormatJSON, userFlag: "text", expected: detector.FormatPretty},
		{name: "json overrides detection", autoDetected: detector.FormatPretty, userFlag: "json", expected: detector.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detector.ResolveFormat(tt.autoDetected, tt.userFlag)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveFormat_RejectsUnknown(t *testing.T) {
	for _, flag := range []string{"xml", "JSON", "yaml"} {
		got, err := detector.ResolveFormat(detector.FormatPretty, flag)
		require.ErrorIs(t, err, domain.ErrInvalidLogFormat, flag)
		assert.Equal(t, detector.FormatPretty, got)
	}
}

func TestLogFormat_String(t *testing.T) {
	assert.Equal(t, "auto", detector.FormatAuto.String())
	assert.Equal(t, "pretty", detector.FormatPretty.String())
	assert.Equal(t, "json", detector.FormatJSON.String())
}
