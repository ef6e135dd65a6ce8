package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/droid/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "metadata on a foreign error moves to it",
			err:          zerr.With(errors.New("exit status 1"), "exit_code", 1),
			wantMessages: []string{"exit status 1"},
			wantMetadata: []map[string]any{{"exit_code": 1}},
		},
		{
			name: "zerr metadata stays with its message",
			err: zerr.With(
				zerr.With(zerr.New("base error"), "key1", "value1"),
				"key2", 42,
			),
			wantMessages: []string{"base error"},
			wantMetadata: []map[string]any{{"key1": "value1", "key2": 42}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			messages := make([]string, 0, len(entries))
			metadata := make([]map[string]any, 0, len(entries))
			for _, e := range entries {
				messages = append(messages, e.Message())
				metadata = append(metadata, e.Metadata())
			}

			assert.Equal(t, tt.wantMessages, messages)
			assert.Equal(t, tt.wantMetadata, metadata)
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	entries := logger.CollectErrorEntries(zerr.Wrap(
		zerr.With(zerr.New("gradle failed"), "task", "app:installDebug"),
		"install failed",
	))

	want := "Error: install failed\n" +
		"\n" +
		"  Caused by:\n" +
		"    → gradle failed (task=app:installDebug)"
	assert.Equal(t, want, logger.FormatErrorEntries(entries))
}
