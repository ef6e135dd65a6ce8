package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/droid/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_DebugFiltered(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))
	lg.Debug("hidden")

	assert.Empty(t, buf.String())
}

func TestPrettyHandler_AttrsAndGroups(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).
		With(slog.String("verb", "assemble")).
		WithGroup("gradle")
	lg.Info("running", slog.String("task", "app:assembleDebug"))

	assert.Equal(t, "running verb=assemble gradle.task=app:assembleDebug\n", buf.String())
}

func TestPrettyHandler_NestedGroups(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).WithGroup("gradle").With(slog.Int("pid", 42))
	lg.Warn("slow task", slog.Group("task", slog.String("name", "app:installDebug"), slog.Int("priority", 1)))

	assert.Equal(t, "! slow task gradle.pid=42 gradle.task.name=app:installDebug gradle.task.priority=1\n", buf.String())
}

func TestPrettyHandler_SkipsEmptyAttrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))
	lg.Info("done", slog.Attr{}, slog.String("mode", "release"))

	assert.Equal(t, "done mode=release\n", buf.String())
}
