package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/droid/internal/adapters/telemetry"
	"go.trai.ch/droid/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_ForwardsSpanLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)

	var startedID string
	gomock.InOrder(
		mockRenderer.EXPECT().
			OnTaskStart(gomock.Any(), "Assemble Android App", gomock.Any()).
			Do(func(spanID, _ string, _ time.Time) { startedID = spanID }),
		mockRenderer.EXPECT().
			OnTaskComplete(gomock.Any(), gomock.Any(), nil).
			Do(func(spanID string, _ time.Time, _ error) { assert.Equal(t, startedID, spanID) }),
	)

	tp := telemetry.NewProvider(mockRenderer)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "Assemble Android App")
	span.End()

	assert.NotEmpty(t, startedID)
}

func TestBridge_OnEndWithError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)

	mockRenderer.EXPECT().OnTaskStart(gomock.Any(), gomock.Any(), gomock.Any())
	mockRenderer.EXPECT().
		OnTaskComplete(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ string, _ time.Time, err error) {
			require.Error(t, err)
			assert.Equal(t, "exit status 1", err.Error())
		})

	tp := telemetry.NewProvider(mockRenderer)
	_, span := tp.Tracer("test").Start(context.Background(), "Install Android App")
	span.SetStatus(codes.Error, "exit status 1")
	span.End()
}

func TestBridge_OnEndWithEmptyErrorDescription(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)

	mockRenderer.EXPECT().OnTaskStart(gomock.Any(), gomock.Any(), gomock.Any())
	mockRenderer.EXPECT().
		OnTaskComplete(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ string, _ time.Time, err error) {
			assert.EqualError(t, err, "task failed")
		})

	tp := telemetry.NewProvider(mockRenderer)
	_, span := tp.Tracer("test").Start(context.Background(), "Build Android App")
	span.SetStatus(codes.Error, "")
	span.End()
}

func TestBridge_NilRenderer(t *testing.T) {
	bridge := telemetry.NewBridge(nil)
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))

	assert.NotPanics(t, func() {
		_, span := tp.Tracer("test").Start(context.Background(), "noop")
		span.End()
	})
	require.NoError(t, bridge.ForceFlush(context.Background()))
	require.NoError(t, bridge.Shutdown(context.Background()))
}

func TestOTelTracer_RecordsSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)

	mockRenderer.EXPECT().OnPlanEmit([]string{"Assemble Android App", "Install Android App"})
	mockRenderer.EXPECT().OnTaskStart(gomock.Any(), "Install Android App", gomock.Any())
	mockRenderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil()))

	tracer := telemetry.NewOTelTracer("droid").
		WithProvider(telemetry.NewProvider(mockRenderer)).
		WithRenderer(mockRenderer)

	ctx := context.Background()
	tracer.EmitPlan(ctx, []string{"Assemble Android App", "Install Android App"})

	_, span := tracer.Start(ctx, "Install Android App")
	span.SetAttribute("priority", 1)
	span.RecordError(errors.New("command failed"))
	span.End()

	require.NoError(t, tracer.Shutdown(ctx))
}

func TestOTelTracer_ShutdownWithoutProvider(t *testing.T) {
	tracer := telemetry.NewOTelTracer("droid")
	require.NoError(t, tracer.Shutdown(context.Background()))
}
