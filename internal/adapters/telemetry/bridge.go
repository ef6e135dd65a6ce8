package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/droid/internal/core/ports"
)

// defaultFailure is reported for failed spans that carry no status description.
const defaultFailure = "task failed"

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge is a span processor that reports task spans to a ports.Renderer.
// Spans are matched between start and end by their span ID.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a Bridge reporting to renderer. A nil renderer drops every span.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{renderer: renderer}
}

// OnStart reports the span as a started task.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if id, ok := b.spanID(s); ok {
		b.renderer.OnTaskStart(id, s.Name(), s.StartTime())
	}
}

// OnEnd reports the span as a completed or failed task.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if id, ok := b.spanID(s); ok {
		b.renderer.OnTaskComplete(id, s.EndTime(), statusError(s.Status()))
	}
}

// ForceFlush is a no-op: spans are reported synchronously.
func (b *Bridge) ForceFlush(context.Context) error { return nil }

// Shutdown is a no-op: the bridge holds no resources.
func (b *Bridge) Shutdown(context.Context) error { return nil }

func (b *Bridge) spanID(s sdktrace.ReadOnlySpan) (string, bool) {
	if b.renderer == nil {
		return "", false
	}
	sc := s.SpanContext()
	if !sc.IsValid() {
		return "", false
	}
	return sc.SpanID().String(), true
}

func statusError(status sdktrace.Status) error {
	if status.Code != codes.Error {
		return nil
	}
	if status.Description == "" {
		return errors.New(defaultFailure)
	}
	return errors.New(status.Description)
}
