package telemetry

import (
	"context"

	"go.trai.ch/droid/internal/core/ports"
)

var (
	_ ports.Tracer = (*NoOpTracer)(nil)
	_ ports.Span   = noopSpan{}
)

// NoOpTracer discards spans and plans. Use it where no progress output is wanted.
type NoOpTracer struct{}

// NewNoOpTracer returns a NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start returns ctx unchanged with a span that ignores every call.
func (*NoOpTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

// EmitPlan discards the plan.
func (*NoOpTracer) EmitPlan(context.Context, []string) {}

// Shutdown always succeeds.
func (*NoOpTracer) Shutdown(context.Context) error { return nil }

type noopSpan struct{}

func (noopSpan) End() {}

func (noopSpan) RecordError(error) {}

func (noopSpan) SetAttribute(string, any) {}
