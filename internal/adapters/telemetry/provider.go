// Package telemetry adapts OpenTelemetry spans to the ports.Tracer interface
// and forwards span lifecycle events to a progress renderer.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/droid/internal/core/ports"
)

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	name     string
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider
	renderer ports.Renderer
}

// NewOTelTracer creates a new OTelTracer with the given instrumentation name.
// Spans go to the global provider until WithProvider is called.
func NewOTelTracer(name string) *OTelTracer {
	return &OTelTracer{
		name:   name,
		tracer: otel.Tracer(name),
	}
}

// NewProvider returns a TracerProvider that reports every span to renderer.
func NewProvider(renderer ports.Renderer) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(renderer)),
	)
}

// WithProvider makes the tracer create spans from tp and shut it down on Shutdown.
func (t *OTelTracer) WithProvider(tp *sdktrace.TracerProvider) *OTelTracer {
	t.provider = tp
	t.tracer = tp.Tracer(t.name)
	return t
}

// WithRenderer sets the renderer that receives the execution plan.
func (t *OTelTracer) WithRenderer(r ports.Renderer) *OTelTracer {
	t.renderer = r
	return t
}

// Shutdown flushes and stops the owned provider, if any.
func (t *OTelTracer) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, span := t.tracer.Start(ctx, name)
	s := &OTelSpan{span: span}
	for k, v := range cfg.Attributes {
		s.SetAttribute(k, v)
	}

	return ctx, s
}

// EmitPlan signals that a set of tasks is planned for execution by adding an event to the current span.
func (t *OTelTracer) EmitPlan(ctx context.Context, taskNames []string) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("plan_emitted", trace.WithAttributes(
			attribute.StringSlice("tasks", taskNames),
		))
	}

	if t.renderer != nil {
		t.renderer.OnPlanEmit(taskNames)
	}
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span trace.Span
}

// End completes the span.
func (s *OTelSpan) End() {
	s.span.End()
}

// RecordError records an error for the span.
func (s *OTelSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}
