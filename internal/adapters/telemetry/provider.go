// Package telemetry implements ports.Tracer on top of OpenTelemetry.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/histo/internal/core/ports"
	"go.trai.ch/zerr"
)

// InstrumentationName names the tracer that emits harness spans.
const InstrumentationName = "go.trai.ch/histo"

var _ ports.Tracer = (*OTelTracer)(nil)

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	tracer   trace.Tracer
	shutdown func(context.Context) error
}

// NewNoopTracer returns a tracer that records nothing.
func NewNoopTracer() *OTelTracer {
	return &OTelTracer{
		tracer:   noop.NewTracerProvider().Tracer(InstrumentationName),
		shutdown: func(context.Context) error { return nil },
	}
}

// NewWriterTracer exports spans as JSON to w. Spans are flushed on Shutdown.
func NewWriterTracer(w io.Writer) (*OTelTracer, error) {
	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(w),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return nil, domain.Wrap(domain.ErrTraceSetupFailed, err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(sdkresource.NewSchemaless(
			attribute.String("service.name", "histo"),
		)),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	return &OTelTracer{
		tracer:   provider.Tracer(InstrumentationName),
		shutdown: provider.Shutdown,
	}, nil
}

// NewFileTracer exports spans to the file at path, creating or truncating it.
// An empty path yields a no-op tracer.
func NewFileTracer(path string) (*OTelTracer, error) {
	if path == "" {
		return NewNoopTracer(), nil
	}

	//nolint:gosec // path is supplied by the operator
	f, err := os.Create(path)
	if err != nil {
		return nil, zerr.With(domain.Wrap(domain.ErrTraceSetupFailed, err), "path", path)
	}

	t, err := NewWriterTracer(f)
	if err != nil {
		_ = f.Close()
		return nil, zerr.With(err, "path", path)
	}

	flush := t.shutdown
	t.shutdown = func(ctx context.Context) error {
		return errors.Join(flush(ctx), f.Close())
	}
	return t, nil
}

// Shutdown flushes pending spans and releases the exporter.
func (t *OTelTracer) Shutdown(ctx context.Context) error {
	return t.shutdown(ctx)
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &OTelSpan{span: span}
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span trace.Span
}

// End completes the span.
func (s *OTelSpan) End() {
	s.span.End()
}

// RecordError records an error for the span and marks it failed.
func (s *OTelSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
	s.span.SetAttributes(attribute.String("histo.failure_kind", domain.KindOf(err).String()))
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int32:
		s.span.SetAttributes(attribute.Int(key, int(v)))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case uint64:
		// Seeds use the full 64-bit range, which attribute.Int64 cannot hold.
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%d", v)))
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
