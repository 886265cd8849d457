package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks

// Tracer is the entry point for recording resolution spans.
type Tracer interface {
	// Start begins a new span for one resolution operation.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}

// Span represents one resolution operation in flight. Implementations decide
// whether stamps are surfaced (e.g. only when the operation ran long).
type Span interface {
	// Stamp records a timestamped stage marker such as "cache hit".
	Stamp(msg string)
	// RecordError records a failure for the span.
	RecordError(err error)
	// End completes the span.
	End()
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// Add potential future configuration fields here.
	// For now, it's a placeholder to support the option pattern.
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)
