package fact

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/agbru/dogyears/internal/fact"

// Traced decorates a Provider with an OpenTelemetry span per fetch.
type Traced struct {
	next   Provider
	tracer trace.Tracer
}

// NewTraced wraps next using the global tracer provider.
func NewTraced(next Provider) *Traced {
	return NewTracedWith(next, otel.GetTracerProvider())
}

// NewTracedWith wraps next using tp.
func NewTracedWith(next Provider, tp trace.TracerProvider) *Traced {
	return &Traced{next: next, tracer: tp.Tracer(tracerName)}
}

// Name returns the wrapped provider's name.
func (t *Traced) Name() string { return Name(t.next) }

// Fetch runs the wrapped fetch inside a span.
func (t *Traced) Fetch(ctx context.Context) (Fact, error) {
	ctx, span := t.tracer.Start(ctx, "fact.Fetch",
		trace.WithAttributes(attribute.String("fact.provider", Name(t.next))))
	defer span.End()

	f, err := t.next.Fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Fact{}, err
	}
	span.SetAttributes(attribute.Int("fact.length", len(f.Text)))
	return f, nil
}
