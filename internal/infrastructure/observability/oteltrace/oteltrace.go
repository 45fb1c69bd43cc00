package oteltrace

import (
	"context"

	"github.com/bhavnakumari/ecommerce-microservices/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type tracer struct{ t trace.Tracer }

// New returns a TraceCtx backed by the globally installed tracer provider.
// Without a provider the OTel API no-ops, which is the intended fallback.
func New(name string) observability.TraceCtx {
	if name == "" {
		name = "ecommerce"
	}
	return &tracer{t: otel.Tracer(name)}
}

func (t *tracer) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.t.Start(ctx, name, trace.WithAttributes(attrs...))
}
