// Package mqheader propagates trace context and correlation ids across message
// broker hops.
package mqheader

import (
	"context"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/tuanvumaihuynh/hvac-catalog/pkg/correlationid"
)

// Build creates a headers map with trace context and correlation ID injected from context.
func Build(ctx context.Context) map[string]string {
	headers := map[string]string{}

	otel.GetTextMapPropagator().Inject(ctx, propagation.MapCarrier(headers))

	if correlationID, ok := correlationid.FromContext(ctx); ok {
		headers[correlationid.Header] = correlationID
	}

	return headers
}

// FromRecord rebuilds the producer's trace context and correlation ID from the
// headers of a consumed Kafka record.
func FromRecord(ctx context.Context, rec *kgo.Record) context.Context {
	headers := make(map[string]string, len(rec.Headers))
	for _, h := range rec.Headers {
		headers[h.Key] = string(h.Value)
	}

	ctx = otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(headers))

	if correlationID, ok := headers[correlationid.Header]; ok && correlationID != "" {
		ctx = correlationid.NewContext(ctx, correlationID)
	}

	return ctx
}
