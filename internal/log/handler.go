package log

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/tuanvumaihuynh/hvac-catalog/pkg/correlationid"
)

const (
	KeyCorrelationID = "correlation_id"
	KeyTraceID       = "trace_id"
	KeySpanID        = "span_id"
)

var _ slog.Handler = (*enrichedHandler)(nil)

// enrichedHandler adds request-scoped ids found in the context to every record.
type enrichedHandler struct {
	next slog.Handler
}

func newEnrichedHandler(next slog.Handler) enrichedHandler {
	return enrichedHandler{next: next}
}

func (h enrichedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h enrichedHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx == nil {
		return h.next.Handle(ctx, r)
	}

	if id, ok := correlationid.FromContext(ctx); ok {
		r.AddAttrs(slog.String(KeyCorrelationID, id))
	}

	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		r.AddAttrs(
			slog.String(KeyTraceID, spanCtx.TraceID().String()),
			slog.String(KeySpanID, spanCtx.SpanID().String()),
		)
	}

	return h.next.Handle(ctx, r)
}

func (h enrichedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newEnrichedHandler(h.next.WithAttrs(attrs))
}

func (h enrichedHandler) WithGroup(name string) slog.Handler {
	return newEnrichedHandler(h.next.WithGroup(name))
}
