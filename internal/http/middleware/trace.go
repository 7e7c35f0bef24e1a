package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.9.0"
	"go.opentelemetry.io/otel/trace"
)

func Trace(tracer trace.Tracer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipTracingPaths(r) {
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			// span name is only known after routing
			ctx, span := tracer.Start(ctx, "unknown", trace.WithAttributes(
				semconv.HTTPURLKey.String(r.RequestURI),
				semconv.HTTPMethodKey.String(r.Method),
			), trace.WithSpanKind(trace.SpanKindServer))
			defer span.End()

			r = r.WithContext(ctx)
			next.ServeHTTP(ww, r)

			span.SetName(fmt.Sprintf("%s %s", r.Method, routePattern(r)))

			status := ww.Status()
			span.SetAttributes(semconv.HTTPStatusCodeKey.Int(status))
			if status >= 500 {
				span.SetStatus(codes.Error, fmt.Sprintf("error with HTTP status code %d", status))
			}
		})
	}
}

var skipPaths = map[string]struct{}{
	MetricsPath:          {},
	"/healthz":           {},
	"/docs":              {},
	"/docs/openapi.yml":  {},
	"/docs/openapi.json": {},
}

func skipTracingPaths(r *http.Request) bool {
	_, ok := skipPaths[r.URL.Path]
	return ok
}
