// Package correlationid carries a per-request correlation id through contexts,
// HTTP headers and message headers.
package correlationid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the header name used on HTTP requests/responses and Kafka records.
const Header = "X-Correlation-ID"

type ctxKey struct{}

// NewContext returns a copy of ctx carrying id.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the correlation id stored in ctx, if any.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// New generates a fresh correlation id.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
