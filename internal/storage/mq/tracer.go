package mq

import (
	"github.com/twmb/franz-go/plugin/kotel"
	"go.opentelemetry.io/otel"
)

var (
	tracer = otel.Tracer("internal/storage/mq")
)

// newKotel builds franz-go hooks on the global tracer provider. It is called
// per client so a provider installed after package init is still picked up.
func newKotel() *kotel.Kotel {
	return kotel.NewKotel(kotel.WithTracer(kotel.NewTracer(
		kotel.TracerProvider(otel.GetTracerProvider()),
		kotel.TracerPropagator(otel.GetTextMapPropagator()),
	)))
}
