package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/config"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/telemetry"
)

func TestInitTracerWithoutCollector(t *testing.T) {
	ctx := context.Background()

	cleanup, err := telemetry.InitTracer(ctx, config.Otel{ServiceName: "hvac-catalog"})
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	assert.NoError(t, cleanup(ctx))

	carrier := propagation.MapCarrier{"traceparent": "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"}
	extracted := otel.GetTextMapPropagator().Extract(ctx, carrier)

	out := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(extracted, out)
	assert.Equal(t, carrier["traceparent"], out["traceparent"])
}
