//go:build unit

package telemetry_test

import (
	"context"
	"testing"

	"travel-loyalty-booking/internal/infra/telemetry"
	"travel-loyalty-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled without endpoint", func(t *testing.T) {
		shutdown, err := telemetry.Setup(ctx, config.TelemetryConfig{ServiceName: "svc"})
		require.NoError(t, err)
		assert.NoError(t, shutdown(ctx))
	})

	t.Run("exporter is created lazily", func(t *testing.T) {
		shutdown, err := telemetry.Setup(ctx, config.TelemetryConfig{
			ServiceName:  "svc",
			OTLPEndpoint: "http://127.0.0.1:4318",
		})
		require.NoError(t, err)
		require.NotNil(t, shutdown)
		t.Cleanup(func() { _ = shutdown(ctx) })
	})
}
