package bootstrap

import (
	"context"
	"log/slog"

	"travel-loyalty-booking/internal/infra/telemetry"
	"travel-loyalty-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(SetupTelemetry),
)

func SetupTelemetry(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}
	if cfg.Telemetry.OTLPEndpoint != "" {
		logger.Info("tracing enabled", "endpoint", cfg.Telemetry.OTLPEndpoint, "service", cfg.Telemetry.ServiceName)
	}
	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return nil
}
