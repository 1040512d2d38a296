package components

import (
	"context"
	"log/slog"
	"time"

	"travel-loyalty-booking/internal/infra/events"
	"travel-loyalty-booking/internal/infra/ledger"
	"travel-loyalty-booking/internal/infra/lock"
	"travel-loyalty-booking/internal/infra/memstore"
	"travel-loyalty-booking/internal/pkg/clock"
	"travel-loyalty-booking/internal/pkg/config"
	"travel-loyalty-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		NewLedgerGateway,
		NewBookingLocker,
		NewEventPublisher,
	),
	fx.Invoke(SeedDemoData),
)

func NewLedgerGateway(cfg config.Config, clk clock.Clock, logger *slog.Logger) shared.LedgerGateway {
	if !cfg.Ledger.IsRemote() {
		logger.Info("using in-memory ledger")
		return ledger.NewMemoryGateway(clk)
	}
	logger.Info("using remote ledger", "base_url", cfg.Ledger.BaseURL, "program", cfg.Ledger.Program)
	return ledger.NewClient(ledger.ClientConfig{
		BaseURL: cfg.Ledger.BaseURL,
		Program: cfg.Ledger.Program,
		Token:   cfg.Ledger.APIToken,
		Timeout: cfg.Ledger.RequestTimeout,
	}, nil)
}

func NewBookingLocker(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.BookingLocker, error) {
	if cfg.Redis.Addr == "" {
		return lock.NewLocalLocker(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("using redis booking lock", "addr", cfg.Redis.Addr)
	return lock.NewRedisLocker(client, cfg.Cancellation.LockTTL, logger), nil
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) shared.CancellationEventPublisher {
	if len(cfg.Kafka.Brokers) == 0 {
		return events.NoopPublisher{}
	}

	publisher := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic), clk, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	logger.Info("publishing cancellation events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return publisher
}

// SeedDemoData fills the in-memory store and ledger with the storefront's sample bookings.
func SeedDemoData(cfg config.Config, saver memstore.BookingSaver, gw shared.LedgerGateway, clk clock.Clock, logger *slog.Logger) error {
	if !cfg.Store.SeedDemo || cfg.Store.Driver != config.StoreMemory {
		return nil
	}
	demo, err := memstore.Seed(context.Background(), saver, clk.Now())
	if err != nil {
		return err
	}
	if mem, ok := gw.(*ledger.MemoryGateway); ok {
		for _, b := range demo {
			mem.RegisterBooking(b)
		}
	}
	logger.Info("seeded demo bookings", "count", len(demo))
	return nil
}
