package components

import (
	"context"
	"log/slog"

	"travel-loyalty-booking/internal/infra/db"
	"travel-loyalty-booking/internal/infra/memstore"
	"travel-loyalty-booking/internal/infra/repository"
	"travel-loyalty-booking/internal/infra/uow"
	"travel-loyalty-booking/internal/pkg/clock"
	"travel-loyalty-booking/internal/pkg/config"
	"travel-loyalty-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewBookingStore,
	),
)

type BookingStoreParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Clock     clock.Clock
	Logger    *slog.Logger
	// Tests hand in their own pool; otherwise one is opened on demand.
	Pool *pgxpool.Pool `optional:"true"`
}

type BookingStoreResult struct {
	fx.Out

	Repository shared.BookingRepository
	Saver      memstore.BookingSaver
}

func NewBookingStore(p BookingStoreParams) (BookingStoreResult, error) {
	if p.Config.Store.Driver != config.StorePostgres {
		store := memstore.NewBookingStore()
		p.Logger.Info("using in-memory booking store")
		return BookingStoreResult{Repository: store, Saver: store}, nil
	}

	pool := p.Pool
	if pool == nil {
		opened, cleanup, err := db.Connect(p.Config.DB)
		if err != nil {
			return BookingStoreResult{}, err
		}
		p.Lifecycle.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		pool = opened
	}

	repo := repository.NewBookingRepository(
		repository.NewPgBookingQueries(),
		uow.NewPostgresUoW(pool),
		p.Clock,
	)
	p.Logger.Info("using postgres booking store", "database", p.Config.DB.DBName)
	return BookingStoreResult{Repository: repo, Saver: repo}, nil
}
