//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-loyalty-booking/internal/domain/booking"
	"travel-loyalty-booking/internal/infra"
	"travel-loyalty-booking/internal/infra/db"
	"travel-loyalty-booking/internal/infra/repository"
	"travel-loyalty-booking/internal/infra/repository/converter"
	"travel-loyalty-booking/internal/pkg/clock"
	"travel-loyalty-booking/internal/pkg/errs"
	"travel-loyalty-booking/internal/pkg/pgconv"
	"travel-loyalty-booking/tests/common/builder"
	repositorymock "travel-loyalty-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	queries *repositorymock.MockBookingQueries
	tx      *repositorymock.MockTxRunner
	repo    *repository.BookingRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{
		queries: repositorymock.NewMockBookingQueries(ctrl),
		tx:      repositorymock.NewMockTxRunner(ctrl),
	}
	run := func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
		return fn(ctx, nil)
	}
	f.tx.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	f.tx.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	f.repo = repository.NewBookingRepository(f.queries, f.tx, clock.NewMockClock(builder.DefaultNow))
	return f
}

func rowsFor(b *booking.Booking) (repository.BookingRow, []repository.LineItemRow) {
	row := repository.BookingRow{
		ID:          b.ID(),
		ExternalRef: b.ExternalRef(),
		MemberID:    b.MemberID(),
		Status:      string(b.Status()),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
	}
	var items []repository.LineItemRow
	for i, item := range b.LineItems() {
		items = append(items, converter.LineItemFromDomain(b.ID(), int32(i), item))
	}
	return row, items
}

func TestBookingRepository_GetBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		b, hotel, flight := builder.HotelAndFlight()
		row, items := rowsFor(b)

		f.queries.EXPECT().GetBookingByID(gomock.Any(), gomock.Any(), b.ID()).Return(row, nil)
		f.queries.EXPECT().ListLineItemsByBookingID(gomock.Any(), gomock.Any(), b.ID()).Return(items, nil)

		got, err := f.repo.GetBooking(ctx, b.ID())
		require.NoError(t, err)

		assert.Equal(t, b.ID(), got.ID())
		assert.Equal(t, b.MemberID(), got.MemberID())
		assert.Equal(t, booking.StatusActive, got.Status())
		require.Len(t, got.LineItems(), 2)
		gotHotel, ok := got.LineItem(hotel.ID())
		require.True(t, ok)
		assert.Equal(t, "JRN-HTL-RED", gotHotel.RedemptionJournalID())
		assert.Equal(t, hotel.CashRefund(), gotHotel.CashRefund())
		assert.Equal(t, flight.ID(), got.LineItems()[1].ID())
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.queries.EXPECT().GetBookingByID(gomock.Any(), gomock.Any(), id).Return(repository.BookingRow{}, pgx.ErrNoRows)

		_, err := f.repo.GetBooking(ctx, id)
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
	})

	t.Run("database failure", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.queries.EXPECT().GetBookingByID(gomock.Any(), gomock.Any(), id).Return(repository.BookingRow{}, errors.New("conn reset"))

		_, err := f.repo.GetBooking(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("corrupt line item", func(t *testing.T) {
		f := newFixture(t)
		b, _, _ := builder.HotelAndFlight()
		row, items := rowsFor(b)
		items[0].Status = "LOST"

		f.queries.EXPECT().GetBookingByID(gomock.Any(), gomock.Any(), b.ID()).Return(row, nil)
		f.queries.EXPECT().ListLineItemsByBookingID(gomock.Any(), gomock.Any(), b.ID()).Return(items, nil)

		_, err := f.repo.GetBooking(ctx, b.ID())
		assert.ErrorIs(t, err, booking.ErrInvalidLineItemStatus)
	})
}

func TestBookingRepository_UpdateLineItemStatus(t *testing.T) {
	ctx := context.Background()
	change := booking.Cancellation{At: builder.DefaultNow, Reason: "plans changed", By: "MBR-1001"}

	t.Run("cancels and records the change", func(t *testing.T) {
		f := newFixture(t)
		b, hotel, _ := builder.HotelAndFlight()
		_, items := rowsFor(b)

		f.queries.EXPECT().LockLineItem(gomock.Any(), gomock.Any(), b.ID(), hotel.ID()).Return(items[0], nil)
		f.queries.EXPECT().UpdateLineItemStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, arg repository.UpdateLineItemStatusParams) (int64, error) {
				assert.Equal(t, hotel.ID(), arg.ID)
				assert.Equal(t, b.ID(), arg.BookingID)
				assert.Equal(t, "CANCELLED", arg.Status)
				assert.True(t, arg.CancelledAt.Valid)
				assert.Equal(t, builder.DefaultNow, arg.CancelledAt.Time)
				assert.Equal(t, "plans changed", arg.CancelReason.String)
				assert.Equal(t, "MBR-1001", arg.CancelledBy.String)
				return 1, nil
			})

		ok, err := f.repo.UpdateLineItemStatus(ctx, b.ID(), hotel.ID(), booking.LineItemCancelled, change)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unknown line item", func(t *testing.T) {
		f := newFixture(t)
		bookingID, itemID := uuid.New(), uuid.New()
		f.queries.EXPECT().LockLineItem(gomock.Any(), gomock.Any(), bookingID, itemID).Return(repository.LineItemRow{}, pgx.ErrNoRows)

		ok, err := f.repo.UpdateLineItemStatus(ctx, bookingID, itemID, booking.LineItemCancelled, change)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("already cancelled", func(t *testing.T) {
		f := newFixture(t)
		item := builder.NewLineItemBuilder().WithStatus(booking.LineItemCancelled).Build()
		b := builder.NewBookingBuilder().WithLineItems(item).Build()
		_, items := rowsFor(b)

		f.queries.EXPECT().LockLineItem(gomock.Any(), gomock.Any(), b.ID(), item.ID()).Return(items[0], nil)

		_, err := f.repo.UpdateLineItemStatus(ctx, b.ID(), item.ID(), booking.LineItemCancelled, change)
		assert.ErrorIs(t, err, booking.ErrLineItemAlreadyCancelled)
	})

	t.Run("serialization failure is a conflict", func(t *testing.T) {
		f := newFixture(t)
		b, hotel, _ := builder.HotelAndFlight()
		_, items := rowsFor(b)

		f.queries.EXPECT().LockLineItem(gomock.Any(), gomock.Any(), b.ID(), hotel.ID()).Return(items[0], nil)
		f.queries.EXPECT().UpdateLineItemStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), &pgconn.PgError{Code: "40001"})

		_, err := f.repo.UpdateLineItemStatus(ctx, b.ID(), hotel.ID(), booking.LineItemCancelled, change)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.True(t, infra.IsRetryable(err))
	})
}

func TestBookingRepository_UpdateBookingStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.queries.EXPECT().UpdateBookingStatus(gomock.Any(), gomock.Any(), repository.UpdateBookingStatusParams{
			ID:        id,
			Status:    "PARTIALLY_CANCELLED",
			UpdatedAt: pgconv.TimeToPgtype(builder.DefaultNow),
		}).Return(int64(1), nil)

		require.NoError(t, f.repo.UpdateBookingStatus(ctx, id, booking.StatusPartiallyCancelled))
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture(t)
		f.queries.EXPECT().UpdateBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := f.repo.UpdateBookingStatus(ctx, uuid.New(), booking.StatusFullyCancelled)
		assert.True(t, errs.Is(err, booking.ErrBookingNotFound))
	})

	t.Run("invalid status", func(t *testing.T) {
		f := newFixture(t)
		err := f.repo.UpdateBookingStatus(ctx, uuid.New(), "ARCHIVED")
		assert.Error(t, err)
	})
}

func TestBookingRepository_Save(t *testing.T) {
	f := newFixture(t)
	b, hotel, flight := builder.HotelAndFlight()

	f.queries.EXPECT().InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DBTX, row repository.BookingRow) error {
			assert.Equal(t, b.ID(), row.ID)
			assert.Equal(t, "ACTIVE", row.Status)
			return nil
		})
	gomock.InOrder(
		f.queries.EXPECT().InsertLineItem(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, row repository.LineItemRow) error {
				assert.Equal(t, hotel.ID(), row.ID)
				assert.Equal(t, int32(0), row.Position)
				return nil
			}),
		f.queries.EXPECT().InsertLineItem(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, row repository.LineItemRow) error {
				assert.Equal(t, flight.ID(), row.ID)
				assert.Equal(t, int32(1), row.Position)
				assert.False(t, row.AccrualJournalID.Valid)
				return nil
			}),
	)

	require.NoError(t, f.repo.Save(context.Background(), b))
}

func TestLineItemConverter_RoundTrip(t *testing.T) {
	item := builder.NewLineItemBuilder().
		WithRedemption("J1", 4000).
		WithStatus(booking.LineItemCancelled).
		Build()

	cols := converter.LineItemFromDomain(uuid.New(), 3, item)
	got, err := converter.LineItemToDomain(cols)
	require.NoError(t, err)

	assert.Equal(t, item.Params(), got.Params())
	assert.Equal(t, item.Status(), got.Status())
	require.NotNil(t, got.Cancellation())
	assert.WithinDuration(t, item.Cancellation().At, got.Cancellation().At, time.Microsecond)
	assert.Equal(t, item.Cancellation().Reason, got.Cancellation().Reason)
}
