package queries

import (
	"context"
	"errors"

	"travel-loyalty-booking/internal/domain/booking"
	"travel-loyalty-booking/internal/domain/cancellation"
	"travel-loyalty-booking/internal/pkg/errs"
	"travel-loyalty-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=cancellation.go -destination=../../../tests/mock/queries/cancellation.go -package=queriesmock

var (
	ErrBookingNotFound         = booking.ErrBookingNotFound
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
)

type CancellationQueries interface {
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error)
	// Preview builds the plan confirm would execute, without side effects.
	Preview(ctx context.Context, bookingID uuid.UUID, req cancellation.Request) (*cancellation.Plan, error)
}

type cancellationQueriesImpl struct {
	bookings shared.BookingRepository
	planner  *cancellation.Planner
}

func NewCancellationQueries(bookings shared.BookingRepository, planner *cancellation.Planner) CancellationQueries {
	return &cancellationQueriesImpl{
		bookings: bookings,
		planner:  planner,
	}
}

func (q *cancellationQueriesImpl) GetBooking(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := q.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b, nil
}

func (q *cancellationQueriesImpl) Preview(ctx context.Context, bookingID uuid.UUID, req cancellation.Request) (*cancellation.Plan, error) {
	b, err := q.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, cancellation.PlanningFailed(err)
		}
		return nil, err
	}
	return q.planner.CreatePlan(ctx, b, req)
}
