package shared

import (
	"context"
	"encoding/json"

	"travel-loyalty-booking/internal/domain/booking"
	"travel-loyalty-booking/internal/domain/cancellation"
	"travel-loyalty-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

var ErrLockNotAcquired = errs.New("lock is held by another execution")

type BookingRepository interface {
	// GetBooking returns an error matching booking.ErrBookingNotFound when the id is unknown.
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error)
	// UpdateLineItemStatus reports false when the line item does not belong to the booking.
	UpdateLineItemStatus(ctx context.Context, bookingID, lineItemID uuid.UUID, status booking.LineItemStatus, change booking.Cancellation) (bool, error)
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status booking.Status) error
}

// ReversalOutcome is the ledger platform's answer to a reversal request.
type ReversalOutcome struct {
	OK             bool
	CancellationID string
	Message        string
	Raw            json.RawMessage
}

type LedgerGateway interface {
	ReverseRedemption(ctx context.Context, journalID string) (*ReversalOutcome, error)
	ReverseAccrual(ctx context.Context, journalID string) (*ReversalOutcome, error)
	GetLedgerEntries(ctx context.Context, journalID string) ([]cancellation.LedgerEntry, error)
}

// BookingLocker serialises cancellation executions per booking.
type BookingLocker interface {
	// Acquire returns ErrLockNotAcquired when another execution holds the booking.
	Acquire(ctx context.Context, bookingID uuid.UUID) (release func(context.Context), err error)
}

type CancellationEventPublisher interface {
	PublishCancellationExecuted(ctx context.Context, result *cancellation.Result) error
}
