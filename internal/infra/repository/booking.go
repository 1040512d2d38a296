package repository

import (
	"context"
	"time"

	"travel-loyalty-booking/internal/domain/booking"
	"travel-loyalty-booking/internal/infra"
	"travel-loyalty-booking/internal/infra/db"
	"travel-loyalty-booking/internal/infra/repository/converter"
	"travel-loyalty-booking/internal/pkg/clock"
	"travel-loyalty-booking/internal/pkg/errs"
	"travel-loyalty-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking.go -package=repositorymock

type BookingQueries interface {
	GetBookingByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (BookingRow, error)
	ListLineItemsByBookingID(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) ([]LineItemRow, error)
	LockLineItem(ctx context.Context, dbtx db.DBTX, bookingID, lineItemID uuid.UUID) (LineItemRow, error)
	UpdateLineItemStatus(ctx context.Context, dbtx db.DBTX, arg UpdateLineItemStatusParams) (int64, error)
	UpdateBookingStatus(ctx context.Context, dbtx db.DBTX, arg UpdateBookingStatusParams) (int64, error)
	InsertBooking(ctx context.Context, dbtx db.DBTX, arg BookingRow) error
	InsertLineItem(ctx context.Context, dbtx db.DBTX, arg LineItemRow) error
}

type TxRunner interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}

type BookingRepository struct {
	queries BookingQueries
	tx      TxRunner
	clock   clock.Clock
}

func NewBookingRepository(queries BookingQueries, tx TxRunner, clk clock.Clock) *BookingRepository {
	return &BookingRepository{queries: queries, tx: tx, clock: clk}
}

func (r *BookingRepository) GetBooking(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	var result *booking.Booking
	err := r.tx.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		row, err := r.queries.GetBookingByID(ctx, tx, bookingID)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return errs.Wrapf(booking.ErrBookingNotFound, "booking %s", bookingID)
			}
			return infra.WrapRepoErr("failed to get booking", err)
		}

		itemRows, err := r.queries.ListLineItemsByBookingID(ctx, tx, bookingID)
		if err != nil {
			return infra.WrapRepoErr("failed to list line items", err)
		}

		items := make([]*booking.LineItem, 0, len(itemRows))
		for _, ir := range itemRows {
			item, err := converter.LineItemToDomain(ir)
			if err != nil {
				return errs.Wrapf(err, "line item %s", ir.ID)
			}
			items = append(items, item)
		}

		result = booking.ReconstructBooking(
			row.ID,
			row.ExternalRef,
			row.MemberID,
			items,
			pgconv.TimeFromPgtype(row.CreatedAt),
			pgconv.TimeFromPgtype(row.UpdatedAt),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateLineItemStatus locks the row, applies the transition through the
// domain model and writes it back.
func (r *BookingRepository) UpdateLineItemStatus(
	ctx context.Context,
	bookingID, lineItemID uuid.UUID,
	status booking.LineItemStatus,
	change booking.Cancellation,
) (bool, error) {
	var updated bool
	err := r.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		row, err := r.queries.LockLineItem(ctx, tx, bookingID, lineItemID)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return nil
			}
			return infra.WrapRepoErr("failed to lock line item", err)
		}

		item, err := converter.LineItemToDomain(row)
		if err != nil {
			return errs.Wrapf(err, "line item %s", lineItemID)
		}
		if err := item.ApplyStatus(status, change); err != nil {
			return err
		}

		params := UpdateLineItemStatusParams{
			BookingID: bookingID,
			ID:        lineItemID,
			Status:    string(item.Status()),
		}
		params.CancelledAt, params.CancelReason, params.CancelledBy = converter.CancellationToPgtype(item.Cancellation())

		n, err := r.queries.UpdateLineItemStatus(ctx, tx, params)
		if err != nil {
			return infra.WrapRepoErr("failed to update line item status", err)
		}
		updated = n == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

func (r *BookingRepository) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status booking.Status) error {
	if !status.IsValid() {
		return errs.Newf("invalid booking status %q", status)
	}
	return r.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		n, err := r.queries.UpdateBookingStatus(ctx, tx, UpdateBookingStatusParams{
			ID:        bookingID,
			Status:    string(status),
			UpdatedAt: pgconv.TimeToPgtype(r.now()),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to update booking status", err)
		}
		if n == 0 {
			return errs.Wrapf(booking.ErrBookingNotFound, "booking %s", bookingID)
		}
		return nil
	})
}

// Save inserts a new booking with its line items.
func (r *BookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	return r.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		err := r.queries.InsertBooking(ctx, tx, BookingRow{
			ID:          b.ID(),
			ExternalRef: b.ExternalRef(),
			MemberID:    b.MemberID(),
			Status:      string(b.Status()),
			CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
			UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to insert booking", err)
		}
		for i, item := range b.LineItems() {
			// #nosec G115 -- bookings carry a handful of items
			if err := r.queries.InsertLineItem(ctx, tx, converter.LineItemFromDomain(b.ID(), int32(i), item)); err != nil {
				return infra.WrapRepoErr("failed to insert line item", err)
			}
		}
		return nil
	})
}

func (r *BookingRepository) now() time.Time {
	if r.clock == nil {
		return time.Now()
	}
	return r.clock.Now()
}
