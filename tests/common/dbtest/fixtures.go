//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"travel-loyalty-booking/internal/domain/booking"
	"travel-loyalty-booking/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertBooking writes b and its line items directly, bypassing the repository.
func InsertBooking(t *testing.T, db DBLike, b *booking.Booking) {
	t.Helper()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO bookings (id, external_ref, member_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID(), b.ExternalRef(), b.MemberID(), string(b.Status()), b.CreatedAt(), b.UpdatedAt())
	require.NoError(t, err)

	for i, item := range b.LineItems() {
		redemption, accrual := ptr.NonEmpty(item.RedemptionJournalID()), ptr.NonEmpty(item.AccrualJournalID())
		var start, end *time.Time
		if d := item.Dates().Start(); !d.IsZero() {
			start = ptr.Of(d)
		}
		if d := item.Dates().End(); !d.IsZero() {
			end = ptr.Of(d)
		}
		var cancelledAt *time.Time
		var cancelReason, cancelledBy *string
		if c := item.Cancellation(); c != nil {
			cancelledAt, cancelReason, cancelledBy = ptr.Of(c.At), ptr.Of(c.Reason), ptr.NonEmpty(c.By)
		}
		_, err := db.Exec(ctx,
			`INSERT INTO booking_line_items (id, booking_id, position, line_of_business, cash_cents, tax_cents,
			   fee_cents, currency, points_redeemed, points_earned, redemption_journal_id, accrual_journal_id,
			   start_date, end_date, destination, status, cancelled_at, cancel_reason, cancelled_by)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
			item.ID(), b.ID(), i, string(item.LineOfBusiness()), item.Cash().Cents(), item.Taxes().Cents(),
			item.Fees().Cents(), item.Currency(), item.PointsRedeemed(), item.PointsEarned(), redemption, accrual,
			start, end, item.Destination(), string(item.Status()), cancelledAt, cancelReason, cancelledBy)
		require.NoError(t, err)
	}
}

func LineItemStatus(t *testing.T, db DBLike, lineItemID uuid.UUID) string {
	t.Helper()
	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM booking_line_items WHERE id = $1", lineItemID).Scan(&status)
	require.NoError(t, err)
	return status
}

func BookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID) string {
	t.Helper()
	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
}

func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE booking_line_items, bookings RESTART IDENTITY CASCADE")
	return err
}
