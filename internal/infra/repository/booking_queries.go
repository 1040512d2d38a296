package repository

import (
	"context"

	"travel-loyalty-booking/internal/infra/db"
	"travel-loyalty-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRow struct {
	ID          uuid.UUID
	ExternalRef string
	MemberID    string
	Status      string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type LineItemRow = converter.LineItemColumns

type UpdateLineItemStatusParams struct {
	BookingID    uuid.UUID
	ID           uuid.UUID
	Status       string
	CancelledAt  pgtype.Timestamptz
	CancelReason pgtype.Text
	CancelledBy  pgtype.Text
}

type UpdateBookingStatusParams struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt pgtype.Timestamptz
}

const lineItemColumns = `id, booking_id, position, line_of_business, cash_cents, tax_cents, fee_cents, currency,
	points_redeemed, points_earned, redemption_journal_id, accrual_journal_id, start_date, end_date,
	destination, status, cancelled_at, cancel_reason, cancelled_by`

const getBookingByID = `SELECT id, external_ref, member_id, status, created_at, updated_at
FROM bookings WHERE id = $1`

const listLineItemsByBookingID = `SELECT ` + lineItemColumns + `
FROM booking_line_items WHERE booking_id = $1 ORDER BY position`

const lockLineItem = `SELECT ` + lineItemColumns + `
FROM booking_line_items WHERE booking_id = $1 AND id = $2 FOR UPDATE`

const updateLineItemStatus = `UPDATE booking_line_items
SET status = $3, cancelled_at = $4, cancel_reason = $5, cancelled_by = $6
WHERE booking_id = $1 AND id = $2`

const updateBookingStatus = `UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`

const insertBooking = `INSERT INTO bookings (id, external_ref, member_id, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const insertLineItem = `INSERT INTO booking_line_items (` + lineItemColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

// PgBookingQueries holds the SQL for bookings and their line items.
type PgBookingQueries struct{}

func NewPgBookingQueries() *PgBookingQueries {
	return &PgBookingQueries{}
}

func (q *PgBookingQueries) GetBookingByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (BookingRow, error) {
	var row BookingRow
	err := dbtx.QueryRow(ctx, getBookingByID, id).Scan(
		&row.ID, &row.ExternalRef, &row.MemberID, &row.Status, &row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

func (q *PgBookingQueries) ListLineItemsByBookingID(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) ([]LineItemRow, error) {
	rows, err := dbtx.Query(ctx, listLineItemsByBookingID, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []LineItemRow
	for rows.Next() {
		item, err := scanLineItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (q *PgBookingQueries) LockLineItem(ctx context.Context, dbtx db.DBTX, bookingID, lineItemID uuid.UUID) (LineItemRow, error) {
	return scanLineItem(dbtx.QueryRow(ctx, lockLineItem, bookingID, lineItemID))
}

func (q *PgBookingQueries) UpdateLineItemStatus(ctx context.Context, dbtx db.DBTX, arg UpdateLineItemStatusParams) (int64, error) {
	tag, err := dbtx.Exec(ctx, updateLineItemStatus,
		arg.BookingID, arg.ID, arg.Status, arg.CancelledAt, arg.CancelReason, arg.CancelledBy)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *PgBookingQueries) UpdateBookingStatus(ctx context.Context, dbtx db.DBTX, arg UpdateBookingStatusParams) (int64, error) {
	tag, err := dbtx.Exec(ctx, updateBookingStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *PgBookingQueries) InsertBooking(ctx context.Context, dbtx db.DBTX, arg BookingRow) error {
	_, err := dbtx.Exec(ctx, insertBooking,
		arg.ID, arg.ExternalRef, arg.MemberID, arg.Status, arg.CreatedAt, arg.UpdatedAt)
	return err
}

func (q *PgBookingQueries) InsertLineItem(ctx context.Context, dbtx db.DBTX, arg LineItemRow) error {
	_, err := dbtx.Exec(ctx, insertLineItem,
		arg.ID, arg.BookingID, arg.Position, arg.LineOfBusiness, arg.CashCents, arg.TaxCents, arg.FeeCents,
		arg.Currency, arg.PointsRedeemed, arg.PointsEarned, arg.RedemptionJournalID, arg.AccrualJournalID,
		arg.StartDate, arg.EndDate, arg.Destination, arg.Status, arg.CancelledAt, arg.CancelReason, arg.CancelledBy)
	return err
}

func scanLineItem(row pgx.Row) (LineItemRow, error) {
	var i LineItemRow
	err := row.Scan(
		&i.ID, &i.BookingID, &i.Position, &i.LineOfBusiness, &i.CashCents, &i.TaxCents, &i.FeeCents,
		&i.Currency, &i.PointsRedeemed, &i.PointsEarned, &i.RedemptionJournalID, &i.AccrualJournalID,
		&i.StartDate, &i.EndDate, &i.Destination, &i.Status, &i.CancelledAt, &i.CancelReason, &i.CancelledBy,
	)
	return i, err
}
