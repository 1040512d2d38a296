package converter

import (
	"travel-loyalty-booking/internal/domain/booking"
	"travel-loyalty-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// LineItemColumns mirrors one booking_line_items row.
type LineItemColumns struct {
	ID                  uuid.UUID
	BookingID           uuid.UUID
	Position            int32
	LineOfBusiness      string
	CashCents           int64
	TaxCents            int64
	FeeCents            int64
	Currency            string
	PointsRedeemed      int64
	PointsEarned        int64
	RedemptionJournalID pgtype.Text
	AccrualJournalID    pgtype.Text
	StartDate           pgtype.Date
	EndDate             pgtype.Date
	Destination         string
	Status              string
	CancelledAt         pgtype.Timestamptz
	CancelReason        pgtype.Text
	CancelledBy         pgtype.Text
}

func LineItemToDomain(c LineItemColumns) (*booking.LineItem, error) {
	cash, err := booking.NewMoney(c.CashCents)
	if err != nil {
		return nil, err
	}
	taxes, err := booking.NewMoney(c.TaxCents)
	if err != nil {
		return nil, err
	}
	fees, err := booking.NewMoney(c.FeeCents)
	if err != nil {
		return nil, err
	}

	status := booking.LineItemStatus(c.Status)
	if !status.IsValid() {
		return nil, booking.ErrInvalidLineItemStatus
	}

	var dates booking.DateRange
	if c.StartDate.Valid && c.EndDate.Valid {
		dates, err = booking.NewDateRange(pgconv.DateFromPgtype(c.StartDate), pgconv.DateFromPgtype(c.EndDate))
		if err != nil {
			return nil, err
		}
	}

	var change *booking.Cancellation
	if c.CancelledAt.Valid {
		change = &booking.Cancellation{
			At:     pgconv.TimeFromPgtype(c.CancelledAt),
			Reason: pgconv.StringFromPgtype(c.CancelReason),
			By:     pgconv.StringFromPgtype(c.CancelledBy),
		}
	}

	return booking.ReconstructLineItem(booking.LineItemParams{
		ID:                  c.ID,
		LineOfBusiness:      booking.LineOfBusiness(c.LineOfBusiness),
		Cash:                cash,
		Taxes:               taxes,
		Fees:                fees,
		Currency:            c.Currency,
		PointsRedeemed:      c.PointsRedeemed,
		PointsEarned:        c.PointsEarned,
		Dates:               dates,
		Destination:         c.Destination,
		RedemptionJournalID: pgconv.StringFromPgtype(c.RedemptionJournalID),
		AccrualJournalID:    pgconv.StringFromPgtype(c.AccrualJournalID),
	}, status, change), nil
}

func LineItemFromDomain(bookingID uuid.UUID, position int32, item *booking.LineItem) LineItemColumns {
	c := LineItemColumns{
		ID:                  item.ID(),
		BookingID:           bookingID,
		Position:            position,
		LineOfBusiness:      string(item.LineOfBusiness()),
		CashCents:           item.Cash().Cents(),
		TaxCents:            item.Taxes().Cents(),
		FeeCents:            item.Fees().Cents(),
		Currency:            item.Currency(),
		PointsRedeemed:      item.PointsRedeemed(),
		PointsEarned:        item.PointsEarned(),
		RedemptionJournalID: pgconv.StringToPgtype(item.RedemptionJournalID()),
		AccrualJournalID:    pgconv.StringToPgtype(item.AccrualJournalID()),
		StartDate:           pgconv.DateToPgtype(item.Dates().Start()),
		EndDate:             pgconv.DateToPgtype(item.Dates().End()),
		Destination:         item.Destination(),
		Status:              string(item.Status()),
	}
	c.CancelledAt, c.CancelReason, c.CancelledBy = CancellationToPgtype(item.Cancellation())
	return c
}

func CancellationToPgtype(change *booking.Cancellation) (pgtype.Timestamptz, pgtype.Text, pgtype.Text) {
	if change == nil || change.At.IsZero() {
		return pgtype.Timestamptz{}, pgtype.Text{}, pgtype.Text{}
	}
	return pgconv.TimeToPgtype(change.At),
		pgconv.StringToPgtype(change.Reason),
		pgconv.StringToPgtype(change.By)
}
