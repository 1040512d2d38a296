//go:build unit || e2e

package builder

import (
	"time"

	"travel-loyalty-booking/internal/domain/booking"

	"github.com/google/uuid"
)

var DefaultNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type LineItemBuilder struct {
	params       booking.LineItemParams
	status       booking.LineItemStatus
	cancellation *booking.Cancellation
}

// NewLineItemBuilder starts from an active hotel stay paid partly in points.
func NewLineItemBuilder() *LineItemBuilder {
	id := uuid.New()
	start := DefaultNow.AddDate(0, 1, 0)
	dates, _ := booking.NewDateRange(start, start.AddDate(0, 0, 2))
	return &LineItemBuilder{
		params: booking.LineItemParams{
			ID:             id,
			LineOfBusiness: booking.LineOfBusinessHotel,
			Cash:           booking.MustMoney(20000),
			Taxes:          booking.MustMoney(2600),
			Fees:           booking.MustMoney(500),
			Currency:       "USD",
			Dates:          dates,
			Destination:    "Lisbon",
		},
		status: booking.LineItemActive,
	}
}

func (b *LineItemBuilder) WithID(id uuid.UUID) *LineItemBuilder {
	b.params.ID = id
	return b
}

func (b *LineItemBuilder) WithLineOfBusiness(lob booking.LineOfBusiness) *LineItemBuilder {
	b.params.LineOfBusiness = lob
	return b
}

// WithCash sets cash, taxes and fees in cents.
func (b *LineItemBuilder) WithCash(cash, taxes, fees int64) *LineItemBuilder {
	b.params.Cash = booking.MustMoney(cash)
	b.params.Taxes = booking.MustMoney(taxes)
	b.params.Fees = booking.MustMoney(fees)
	return b
}

func (b *LineItemBuilder) WithRedemption(journalID string, points int64) *LineItemBuilder {
	b.params.RedemptionJournalID = journalID
	b.params.PointsRedeemed = points
	return b
}

func (b *LineItemBuilder) WithAccrual(journalID string, points int64) *LineItemBuilder {
	b.params.AccrualJournalID = journalID
	b.params.PointsEarned = points
	return b
}

func (b *LineItemBuilder) WithStatus(status booking.LineItemStatus) *LineItemBuilder {
	b.status = status
	if status == booking.LineItemCancelled && b.cancellation == nil {
		b.cancellation = &booking.Cancellation{At: DefaultNow.Add(-time.Hour), Reason: "earlier cancellation", By: "agent"}
	}
	return b
}

func (b *LineItemBuilder) Build() *booking.LineItem {
	return booking.ReconstructLineItem(b.params, b.status, b.cancellation)
}

type BookingBuilder struct {
	id          uuid.UUID
	externalRef string
	memberID    string
	items       []*booking.LineItem
	createdAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		id:          uuid.New(),
		externalRef: "TRV-" + uuid.NewString()[:8],
		memberID:    "MBR-1001",
		createdAt:   DefaultNow.AddDate(0, 0, -7),
	}
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.id = id
	return b
}

func (b *BookingBuilder) WithMemberID(memberID string) *BookingBuilder {
	b.memberID = memberID
	return b
}

func (b *BookingBuilder) WithExternalRef(ref string) *BookingBuilder {
	b.externalRef = ref
	return b
}

func (b *BookingBuilder) WithLineItems(items ...*booking.LineItem) *BookingBuilder {
	b.items = append(b.items, items...)
	return b
}

func (b *BookingBuilder) Build() *booking.Booking {
	return booking.ReconstructBooking(b.id, b.externalRef, b.memberID, b.items, b.createdAt, b.createdAt)
}

// HotelAndFlight is a two item booking: a hotel paid with cash and points that
// also earned points, and a flight paid with points plus taxes.
func HotelAndFlight() (b *booking.Booking, hotel, flight *booking.LineItem) {
	hotel = NewLineItemBuilder().
		WithCash(42000, 5460, 1500).
		WithRedemption("JRN-HTL-RED", 20000).
		WithAccrual("JRN-HTL-ACC", 840).
		Build()
	flight = NewLineItemBuilder().
		WithLineOfBusiness(booking.LineOfBusinessFlight).
		WithCash(0, 8730, 0).
		WithRedemption("JRN-FLT-RED", 35000).
		Build()
	b = NewBookingBuilder().WithLineItems(hotel, flight).Build()
	return b, hotel, flight
}
