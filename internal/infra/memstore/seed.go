package memstore

import (
	"context"
	"time"

	"travel-loyalty-booking/internal/domain/booking"
	"travel-loyalty-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingSaver interface {
	Save(ctx context.Context, b *booking.Booking) error
}

// Demo booking and line item ids are fixed so the storefront can link to them.
var (
	DemoHotelFlightBookingID = uuid.MustParse("6f1c2a52-0d43-4c5e-9a57-0b7f3f1a9e01")
	DemoHotelLineItemID      = uuid.MustParse("6f1c2a52-0d43-4c5e-9a57-0b7f3f1a9e11")
	DemoFlightLineItemID     = uuid.MustParse("6f1c2a52-0d43-4c5e-9a57-0b7f3f1a9e12")

	DemoCarBookingID  = uuid.MustParse("6f1c2a52-0d43-4c5e-9a57-0b7f3f1a9e02")
	DemoCarLineItemID = uuid.MustParse("6f1c2a52-0d43-4c5e-9a57-0b7f3f1a9e21")

	DemoPackageBookingID  = uuid.MustParse("6f1c2a52-0d43-4c5e-9a57-0b7f3f1a9e03")
	DemoPackageLineItemID = uuid.MustParse("6f1c2a52-0d43-4c5e-9a57-0b7f3f1a9e31")
)

// DemoBookings builds the storefront's sample bookings relative to now.
func DemoBookings(now time.Time) ([]*booking.Booking, error) {
	day := 24 * time.Hour
	checkIn := now.Add(30 * day).Truncate(day)

	hotelDates, err := booking.NewDateRange(checkIn, checkIn.Add(3*day))
	if err != nil {
		return nil, err
	}
	flightDates, err := booking.NewDateRange(checkIn, checkIn)
	if err != nil {
		return nil, err
	}

	hotel, err := booking.NewLineItem(booking.LineItemParams{
		ID:                  DemoHotelLineItemID,
		LineOfBusiness:      booking.LineOfBusinessHotel,
		Cash:                booking.MustMoney(42000),
		Taxes:               booking.MustMoney(5460),
		Fees:                booking.MustMoney(1500),
		PointsRedeemed:      20000,
		PointsEarned:        840,
		Dates:               hotelDates,
		Destination:         "Lisbon",
		RedemptionJournalID: "JRN-DEMO-HTL-RED-001",
		AccrualJournalID:    "JRN-DEMO-HTL-ACC-001",
	})
	if err != nil {
		return nil, err
	}
	flight, err := booking.NewLineItem(booking.LineItemParams{
		ID:                  DemoFlightLineItemID,
		LineOfBusiness:      booking.LineOfBusinessFlight,
		Cash:                booking.MustMoney(0),
		Taxes:               booking.MustMoney(8730),
		PointsRedeemed:      35000,
		Dates:               flightDates,
		Destination:         "Lisbon",
		RedemptionJournalID: "JRN-DEMO-FLT-RED-001",
	})
	if err != nil {
		return nil, err
	}

	car, err := booking.NewLineItem(booking.LineItemParams{
		ID:             DemoCarLineItemID,
		LineOfBusiness: booking.LineOfBusinessCar,
		Cash:           booking.MustMoney(18900),
		Taxes:          booking.MustMoney(2100),
		Dates:          hotelDates,
		Destination:    "Lisbon",
	})
	if err != nil {
		return nil, err
	}

	pkg, err := booking.NewLineItem(booking.LineItemParams{
		ID:               DemoPackageLineItemID,
		LineOfBusiness:   booking.LineOfBusinessPackage,
		Cash:             booking.MustMoney(129900),
		Taxes:            booking.MustMoney(11000),
		Fees:             booking.MustMoney(2500),
		PointsEarned:     2598,
		Dates:            hotelDates,
		Destination:      "Cancun",
		AccrualJournalID: "JRN-DEMO-PKG-ACC-001",
	})
	if err != nil {
		return nil, err
	}

	specs := []struct {
		id     uuid.UUID
		ref    string
		member string
		items  []*booking.LineItem
	}{
		{DemoHotelFlightBookingID, "TRV-DEMO-1001", "MBR-1001", []*booking.LineItem{hotel, flight}},
		{DemoCarBookingID, "TRV-DEMO-1002", "MBR-1001", []*booking.LineItem{car}},
		{DemoPackageBookingID, "TRV-DEMO-1003", "MBR-1002", []*booking.LineItem{pkg}},
	}

	out := make([]*booking.Booking, 0, len(specs))
	for _, s := range specs {
		if _, err := booking.NewBooking(s.ref, s.member, s.items, now); err != nil {
			return nil, errs.Wrapf(err, "demo booking %s", s.ref)
		}
		out = append(out, booking.ReconstructBooking(s.id, s.ref, s.member, s.items, now, now))
	}
	return out, nil
}

// Seed saves the demo bookings into store.
func Seed(ctx context.Context, store BookingSaver, now time.Time) ([]*booking.Booking, error) {
	demo, err := DemoBookings(now)
	if err != nil {
		return nil, err
	}
	for _, b := range demo {
		if err := store.Save(ctx, b); err != nil {
			return nil, errs.Wrapf(err, "failed to seed booking %s", b.ExternalRef())
		}
	}
	return demo, nil
}
