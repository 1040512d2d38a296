//go:build e2e

package cancellation_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"travel-loyalty-booking/internal/domain/booking"
	"travel-loyalty-booking/internal/infra/lock"
	resdto "travel-loyalty-booking/internal/handler/dto/response"
	"travel-loyalty-booking/tests/common/builder"
	"travel-loyalty-booking/tests/common/dbtest"
	"travel-loyalty-booking/tests/common/httptest"
	"travel-loyalty-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type CancellationE2ESuite struct {
	e2e.SharedSuite
}

func TestCancellationE2E(t *testing.T) {
	suite.Run(t, new(CancellationE2ESuite))
}

func (s *CancellationE2ESuite) seed(b *booking.Booking) {
	dbtest.InsertBooking(s.T(), s.DB, b)
	s.Ledger.RegisterBooking(b)
}

// hotelAndFlight mirrors builder.HotelAndFlight with journal ids unique to
// this call, since the ledger outlives each subtest.
func hotelAndFlight() (b *booking.Booking, hotel, flight *booking.LineItem) {
	suffix := uuid.NewString()[:8]
	hotel = builder.NewLineItemBuilder().
		WithCash(42000, 5460, 1500).
		WithRedemption("JRN-HTL-RED-"+suffix, 20000).
		WithAccrual("JRN-HTL-ACC-"+suffix, 840).
		Build()
	flight = builder.NewLineItemBuilder().
		WithLineOfBusiness(booking.LineOfBusinessFlight).
		WithCash(0, 8730, 0).
		WithRedemption("JRN-FLT-RED-"+suffix, 35000).
		Build()
	b = builder.NewBookingBuilder().WithLineItems(hotel, flight).Build()
	return b, hotel, flight
}

func (s *CancellationE2ESuite) TestGetBooking() {
	s.Run("returns the stored booking", func() {
		b, hotel, _ := hotelAndFlight()
		s.seed(b)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+b.ID().String(), nil, nil)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ACTIVE", body.Status)
		s.Require().Len(body.LineItems, 2)
		s.Equal(hotel.ID().String(), body.LineItems[0].ID)
	})

	s.Run("unknown booking", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+uuid.NewString(), nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *CancellationE2ESuite) TestPreview() {
	s.Run("plans every active line item without side effects", func() {
		b, hotel, _ := hotelAndFlight()
		s.seed(b)
		path := "/api/bookings/" + b.ID().String() + "/cancellation/preview"

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, nil, httptest.WithUser("agent-1"))

		var body resdto.PlanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(55000), body.TotalPointsToRefund)
		s.Equal(int64(840), body.TotalPointsToCancel)
		s.Equal("agent-1", body.RequestedBy)
		s.Require().Len(body.Steps, 3)
		s.Require().Len(body.Steps[0].LedgerEntries, 1)
		s.Equal(int64(-20000), body.Steps[0].LedgerEntries[0].Points)

		s.Equal("ACTIVE", dbtest.BookingStatus(s.T(), s.DB, b.ID()))
		_, reversed := s.Ledger.Reversed(hotel.RedemptionJournalID())
		s.False(reversed)
	})

	s.Run("nothing left to cancel", func() {
		item := builder.NewLineItemBuilder().WithStatus(booking.LineItemCancelled).Build()
		b := builder.NewBookingBuilder().WithLineItems(item).Build()
		dbtest.InsertBooking(s.T(), s.DB, b)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/bookings/"+b.ID().String()+"/cancellation/preview", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Nothing to cancel")
	})
}

func (s *CancellationE2ESuite) TestConfirm() {
	s.Run("cancels everything and reverses all journals", func() {
		b, hotel, flight := hotelAndFlight()
		s.seed(b)
		path := "/api/bookings/" + b.ID().String() + "/cancellation/confirm"

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path,
			map[string]any{"reason": "trip cancelled"}, httptest.WithUser("MBR-1001"))

		var body resdto.ResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal("success", body.Outcome)
		s.Equal(int64(55000), body.ActualPointsRefunded)
		s.Equal(int64(840), body.ActualPointsCancelled)
		s.Equal("FULLY_CANCELLED", body.BookingStatus)
		s.Require().Len(body.Steps, 3)
		s.Equal("ACCRUAL_CANCEL", body.Steps[2].Type)

		s.Equal("CANCELLED", dbtest.LineItemStatus(s.T(), s.DB, hotel.ID()))
		s.Equal("CANCELLED", dbtest.LineItemStatus(s.T(), s.DB, flight.ID()))
		s.Equal("FULLY_CANCELLED", dbtest.BookingStatus(s.T(), s.DB, b.ID()))
		for _, j := range []string{hotel.RedemptionJournalID(), hotel.AccrualJournalID(), flight.RedemptionJournalID()} {
			_, ok := s.Ledger.Reversed(j)
			s.True(ok, j)
		}

		again := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, nil, nil)
		httptest.AssertErrorResponse(s.T(), again, http.StatusUnprocessableEntity, "Nothing to cancel")
	})

	s.Run("partial success when the ledger refuses one journal", func() {
		a := builder.NewLineItemBuilder().WithCash(0, 0, 0).WithRedemption("JRN-E2E-RED-"+uuid.NewString(), 3000).Build()
		c := builder.NewLineItemBuilder().WithCash(0, 0, 0).WithAccrual("JRN-E2E-ACC-"+uuid.NewString(), 1200).Build()
		b := builder.NewBookingBuilder().WithLineItems(a, c).Build()
		s.seed(b)
		s.Ledger.Refuse(a.RedemptionJournalID(), "journal frozen")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/bookings/"+b.ID().String()+"/cancellation/confirm", nil, nil)

		var body resdto.ResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Success)
		s.True(body.PartialSuccess)
		s.Equal(int64(0), body.ActualPointsRefunded)
		s.Equal(int64(1200), body.ActualPointsCancelled)
		s.Require().Len(body.Errors, 1)
		s.Equal(a.RedemptionJournalID(), body.Errors[0].JournalID)
		s.Contains(body.Errors[0].Message, "journal frozen")

		s.Equal("CANCELLED", dbtest.LineItemStatus(s.T(), s.DB, a.ID()))
		s.Equal("CANCELLED", dbtest.LineItemStatus(s.T(), s.DB, c.ID()))
	})

	s.Run("scoped confirm leaves other items active", func() {
		b, hotel, flight := hotelAndFlight()
		s.seed(b)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/bookings/"+b.ID().String()+"/cancellation/confirm",
			map[string]any{"lineItemIds": []string{flight.ID().String()}}, nil)

		var body resdto.ResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("PARTIALLY_CANCELLED", body.BookingStatus)
		s.Equal(int64(8730), body.ActualCashRefund)
		s.Equal("ACTIVE", dbtest.LineItemStatus(s.T(), s.DB, hotel.ID()))
		s.Equal("PARTIALLY_CANCELLED", dbtest.BookingStatus(s.T(), s.DB, b.ID()))
	})

	s.Run("refused while another execution holds the lock", func() {
		b, hotel, _ := hotelAndFlight()
		s.seed(b)

		client := redis.NewClient(&redis.Options{Addr: s.Config.Redis.Addr})
		defer client.Close()
		ctx := context.Background()
		release, err := lock.NewRedisLocker(client, time.Minute, nil).Acquire(ctx, b.ID())
		s.Require().NoError(err)
		defer release(ctx)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/bookings/"+b.ID().String()+"/cancellation/confirm", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Cancellation already in progress")
		httptest.AssertErrorCode(s.T(), rec, "CANCELLATION_IN_PROGRESS")

		s.Equal("ACTIVE", dbtest.LineItemStatus(s.T(), s.DB, hotel.ID()))
		_, reversed := s.Ledger.Reversed(hotel.RedemptionJournalID())
		s.False(reversed)
	})

	s.Run("unknown booking", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/bookings/"+uuid.NewString()+"/cancellation/confirm", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
