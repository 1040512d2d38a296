//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"travel-loyalty-booking/internal/domain/booking"
	"travel-loyalty-booking/internal/domain/cancellation"
	"travel-loyalty-booking/internal/handler/api"
	resdto "travel-loyalty-booking/internal/handler/dto/response"
	"travel-loyalty-booking/internal/handler/httperr"
	"travel-loyalty-booking/internal/pkg/clock"
	"travel-loyalty-booking/internal/pkg/errs"
	"travel-loyalty-booking/internal/usecase/commands"
	"travel-loyalty-booking/tests/common/builder"
	"travel-loyalty-booking/tests/common/httptest"
	commandsmock "travel-loyalty-booking/tests/mock/commands"
	queriesmock "travel-loyalty-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CancellationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCancellationCommands
	mockQueries  *queriesmock.MockCancellationQueries
}

func (s *CancellationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCancellationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCancellationQueries(s.mockCtrl)

	cancellations := api.NewCancellationHandler(s.mockCommands, s.mockQueries)
	bookings := api.NewBookingHandler(s.mockQueries)

	s.router.GET("/bookings/:id", bookings.Get)
	s.router.POST("/bookings/:id/cancellation/preview", cancellations.Preview)
	s.router.POST("/bookings/:id/cancellation/confirm", cancellations.Confirm)
}

func (s *CancellationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCancellationHandlerSuite(t *testing.T) {
	suite.Run(t, new(CancellationHandlerTestSuite))
}

func previewPath(id string) string { return "/bookings/" + id + "/cancellation/preview" }
func confirmPath(id string) string { return "/bookings/" + id + "/cancellation/confirm" }

func planFor(b *booking.Booking, req cancellation.Request) *cancellation.Plan {
	planner := cancellation.NewPlanner(nil, clock.NewMockClock(builder.DefaultNow), nil, "Cancelled at member request")
	plan, err := planner.CreatePlan(context.Background(), b, req)
	if err != nil {
		panic(err)
	}
	return plan
}

// ================================================================================
// TestPreview
// ================================================================================

func (s *CancellationHandlerTestSuite) TestPreview() {
	b, hotel, _ := builder.HotelAndFlight()

	s.Run("success: returns the plan for every line item", func() {
		s.mockQueries.EXPECT().
			Preview(gomock.Any(), b.ID(), cancellation.Request{RequestedBy: "agent-1"}).
			Return(planFor(b, cancellation.Request{}), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, previewPath(b.ID().String()), nil, httptest.WithUser("agent-1"))

		var body resdto.PlanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.ID().String(), body.BookingID)
		s.Equal(int64(55000), body.TotalPointsToRefund)
		s.Equal(int64(840), body.TotalPointsToCancel)
		s.Equal(int64(54160), body.NetPointsChange)
		s.Require().Len(body.Steps, 3)
		s.Equal("REDEMPTION_REFUND", body.Steps[0].Type)
		s.Equal("PENDING", body.Steps[0].Status)
		s.Equal(hotel.ID().String(), body.Steps[0].LineItemID)
		s.Equal("HOTEL", body.Steps[0].LineOfBusiness)
		s.NotNil(body.Steps[0].LedgerEntries)
		s.Nil(body.Steps[0].StartedAt)
	})

	s.Run("success: body narrows the scope and wins over the header", func() {
		want := cancellation.Request{
			LineItemIDs: []uuid.UUID{hotel.ID()},
			Reason:      "flight moved",
			RequestedBy: "agent-2",
		}
		s.mockQueries.EXPECT().Preview(gomock.Any(), b.ID(), want).Return(planFor(b, want), nil)

		reqBody := map[string]any{
			"lineItemIds": []string{hotel.ID().String()},
			"reason":      "  flight moved ",
			"requestedBy": "agent-2",
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, previewPath(b.ID().String()), reqBody, httptest.WithUser("agent-1"))

		var body resdto.PlanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.LineItems, 1)
		s.Equal("flight moved", body.Reason)
	})

	s.Run("error: empty lineItemIds is passed through as an empty scope", func() {
		want := cancellation.Request{LineItemIDs: []uuid.UUID{}, RequestedBy: "agent-1"}
		s.mockQueries.EXPECT().Preview(gomock.Any(), b.ID(), want).
			Return(nil, cancellation.PlanningFailed(errs.Wrap(cancellation.ErrNothingToCancel, "booking")))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, previewPath(b.ID().String()),
			map[string]any{"lineItemIds": []string{}}, httptest.WithUser("agent-1"))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Nothing to cancel")
		httptest.AssertErrorCode(s.T(), rec, httperr.CodeNothingToCancel)
	})

	s.Run("error: 400 on bad input", func() {
		cases := []struct {
			name string
			path string
			body any
		}{
			{name: "invalid booking id", path: previewPath("not-a-uuid"), body: nil},
			{name: "malformed json", path: previewPath(b.ID().String()), body: `{"lineItemIds":`},
			{name: "invalid line item id", path: previewPath(b.ID().String()), body: map[string]any{"lineItemIds": []string{"x"}}},
			{name: "nil line item id", path: previewPath(b.ID().String()), body: map[string]any{"lineItemIds": []string{uuid.Nil.String()}}},
			{name: "reason too long", path: previewPath(b.ID().String()), body: map[string]any{"reason": strings.Repeat("a", 501)}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, tc.path, tc.body, nil)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
			errorCode  string
		}{
			{
				name:       "booking not found",
				err:        cancellation.PlanningFailed(errs.Wrapf(booking.ErrBookingNotFound, "booking %s", b.ID())),
				expectCode: http.StatusNotFound,
				expectMsg:  "Booking not found",
				errorCode:  httperr.CodeBookingNotFound,
			},
			{
				name:       "nothing to cancel",
				err:        cancellation.PlanningFailed(errs.Wrap(cancellation.ErrNothingToCancel, "booking")),
				expectCode: http.StatusUnprocessableEntity,
				expectMsg:  "Nothing to cancel",
				errorCode:  httperr.CodeNothingToCancel,
			},
			{
				name:       "unexpected",
				err:        errors.New("boom"),
				expectCode: http.StatusInternalServerError,
				expectMsg:  "Internal error",
				errorCode:  httperr.CodeInternal,
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().Preview(gomock.Any(), b.ID(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, previewPath(b.ID().String()), nil, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
				httptest.AssertErrorCode(s.T(), rec, tc.errorCode)
			})
		}
	})
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *CancellationHandlerTestSuite) TestConfirm() {
	b, hotel, flight := builder.HotelAndFlight()

	s.Run("success: partial outcome is reported with 200", func() {
		plan := planFor(b, cancellation.Request{})
		steps := cancellation.OrderForExecution(plan.Steps())
		for i := range steps {
			_ = steps[i].Start(builder.DefaultNow)
			if steps[i].JournalID == "JRN-FLT-RED" {
				_ = steps[i].Fail(builder.DefaultNow, "ledger rejected reversal", nil)
				continue
			}
			_ = steps[i].Complete(builder.DefaultNow, "CXL-"+steps[i].JournalID, []byte(`{"status":"success"}`))
		}
		result := cancellation.NewResult(cancellation.ResultParams{
			Plan:  plan,
			Steps: steps,
			Errors: []cancellation.ExecutionError{{
				Kind:      cancellation.ErrorKindStepExecution,
				JournalID: "JRN-FLT-RED",
				Message:   "ledger rejected reversal",
			}},
			SettledLineItemIDs: []uuid.UUID{hotel.ID(), flight.ID()},
			BookingStatus:      booking.StatusFullyCancelled,
			StartedAt:          builder.DefaultNow,
			CompletedAt:        builder.DefaultNow,
		})

		s.mockCommands.EXPECT().Confirm(gomock.Any(), b.ID(), gomock.Any()).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, confirmPath(b.ID().String()), map[string]any{}, nil)

		var body resdto.ResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("partial_success", body.Outcome)
		s.False(body.Success)
		s.True(body.PartialSuccess)
		s.Equal(int64(20000), body.ActualPointsRefunded)
		s.Equal(int64(840), body.ActualPointsCancelled)
		s.Equal("FULLY_CANCELLED", body.BookingStatus)
		s.Require().Len(body.Errors, 1)
		s.Equal("JRN-FLT-RED", body.Errors[0].JournalID)
		s.Len(body.SettledLineItemIDs, 2)
		s.Require().Len(body.Steps, 3)
		s.Equal("FAILED", body.Steps[1].Status)
		s.Equal("CXL-JRN-HTL-RED", body.Steps[0].CancellationID)
		s.JSONEq(`{"status":"success"}`, string(body.Steps[0].LedgerResponse))
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "in progress", err: commands.ErrCancellationInProgress, expectCode: http.StatusConflict, expectMsg: "already in progress"},
			{name: "lock unavailable", err: errs.Mark(errors.New("dial"), commands.ErrLockUnavailable), expectCode: http.StatusServiceUnavailable, expectMsg: "temporarily unavailable"},
			{name: "not found", err: cancellation.PlanningFailed(booking.ErrBookingNotFound), expectCode: http.StatusNotFound, expectMsg: "Booking not found"},
			{name: "database", err: errs.Mark(errors.New("reset"), commands.ErrDatabaseOperationFailed), expectCode: http.StatusInternalServerError, expectMsg: "Internal error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Confirm(gomock.Any(), b.ID(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, confirmPath(b.ID().String()), nil, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *CancellationHandlerTestSuite) TestGetBooking() {
	b, hotel, _ := builder.HotelAndFlight()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), b.ID()).Return(b, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+b.ID().String(), nil, nil)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ACTIVE", body.Status)
		s.Require().Len(body.LineItems, 2)
		s.Equal(hotel.ID().String(), body.LineItems[0].ID)
		s.Equal(int64(55000), body.Totals.PointsRedeemed)
	})

	s.Run("error: not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), id).Return(nil, errs.Wrap(booking.ErrBookingNotFound, "lookup"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/123", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})
}
