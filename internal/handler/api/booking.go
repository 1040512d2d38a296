package api

import (
	"net/http"

	resdto "travel-loyalty-booking/internal/handler/dto/response"
	"travel-loyalty-booking/internal/handler/httperr"
	"travel-loyalty-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	q queries.CancellationQueries
}

func NewBookingHandler(q queries.CancellationQueries) *BookingHandler {
	return &BookingHandler{q: q}
}

// @Summary Get booking
// @Description Get a booking with its line items, derived status and totals
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest, "Invalid booking id")
		return
	}
	b, err := h.q.GetBooking(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}
