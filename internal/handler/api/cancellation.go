package api

import (
	"errors"
	"io"
	"net/http"

	"travel-loyalty-booking/internal/domain/cancellation"
	reqdto "travel-loyalty-booking/internal/handler/dto/request"
	resdto "travel-loyalty-booking/internal/handler/dto/response"
	"travel-loyalty-booking/internal/handler/httperr"
	"travel-loyalty-booking/internal/usecase/commands"
	"travel-loyalty-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userIDHeader = "X-User-ID"

type CancellationHandler struct {
	cmds commands.CancellationCommands
	q    queries.CancellationQueries
}

func NewCancellationHandler(cmds commands.CancellationCommands, q queries.CancellationQueries) *CancellationHandler {
	return &CancellationHandler{cmds: cmds, q: q}
}

// @Summary Preview cancellation
// @Description Build the cancellation plan for a booking without touching the ledger or the booking
// @Tags cancellations
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param X-User-ID header string false "Caller recorded as requestedBy when the body omits it"
// @Param request body reqdto.CancellationRequest false "Line items to cancel (all when empty)"
// @Success 200 {object} resdto.PlanResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{id}/cancellation/preview [post]
func (h *CancellationHandler) Preview(c *gin.Context) {
	id, req, ok := bindCancellation(c)
	if !ok {
		return
	}
	plan, err := h.q.Preview(c.Request.Context(), id, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromPlan(plan)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal error")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Confirm cancellation
// @Description Plan and execute a cancellation. Partial and failed executions are reported in the body with 200.
// @Tags cancellations
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param X-User-ID header string false "Caller recorded as requestedBy when the body omits it"
// @Param request body reqdto.CancellationRequest false "Line items to cancel (all when empty)"
// @Success 200 {object} resdto.ResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{id}/cancellation/confirm [post]
func (h *CancellationHandler) Confirm(c *gin.Context) {
	id, req, ok := bindCancellation(c)
	if !ok {
		return
	}
	result, err := h.cmds.Confirm(c.Request.Context(), id, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal error")
		return
	}
	c.JSON(http.StatusOK, res)
}

// An empty body is a request to cancel everything.
func bindCancellation(c *gin.Context) (uuid.UUID, cancellation.Request, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest, "Invalid booking id")
		return uuid.Nil, cancellation.Request{}, false
	}
	var body reqdto.CancellationRequest
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest, "Invalid request")
		return uuid.Nil, cancellation.Request{}, false
	}
	return id, body.ToDomain(c.GetHeader(userIDHeader)), true
}
