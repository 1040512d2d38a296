package api

import (
	"net/http"

	"travel-loyalty-booking/internal/domain/booking"
	"travel-loyalty-booking/internal/domain/cancellation"
	"travel-loyalty-booking/internal/handler/httperr"
	"travel-loyalty-booking/internal/pkg/errs"
	"travel-loyalty-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, booking.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeBookingNotFound, "Booking not found")
	case errs.Is(err, cancellation.ErrNothingToCancel):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeNothingToCancel, "Nothing to cancel")
	case errs.Is(err, commands.ErrCancellationInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeCancellationInProgress, "Cancellation already in progress")
	case errs.Is(err, commands.ErrLockUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, httperr.CodeLockUnavailable, "Cancellation temporarily unavailable")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal error")
	}
}
