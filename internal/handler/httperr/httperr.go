package httperr

import (
	"github.com/gin-gonic/gin"
)

// Codes let clients branch on a failure without parsing the message.
const (
	CodeInvalidRequest         = "INVALID_REQUEST"
	CodeBookingNotFound        = "BOOKING_NOT_FOUND"
	CodeNothingToCancel        = "NOTHING_TO_CANCEL"
	CodeCancellationInProgress = "CANCELLATION_IN_PROGRESS"
	CodeLockUnavailable        = "LOCK_UNAVAILABLE"
	CodeInternal               = "INTERNAL"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// AbortWithError writes the public response and keeps err on the context for
// the error middleware to log.
func AbortWithError(c *gin.Context, status int, err error, code, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
