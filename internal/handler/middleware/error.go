package middleware

import (
	"log/slog"
	"net/http"

	"travel-loyalty-booking/internal/handler/httperr"
	"travel-loyalty-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs server side failures attached by handlers and writes the
// public response when a handler recorded one without writing it.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		last := c.Errors.Last()

		resp, hasResp := last.Meta.(httperr.Response)
		if hasResp && resp.Status >= http.StatusInternalServerError {
			slog.ErrorContext(c.Request.Context(), "request failed",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"status", resp.Status,
				"error", last.Err.Error(),
				"stack", errs.ExtractStackLines(last.Err, 5))
		}

		if c.Writer.Written() {
			return
		}
		if hasResp && last.IsType(gin.ErrorTypePublic) {
			c.JSON(resp.Status, resp)
			return
		}
		internal := httperr.Response{Status: http.StatusInternalServerError}
		internal.Error.Code = httperr.CodeInternal
		internal.Error.Message = "Internal error"
		c.JSON(internal.Status, internal)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"error", err,
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Code = httperr.CodeInternal
				resp.Error.Message = "Internal error"
				c.AbortWithStatusJSON(resp.Status, resp)
			}
		}()
		c.Next()
	}
}
