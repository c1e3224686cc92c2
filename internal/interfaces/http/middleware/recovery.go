package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"
	"syscall"

	"github.com/gin-gonic/gin"

	"fixit/internal/shared/constants"
	"fixit/internal/shared/logger"
	"fixit/internal/shared/utils"
)

// Recovery turns a handler panic into a 500 response. A client that hung up mid-response only
// gets a log line.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
			"error", recovered,
		}
		if requestID := c.GetString(constants.ContextKeyRequestID); requestID != "" {
			args = append(args, "request_id", requestID)
		}

		if isBrokenConnection(recovered) {
			log.Warnw("connection broken during request", args...)
			c.Abort()
			return
		}

		args = append(args,
			"headers", redactedHeaders(c.Request.Header),
			"stack", string(debug.Stack()),
		)
		log.Errorw("panic recovered", args...)

		utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
	})
}

func redactedHeaders(h http.Header) http.Header {
	out := h.Clone()
	if out.Get(constants.HeaderAuthorization) != "" {
		out.Set(constants.HeaderAuthorization, "*")
	}
	return out
}

func isBrokenConnection(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET)
}
