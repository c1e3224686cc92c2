package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fixit/internal/shared/constants"
)

// RequestID reuses the caller's X-Request-ID or generates one, stores it on the context and
// echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.HeaderXRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(constants.ContextKeyRequestID, id)
		c.Header(constants.HeaderXRequestID, id)
		c.Next()
	}
}
