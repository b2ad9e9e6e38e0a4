package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/Sheddybata/sdp.app/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

const DefaultTimeout = 30 * time.Second

// Timeout bounds the request context. Handlers and repositories observe the
// deadline through ctx; no response is written here.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			logger.FromContext(ctx).Warn("request deadline exceeded",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"timeout", timeout.String(),
				"status", c.Writer.Status(),
			)
		}
	}
}
