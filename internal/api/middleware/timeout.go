package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout bounds every request's context. Occupancy transactions observe the
// deadline and roll back rather than commit a partial mutation.
func Timeout(limit time.Duration) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), limit)
		defer cancel()

		ctx.Request = ctx.Request.WithContext(timeoutCtx)
		ctx.Next()
	}
}
