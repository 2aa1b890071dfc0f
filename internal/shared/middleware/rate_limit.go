package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// RateLimit allows limit requests per client IP per window for one scope.
// A failing counter backend lets the request through.
func RateLimit(counter cache.Counter, scope string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if counter == nil || limit <= 0 {
			c.Next()
			return
		}

		key := scope + ":" + ClientIP(c)
		n, err := counter.Hit(c.Request.Context(), key, window)
		if err != nil {
			logger.Warn("rate limiter unavailable", err, map[string]interface{}{"scope": scope})
			c.Next()
			return
		}

		if n > int64(limit) {
			c.Header("Retry-After", retryAfter(window))
			response.Error(c, apperror.TooManyRequests("Too many requests, please try again later"))
			return
		}
		c.Next()
	}
}

func retryAfter(window time.Duration) string {
	secs := int64(window / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.FormatInt(secs, 10)
}
