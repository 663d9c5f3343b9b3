package ratelimit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per client IP.
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle(c, limiter, c.ClientIP())
	}
}

// UserBasedMiddleware limits requests per authenticated user, falling back
// to the client IP when no user is set on the context.
func UserBasedMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString("userID")
		if key == "" {
			key = c.ClientIP()
		}
		handle(c, limiter, key)
	}
}

func handle(c *gin.Context, limiter *RateLimiter, key string) {
	allowed := limiter.Allow(key)
	remaining := limiter.GetRemaining(key)
	resetTime := limiter.GetResetTime(key)

	c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", resetTime.Format(time.RFC3339))

	if !allowed {
		retryAfter := time.Until(resetTime)
		if retryAfter < 0 {
			retryAfter = 0
		}
		c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))

		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":       "Rate limit exceeded. Try again later.",
			"retry_after": retryAfter.Round(time.Second).String(),
			"reset_time":  resetTime.Format(time.RFC3339),
			"limit":       limiter.limit,
			"remaining":   remaining,
		})
		c.Abort()
		return
	}

	c.Next()
}
