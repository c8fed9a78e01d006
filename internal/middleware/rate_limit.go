package middleware

import (
	"net/http"
	"time"

	"ShaadiBiodata/internal/logger"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// idle limiters are evicted after this long
const limiterExpiry = time.Hour

// RateLimitByIP throttles each client IP to perSecond requests with the given burst.
func RateLimitByIP(perSecond float64, burst int) gin.HandlerFunc {
	return limit.NewRateLimiter(
		func(c *gin.Context) string {
			return c.ClientIP()
		},
		func(c *gin.Context) (*rate.Limiter, time.Duration) {
			return rate.NewLimiter(rate.Limit(perSecond), burst), limiterExpiry
		},
		func(c *gin.Context) {
			logger.Log.Warnw("RateLimitByIP(): request throttled", "client_ip", c.ClientIP(), "uri", c.Request.RequestURI)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
		},
	)
}
