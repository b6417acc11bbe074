package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit throttles a route to perMinute requests with the given burst.
// A perMinute of zero disables limiting.
func RateLimit(perMinute, burst int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			log.Printf("Rate limit exceeded for %s %s (request %s)", c.Request.Method, c.FullPath(), GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many submissions, try again shortly"})
			return
		}
		c.Next()
	}
}
