package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusguard/internal/infrastructure/ratelimit"
	"campusguard/internal/shared/logger"
	"campusguard/internal/shared/utils"
)

// RateLimit enforces a per-client-IP request budget on sensitive routes
// such as login. When the limiter backend is unavailable requests pass
// through rather than blocking all traffic.
func RateLimit(limiter ratelimit.RateLimiter, scope string, quota ratelimit.Quota, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", scope, c.ClientIP())

		allowed, err := limiter.Allow(c.Request.Context(), key, quota)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err, "scope", scope)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
