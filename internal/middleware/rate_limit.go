// middleware/rate_limit.go
package middleware

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/Manzzzx/barasakti/internal/constants"
	"github.com/Manzzzx/barasakti/internal/ratelimit"
	"github.com/Manzzzx/barasakti/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimit admits or rejects the request before any parsing happens. The
// quota headers are set on every response, so an accepted submission echoes
// its remaining budget; a rejection carries the retry-after hint in the body.
func RateLimit(limiter ratelimit.Limiter, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := c.ClientIP()
		if identifier == "" {
			identifier = constants.AnonymousIdentifier
		}

		decision, err := limiter.Check(c.Request.Context(), identifier)
		if err != nil {
			// Limiter trouble is never the client's problem
			logger.GetLogger().Warn("Rate limit check failed, admitting request",
				zap.String("client_ip", identifier),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			c.Next()
			return
		}

		c.Header(constants.HeaderRateLimitLimit, fmt.Sprintf("%d", decision.Limit))
		c.Header(constants.HeaderRateLimitRemaining, fmt.Sprintf("%d", decision.Remaining))
		c.Header(constants.HeaderRateLimitReset, decision.Reset.UTC().Format(time.RFC3339))

		if !decision.Allowed {
			retryAfter := int64(math.Round(time.Until(decision.Reset).Seconds()))
			if retryAfter < 0 {
				retryAfter = 0
			}

			logger.GetLogger().Warn("Rate limit exceeded",
				zap.String("client_ip", identifier),
				zap.String("user_agent", c.GetHeader(constants.HeaderUserAgent)),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Int("max_requests", decision.Limit),
				zap.Time("retry_after", decision.Reset),
			)

			c.JSON(http.StatusTooManyRequests, constants.BuildThrottleResponse(message, retryAfter))
			c.Abort()
			return
		}

		c.Next()
	}
}
