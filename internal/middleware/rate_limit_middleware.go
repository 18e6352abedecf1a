// internal/middleware/rate_limit_middleware.go
package middleware

import (
	"net/http"

	xerrors "voltride-service/internal/pkg/errors"
	"voltride-service/internal/pkg/response"
	"voltride-service/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FormRateLimit caps public form submissions per client IP. A Redis outage
// fails open; intake must not depend on the limiter being reachable.
func FormRateLimit(limiter *session.RateLimiter, form string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.CheckFormSubmission(c.Request.Context(), form, c.ClientIP())
		if err != nil {
			logger.Warn("form rate limit check failed, allowing request",
				zap.String("form", form), zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			logger.Warn("form submission rate limited",
				zap.String("form", form), zap.String("ip", c.ClientIP()))
			response.Error(c, http.StatusTooManyRequests, xerrors.CodeRateLimited,
				"too many submissions, please try again later")
			return
		}
		c.Next()
	}
}
