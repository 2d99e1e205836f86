package ratelimit

import (
	"fmt"

	"redditleads/internal/apierrors"
	"redditleads/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Middleware limits requests per account. It must run after the JWT middleware
// has set "Account-ID"; requests without one pass through untouched.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.Enabled() {
			c.Next()
			return
		}

		ctx := c.Request.Context()

		accountIDStr, exists := c.Get("Account-ID")
		if !exists {
			c.Next()
			return
		}
		accountID, err := uuid.Parse(fmt.Sprint(accountIDStr))
		if err != nil {
			c.Next()
			return
		}

		ctx = observability.WithFields(ctx,
			observability.Field{Key: "account_id", Value: accountID.String()},
			observability.Field{Key: "rate_limit_rpm", Value: s.limit},
		)

		result, err := s.CheckRateLimit(ctx, accountID)
		if err != nil {
			// Redis being down should not take the API with it
			s.logger.Error(ctx, "rate limit check failed, allowing request", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", (result.RetryAfterMs+999)/1000))
			s.logger.Warn(ctx, "rate limit exceeded")
			apierrors.RateLimitExceeded(c, "Too many requests. Please slow down.")
			return
		}

		c.Next()
	}
}
