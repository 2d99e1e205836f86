package ratelimit

import (
	"context"
	"fmt"
	"time"

	"redditleads/internal/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const window = time.Minute

// Result represents the outcome of a rate limit check
type Result struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service caps how often one account may call the Reddit-backed endpoints.
// Every API call on those routes spends quota from the single shared Reddit login.
type Service struct {
	redis  *redis.Client
	limit  int
	logger *observability.Logger
	now    func() time.Time
}

// NewService creates a limiter allowing requestsPerMinute calls per account.
// A nil client or a non-positive limit disables limiting.
func NewService(client *redis.Client, requestsPerMinute int, logger *observability.Logger) *Service {
	return &Service{
		redis:  client,
		limit:  requestsPerMinute,
		logger: logger,
		now:    time.Now,
	}
}

// Enabled reports whether checks are enforced
func (s *Service) Enabled() bool {
	return s != nil && s.redis != nil && s.limit > 0
}

// CheckRateLimit records one request for the account and reports whether it fits the window.
// Uses a sliding window over a sorted set keyed by account, scored by request time in ms.
func (s *Service) CheckRateLimit(ctx context.Context, accountID uuid.UUID) (Result, error) {
	key := fmt.Sprintf("ratelimit:api:%s", accountID.String())
	now := s.now()
	nowMs := now.UnixMilli()
	windowStartMs := now.Add(-window).UnixMilli()

	if err := s.redis.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStartMs)).Err(); err != nil {
		return Result{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := s.redis.ZCard(ctx, key).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= s.limit {
		oldest, err := s.redis.ZRangeWithScores(ctx, key, 0, 0).Result()
		if err != nil || len(oldest) == 0 {
			return Result{
				Allowed:      false,
				Limit:        s.limit,
				ResetAt:      now.Add(window),
				RetryAfterMs: int(window.Milliseconds()),
			}, nil
		}

		resetAt := time.UnixMilli(int64(oldest[0].Score)).Add(window)
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}

		return Result{
			Allowed:      false,
			Limit:        s.limit,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	// Members must be unique, two requests can share a millisecond
	member := fmt.Sprintf("%d-%s", nowMs, uuid.NewString())
	if err := s.redis.ZAdd(ctx, key, redis.Z{Score: float64(nowMs), Member: member}).Err(); err != nil {
		return Result{}, fmt.Errorf("failed to add request: %w", err)
	}

	if err := s.redis.Expire(ctx, key, 2*window).Err(); err != nil {
		s.logger.Warn(ctx, fmt.Sprintf("failed to set expiration on rate limit key: %v", err))
	}

	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(window),
	}, nil
}
