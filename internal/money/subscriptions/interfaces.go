package subscriptions

import (
	"context"
	"time"

	"redditleads/internal/store"

	"github.com/google/uuid"
)

// AccountStore defines the account writes driven by subscription events
type AccountStore interface {
	UpsertAccountSubscription(ctx context.Context, params store.UpsertAccountSubscriptionParams) error
	MarkAccountTrialConverted(ctx context.Context, accountID uuid.UUID, status string, paidStart time.Time) error
	UpdateAccountSubscriptionStatus(ctx context.Context, accountID uuid.UUID, status string, expires int64) error
}
