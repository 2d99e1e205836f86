package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UpsertAccountSubscriptionParams represents the subscription fields written when Stripe reports a new subscription
type UpsertAccountSubscriptionParams struct {
	AccountID           uuid.UUID
	Role                *string
	StripeCustomerID    string
	SubscriptionID      string
	SubscriptionStatus  string
	SubscriptionExpires int64
}

const sqlUpsertAccountSubscription = `
INSERT INTO accounts (id, role, stripe_customer_id, subscription_id, subscription_status, subscription_expires)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
	role = COALESCE(EXCLUDED.role, accounts.role),
	stripe_customer_id = EXCLUDED.stripe_customer_id,
	subscription_id = EXCLUDED.subscription_id,
	subscription_status = EXCLUDED.subscription_status,
	subscription_expires = EXCLUDED.subscription_expires,
	updated_at = NOW()
`

// UpsertAccountSubscription records a subscription on the account, creating the account row if needed
func (s *Store) UpsertAccountSubscription(ctx context.Context, params UpsertAccountSubscriptionParams) error {
	_, err := s.db.ExecContext(ctx, sqlUpsertAccountSubscription,
		params.AccountID,
		params.Role,
		params.StripeCustomerID,
		params.SubscriptionID,
		params.SubscriptionStatus,
		params.SubscriptionExpires)
	if err != nil {
		return fmt.Errorf("failed to upsert account subscription: %w", err)
	}
	return nil
}

const sqlMarkAccountTrialConverted = `
INSERT INTO accounts (id, subscription_status, trial_converted, paid_subscription_start)
VALUES ($1, $2, TRUE, $3)
ON CONFLICT (id) DO UPDATE SET
	subscription_status = EXCLUDED.subscription_status,
	trial_converted = TRUE,
	paid_subscription_start = EXCLUDED.paid_subscription_start,
	updated_at = NOW()
`

// MarkAccountTrialConverted records that a trialing subscription became paid
func (s *Store) MarkAccountTrialConverted(ctx context.Context, accountID uuid.UUID, status string, paidStart time.Time) error {
	_, err := s.db.ExecContext(ctx, sqlMarkAccountTrialConverted, accountID, status, paidStart)
	if err != nil {
		return fmt.Errorf("failed to mark trial converted: %w", err)
	}
	return nil
}

const sqlUpdateAccountSubscriptionStatus = `
INSERT INTO accounts (id, subscription_status, subscription_expires)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET
	subscription_status = EXCLUDED.subscription_status,
	subscription_expires = EXCLUDED.subscription_expires,
	updated_at = NOW()
`

// UpdateAccountSubscriptionStatus records a status change such as cancellation
func (s *Store) UpdateAccountSubscriptionStatus(ctx context.Context, accountID uuid.UUID, status string, expires int64) error {
	_, err := s.db.ExecContext(ctx, sqlUpdateAccountSubscriptionStatus, accountID, status, expires)
	if err != nil {
		return fmt.Errorf("failed to update subscription status: %w", err)
	}
	return nil
}

const sqlGetAccountByID = `
SELECT id, email, role, stripe_customer_id, subscription_id, subscription_status, subscription_expires,
	trial_converted, paid_subscription_start, created_at, updated_at
FROM accounts
WHERE id = $1
`

// GetAccountByID retrieves an account by ID
func (s *Store) GetAccountByID(ctx context.Context, accountID uuid.UUID) (Account, error) {
	var account Account
	err := s.db.GetContext(ctx, &account, sqlGetAccountByID, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, ErrNotFound
		}
		return Account{}, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}
