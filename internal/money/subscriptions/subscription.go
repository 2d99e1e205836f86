package subscriptions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"redditleads/internal/observability"
	"redditleads/internal/store"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
)

const (
	metadataAccountID = "userId"
	metadataRole      = "role"
)

var (
	ErrMissingAccountID = errors.New("subscription metadata has no userId")
	ErrInvalidAccountID = errors.New("subscription metadata userId is not a valid id")
)

// AccountID reads the account a subscription belongs to from its metadata
func AccountID(subscription stripe.Subscription) (uuid.UUID, error) {
	raw, ok := subscription.Metadata[metadataAccountID]
	if !ok || raw == "" {
		return uuid.UUID{}, ErrMissingAccountID
	}
	accountID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("%w: %q", ErrInvalidAccountID, raw)
	}
	return accountID, nil
}

// CreateSubscription records a new subscription on its account
func (p *SubscriptionService) CreateSubscription(ctx context.Context, subscriptionCreated stripe.Subscription) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "subscription_id", Value: subscriptionCreated.ID})

	accountID, err := AccountID(subscriptionCreated)
	if err != nil {
		return err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "account_id", Value: accountID})

	params := store.UpsertAccountSubscriptionParams{
		AccountID:           accountID,
		SubscriptionID:      subscriptionCreated.ID,
		SubscriptionStatus:  string(subscriptionCreated.Status),
		SubscriptionExpires: subscriptionCreated.CurrentPeriodEnd,
	}
	if role, ok := subscriptionCreated.Metadata[metadataRole]; ok && role != "" {
		params.Role = &role
	}
	if subscriptionCreated.Customer != nil {
		params.StripeCustomerID = subscriptionCreated.Customer.ID
	}

	if err := p.store.UpsertAccountSubscription(ctx, params); err != nil {
		p.logger.Error(ctx, "error recording subscription", err)
		return fmt.Errorf("error recording subscription: %w", err)
	}

	p.logger.Info(ctx, "subscription recorded")
	return nil
}

// ConvertTrial marks the account's trial as converted to a paid subscription
func (p *SubscriptionService) ConvertTrial(ctx context.Context, subscriptionUpdated stripe.Subscription) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "subscription_id", Value: subscriptionUpdated.ID})

	accountID, err := AccountID(subscriptionUpdated)
	if err != nil {
		return err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "account_id", Value: accountID})

	paidStart := time.Unix(subscriptionUpdated.CurrentPeriodStart, 0).UTC()
	err = p.store.MarkAccountTrialConverted(ctx, accountID, string(stripe.SubscriptionStatusActive), paidStart)
	if err != nil {
		p.logger.Error(ctx, "error converting trial", err)
		return fmt.Errorf("error converting trial: %w", err)
	}

	p.logger.Info(ctx, "trial converted to paid subscription")
	return nil
}

// EndSubscription records the final status and period end of a deleted subscription
func (p *SubscriptionService) EndSubscription(ctx context.Context, subscriptionDeleted stripe.Subscription) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "subscription_id", Value: subscriptionDeleted.ID})

	accountID, err := AccountID(subscriptionDeleted)
	if err != nil {
		return err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "account_id", Value: accountID})

	err = p.store.UpdateAccountSubscriptionStatus(ctx, accountID, string(subscriptionDeleted.Status), subscriptionDeleted.CurrentPeriodEnd)
	if err != nil {
		p.logger.Error(ctx, "error ending subscription", err)
		return fmt.Errorf("error ending subscription: %w", err)
	}

	p.logger.Info(ctx, "subscription ended")
	return nil
}
