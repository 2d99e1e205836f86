package processor

import (
	"context"

	"github.com/stripe/stripe-go/v79"
)

// SubscriptionService applies subscription events onto accounts
type SubscriptionService interface {
	CreateSubscription(ctx context.Context, subscriptionCreated stripe.Subscription) error
	ConvertTrial(ctx context.Context, subscriptionUpdated stripe.Subscription) error
	EndSubscription(ctx context.Context, subscriptionDeleted stripe.Subscription) error
}

// CustomerDirectory resolves Stripe customers to their email address
type CustomerDirectory interface {
	CustomerEmail(ctx context.Context, customerID string) (string, error)
}

// EmailService sends transactional email
type EmailService interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}
