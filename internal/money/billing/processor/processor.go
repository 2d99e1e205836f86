package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"redditleads/internal/observability"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/customer"
)

var (
	ErrInvalidPayload    = errors.New("invalid webhook payload")
	ErrCustomerNotFound  = errors.New("stripe customer not found")
	ErrCustomerHasNoMail = errors.New("stripe customer has no email")
)

type BillingProcessor struct {
	WebhookSecret       string
	webAppURI           string
	logger              *observability.Logger
	subscriptionService SubscriptionService
	customers           CustomerDirectory
	emailService        EmailService
}

func New(stripeKey string, webhookSecret string, webAppURI string, subService SubscriptionService,
	customers CustomerDirectory, emailService EmailService, logger *observability.Logger) BillingProcessor {
	stripe.Key = stripeKey
	return BillingProcessor{
		WebhookSecret:       webhookSecret,
		webAppURI:           webAppURI,
		subscriptionService: subService,
		customers:           customers,
		emailService:        emailService,
		logger:              logger,
	}
}

// StripeCustomers looks customers up through the Stripe API
type StripeCustomers struct {
	logger *observability.Logger
}

func NewStripeCustomers(logger *observability.Logger) StripeCustomers {
	return StripeCustomers{logger: logger}
}

func (s StripeCustomers) CustomerEmail(ctx context.Context, customerID string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "stripe_customer_id", Value: customerID})

	params := &stripe.CustomerParams{}
	params.Context = ctx
	c, err := customer.Get(customerID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return "", ErrCustomerNotFound
		}
		s.logger.Error(ctx, "failed to get customer", err)
		return "", fmt.Errorf("failed to get customer: %w", err)
	}
	if c.Deleted {
		return "", ErrCustomerNotFound
	}
	if c.Email == "" {
		return "", ErrCustomerHasNoMail
	}
	return c.Email, nil
}
