package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"redditleads/internal/clients/mail"
	"redditleads/internal/money/subscriptions"
	"redditleads/internal/observability"

	"github.com/stripe/stripe-go/v79"
)

// Invoke this method in your webhook handler when `customer.subscription.created` webhook is received
func (p *BillingProcessor) SubscriptionCreated(ctx context.Context, subscription stripe.Subscription) error {
	return p.skipUnaddressed(ctx, p.subscriptionService.CreateSubscription(ctx, subscription))
}

// Invoke this method in your webhook handler when `customer.subscription.updated` webhook is received.
// Only a trialing to active transition changes the account.
func (p *BillingProcessor) SubscriptionUpdated(ctx context.Context, subscription stripe.Subscription, previousStatus string) error {
	if previousStatus != string(stripe.SubscriptionStatusTrialing) || subscription.Status != stripe.SubscriptionStatusActive {
		p.logger.Info(ctx, "Subscription updated")
		return nil
	}
	p.logger.Info(ctx, "Subscription moved from trialing to active")
	return p.skipUnaddressed(ctx, p.subscriptionService.ConvertTrial(ctx, subscription))
}

// Invoke this method in your webhook handler when `customer.subscription.deleted` webhook is received
func (p *BillingProcessor) SubscriptionDeleted(ctx context.Context, subscription stripe.Subscription) error {
	return p.skipUnaddressed(ctx, p.subscriptionService.EndSubscription(ctx, subscription))
}

// Invoke this method in your webhook handler when `customer.subscription.trial_will_end` webhook is received
func (p *BillingProcessor) TrialWillEnd(ctx context.Context, subscription stripe.Subscription) error {
	if _, err := subscriptions.AccountID(subscription); err != nil {
		return p.skipUnaddressed(ctx, err)
	}
	if subscription.Customer == nil || subscription.Customer.ID == "" {
		p.logger.Warn(ctx, "trial ending subscription has no customer")
		return nil
	}

	to := subscription.Customer.Email
	if to == "" {
		email, err := p.customers.CustomerEmail(ctx, subscription.Customer.ID)
		if err != nil {
			if errors.Is(err, ErrCustomerNotFound) || errors.Is(err, ErrCustomerHasNoMail) {
				p.logger.Warn(ctx, fmt.Sprintf("cannot notify trial ending: %v", err))
				return nil
			}
			return err
		}
		to = email
	}

	subject, html := mail.TrialEndingEmail(p.webAppURI, subscription.TrialEnd)
	if _, err := p.emailService.SendEmail(ctx, "", to, subject, html); err != nil {
		p.logger.Error(ctx, "failed to send trial ending email", err)
		return err
	}
	p.logger.Info(ctx, "Trial ending email sent")
	return nil
}

func (p *BillingProcessor) HandleWebhook(ctx context.Context, event stripe.Event) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "event_type", Value: string(event.Type)},
	)

	switch event.Type {
	case "customer.subscription.created",
		"customer.subscription.updated",
		"customer.subscription.deleted",
		"customer.subscription.trial_will_end":
		if event.Data == nil {
			return ErrInvalidPayload
		}
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			p.logger.Error(ctx, "failed to unmarshal subscription", err)
			return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		ctx = observability.WithFields(ctx, observability.Field{Key: "subscription_id", Value: subscription.ID})

		switch event.Type {
		case "customer.subscription.created":
			return p.SubscriptionCreated(ctx, subscription)
		case "customer.subscription.updated":
			previousStatus, _ := event.Data.PreviousAttributes["status"].(string)
			return p.SubscriptionUpdated(ctx, subscription, previousStatus)
		case "customer.subscription.deleted":
			return p.SubscriptionDeleted(ctx, subscription)
		default:
			return p.TrialWillEnd(ctx, subscription)
		}

	case "checkout.session.completed":
		p.logger.Info(ctx, "Checkout session completed")

	default:
		p.logger.Warn(ctx, fmt.Sprintf("Unhandled event type: %s", event.Type))
	}

	return nil
}

// skipUnaddressed acknowledges events whose subscription names no account
func (p *BillingProcessor) skipUnaddressed(ctx context.Context, err error) error {
	if errors.Is(err, subscriptions.ErrMissingAccountID) || errors.Is(err, subscriptions.ErrInvalidAccountID) {
		p.logger.Warn(ctx, fmt.Sprintf("ignoring subscription event: %v", err))
		return nil
	}
	return err
}
