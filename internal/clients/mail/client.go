package mail

import (
	"context"
	"fmt"

	"redditleads/internal/observability"

	"github.com/resendlabs/resend-go"
)

type ResendClient struct {
	client *resend.Client
	from   string
	logger *observability.Logger
}

// NewResendClient builds a sender; from is used when SendEmail gets an empty sender.
func NewResendClient(apiKey, from string, logger *observability.Logger) (*ResendClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is empty")
	}
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}

	return &ResendClient{
		client: client,
		from:   from,
		logger: logger,
	}, nil
}

func (c *ResendClient) SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error) {
	if from == "" {
		from = c.from
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	res, err := c.client.Emails.Send(&resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
	})
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent")
	return res.Id, nil
}

// TrialEndingEmail renders the notice sent when a subscription trial is about to end.
func TrialEndingEmail(webAppURI string, trialEnd int64) (subject, html string) {
	subject = "Your RedditLeads trial is ending soon"
	html = fmt.Sprintf(`<p>Hi there,</p>
<p>Your RedditLeads trial ends on <strong>%s</strong>. Your campaigns keep running once the subscription starts.</p>
<p><a href="%s/settings/billing">Manage your subscription</a></p>`, formatUnixDate(trialEnd), webAppURI)
	return subject, html
}
