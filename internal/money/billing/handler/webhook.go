package handler

import (
	"io"
	"net/http"

	"redditleads/internal/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79/webhook"
)

// maxWebhookBytes matches the payload cap Stripe documents for webhook endpoints
const maxWebhookBytes = 65536

func (h *Handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "failed to read request body")
		return
	}

	signatureHeader := c.GetHeader("Stripe-Signature")
	if signatureHeader == "" {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "missing Stripe-Signature header")
		return
	}
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, h.processor.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		h.logger.Warn(ctx, "rejected webhook with invalid signature")
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "invalid webhook signature")
		return
	}

	if err := h.processor.HandleWebhook(ctx, event); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
