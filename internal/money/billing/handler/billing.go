package handler

import (
	"errors"

	"redditleads/internal/apierrors"
	"redditleads/internal/money/billing/processor"
	"redditleads/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.BillingProcessor
	logger    *observability.Logger
}

func New(processor processor.BillingProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrInvalidPayload):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "invalid webhook payload")
	default:
		apierrors.InternalError(c, err)
	}
}
