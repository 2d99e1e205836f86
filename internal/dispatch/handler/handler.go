package handler

import (
	"context"
	"errors"
	"net/http"

	"redditleads/internal/apierrors"
	"redditleads/internal/dispatch/processor"
	"redditleads/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.DispatchProcessor
	logger    *observability.Logger
}

func New(processor processor.DispatchProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleDispatch sends one batch of messages for the campaign and returns the counts
func (h *Handler) HandleDispatch(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := h.getAccountID(c)
	if !ok {
		return
	}

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid campaign ID format")
		return
	}

	// a client disconnect must not abandon a batch half-way through its bookkeeping
	result, err := h.processor.Dispatch(context.WithoutCancel(ctx), accountID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) getAccountID(c *gin.Context) (uuid.UUID, bool) {
	accountIDStr, exists := c.Get("Account-ID")
	if !exists {
		apierrors.Unauthorized(c, "Account ID not found in context")
		return uuid.UUID{}, false
	}

	accountID, err := uuid.Parse(accountIDStr.(string))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid account ID format")
		return uuid.UUID{}, false
	}
	return accountID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, "Campaign not found")
	case errors.Is(err, processor.ErrUnauthorized):
		apierrors.Forbidden(c, "FORBIDDEN", "You do not have access to this campaign")
	case errors.Is(err, processor.ErrCampaignNotRunning):
		apierrors.BadRequest(c, apierrors.CodeCampaignNotRunning, "Campaign must be running to send messages")
	case errors.Is(err, processor.ErrNoCollectedSubreddits):
		apierrors.BadRequest(c, apierrors.CodeNoCollectedSubreddits, "Collect usernames for at least one subreddit first")
	default:
		apierrors.InternalError(c, err)
	}
}
