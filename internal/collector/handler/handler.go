package handler

import (
	"context"
	"errors"
	"net/http"

	"redditleads/internal/apierrors"
	"redditleads/internal/collector/processor"
	"redditleads/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CollectorProcessor
	logger    *observability.Logger
}

func New(processor processor.CollectorProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CollectRequest represents the HTTP request for starting a collection run
type CollectRequest struct {
	Mode string `json:"mode" binding:"omitempty,oneof=exhaustive bounded"`
}

// CollectResponse acknowledges a collection run started in the background
type CollectResponse struct {
	Message    string    `json:"message"`
	CampaignID uuid.UUID `json:"campaign_id"`
	Subreddit  string    `json:"subreddit"`
	Mode       string    `json:"mode"`
}

// HandleCollect starts a username collection run and returns immediately; poll the progress endpoint.
func (h *Handler) HandleCollect(c *gin.Context) {
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
	subreddit := c.Param("subreddit")

	var req CollectRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}
	}

	mode, err := processor.ParseMode(req.Mode)
	if err != nil {
		h.handleError(c, err)
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "subreddit", Value: subreddit},
	)

	if err := h.processor.Validate(ctx, accountID, campaignID, subreddit); err != nil {
		h.handleError(c, err)
		return
	}

	go func(ctx context.Context) {
		if _, err := h.processor.Collect(ctx, accountID, campaignID, subreddit, mode); err != nil {
			h.logger.Error(ctx, "background collection failed", err)
		}
	}(context.WithoutCancel(ctx))

	c.JSON(http.StatusAccepted, CollectResponse{
		Message:    "Username collection started",
		CampaignID: campaignID,
		Subreddit:  subreddit,
		Mode:       string(mode),
	})
}

// HandleGetProgress returns the progress record of the last collection run
func (h *Handler) HandleGetProgress(c *gin.Context) {
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

	record, err := h.processor.GetProgress(ctx, accountID, campaignID, c.Param("subreddit"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
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
	case errors.Is(err, processor.ErrProgressNotFound):
		apierrors.NotFound(c, "No collection has run for this subreddit")
	case errors.Is(err, processor.ErrUnauthorized):
		apierrors.Forbidden(c, "FORBIDDEN", "You do not have access to this campaign")
	case errors.Is(err, processor.ErrInvalidMode):
		apierrors.BadRequest(c, apierrors.CodeInvalidMode, "Mode must be exhaustive or bounded")
	case errors.Is(err, processor.ErrSubredditNotInCampaign):
		apierrors.BadRequest(c, apierrors.CodeSubredditNotInCampaign, "Subreddit is not part of this campaign")
	default:
		apierrors.InternalError(c, err)
	}
}
