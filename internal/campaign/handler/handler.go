package handler

import (
	"errors"
	"fmt"
	"net/http"

	"redditleads/internal/apierrors"
	"redditleads/internal/campaign/processor"
	"redditleads/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadBytes caps a username CSV upload
const maxUploadBytes = 5 << 20

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// SubredditRequest represents a target subreddit in HTTP request
type SubredditRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=64"`
	Members int    `json:"members" binding:"gte=0"`
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Name            string             `json:"name" binding:"required,min=1,max=255"`
	MessageSubject  string             `json:"message_subject" binding:"required,min=1,max=100"`
	MessageTemplate string             `json:"message_template" binding:"required,min=1,max=10000"`
	DailyLimit      int                `json:"daily_limit" binding:"gte=0"`
	Subreddits      []SubredditRequest `json:"subreddits" binding:"required,min=1,dive"`
}

// UpdateCampaignStatusRequest represents the HTTP request for starting or pausing a campaign
type UpdateCampaignStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=running paused"`
}

// HandleCreateCampaign creates a new campaign
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := h.getAccountID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "account_id", Value: accountID.String()})

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	subreddits := make([]processor.SubredditParams, 0, len(req.Subreddits))
	for _, sub := range req.Subreddits {
		subreddits = append(subreddits, processor.SubredditParams{Name: sub.Name, Members: sub.Members})
	}

	campaign, err := h.processor.CreateCampaign(ctx, accountID, processor.CreateCampaignParams{
		Name:            req.Name,
		MessageSubject:  req.MessageSubject,
		MessageTemplate: req.MessageTemplate,
		DailyLimit:      req.DailyLimit,
		Subreddits:      subreddits,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleListCampaigns lists all campaigns for the account
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := h.getAccountID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "account_id", Value: accountID.String()})

	campaigns, err := h.processor.ListCampaigns(ctx, accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// HandleGetCampaign retrieves a campaign with its stats
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := h.getAccountID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.GetCampaign(ctx, accountID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleUpdateCampaignStatus starts or pauses a campaign
func (h *Handler) HandleUpdateCampaignStatus(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := h.getAccountID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	var req UpdateCampaignStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "status", Value: req.Status},
	)

	campaign, err := h.processor.UpdateCampaignStatus(ctx, accountID, campaignID, req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleUploadUsernames imports a CSV of usernames sent as the multipart field "file"
func (h *Handler) HandleUploadUsernames(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := h.getAccountID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "A CSV file is required in the \"file\" field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apierrors.InternalError(c, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer file.Close()

	result, err := h.processor.UploadUsernames(ctx, accountID, campaignID, c.Param("subreddit"), file)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleListUsernameRecords pages through a subreddit's collected usernames
func (h *Handler) HandleListUsernameRecords(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := h.getAccountID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	limit := processor.DefaultRecordPageSize
	if limitStr := c.Query("limit"); limitStr != "" {
		if _, err := fmt.Sscanf(limitStr, "%d", &limit); err != nil || limit < 1 {
			limit = processor.DefaultRecordPageSize
		}
	}

	offset := 0
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if _, err := fmt.Sscanf(offsetStr, "%d", &offset); err != nil || offset < 0 {
			offset = 0
		}
	}

	records, total, err := h.processor.ListUsernameRecords(ctx, accountID, campaignID, processor.ListUsernameRecordsParams{
		Subreddit: c.Param("subreddit"),
		Status:    c.Query("status"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"pagination": gin.H{
			"total_count": total,
			"limit":       limit,
			"offset":      offset,
		},
	})
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

func (h *Handler) getCampaignID(c *gin.Context) (uuid.UUID, bool) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid campaign ID format")
		return uuid.UUID{}, false
	}
	return campaignID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, "Campaign not found")
	case errors.Is(err, processor.ErrUnauthorized):
		apierrors.Forbidden(c, "FORBIDDEN", "You do not have access to this campaign")
	case errors.Is(err, processor.ErrInvalidCampaignStatus):
		apierrors.BadRequest(c, "INVALID_STATUS", "Status must be running or paused")
	case errors.Is(err, processor.ErrInvalidOutreachStatus):
		apierrors.BadRequest(c, "INVALID_STATUS", "Status must be pending, sent or failed")
	case errors.Is(err, processor.ErrDuplicateSubreddit):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, err.Error())
	case errors.Is(err, processor.ErrNoSubreddits):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Campaign needs at least one subreddit")
	case errors.Is(err, processor.ErrEmptyUpload):
		apierrors.BadRequest(c, apierrors.CodeEmptyUpload, "Upload contains no usernames")
	case errors.Is(err, processor.ErrMalformedUpload):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Upload is not a valid CSV file")
	default:
		apierrors.InternalError(c, err)
	}
}
