package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"redditleads/internal/apierrors"
	"redditleads/internal/inbox/processor"
	"redditleads/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.InboxProcessor
	logger    *observability.Logger
}

func New(processor processor.InboxProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ReplyRequest represents the HTTP request for replying to a private message
type ReplyRequest struct {
	MessageID string `json:"message_id" binding:"required,min=1"`
	Text      string `json:"text" binding:"required,min=1,max=10000"`
}

// HandleSync mirrors the Reddit inbox into the conversation log
func (h *Handler) HandleSync(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := h.getAccountID(c)
	if !ok {
		return
	}

	result, err := h.processor.Sync(context.WithoutCancel(ctx), accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleReply answers a private message
func (h *Handler) HandleReply(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := h.getAccountID(c)
	if !ok {
		return
	}

	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	msg, err := h.processor.Reply(context.WithoutCancel(ctx), accountID, req.MessageID, req.Text)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// HandleListConversations lists the account's conversations
func (h *Handler) HandleListConversations(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := h.getAccountID(c)
	if !ok {
		return
	}

	summaries, err := h.processor.ListConversations(ctx, accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": summaries})
}

// HandleListMessages lists the messages exchanged with one counterpart
func (h *Handler) HandleListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := h.getAccountID(c)
	if !ok {
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			apierrors.BadRequest(c, apierrors.CodeInvalidInput, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	messages, err := h.processor.ListMessages(ctx, accountID, c.Param("username"), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
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
	case errors.Is(err, processor.ErrEmptyReply):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Reply text is required")
	case errors.Is(err, processor.ErrInvalidID):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid message ID")
	case errors.Is(err, processor.ErrRateLimited):
		apierrors.TooManyRequests(c, "Reddit is rate limiting this account. Please try again shortly.")
	default:
		apierrors.InternalError(c, err)
	}
}
