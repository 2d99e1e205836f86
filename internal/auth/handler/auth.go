package handler

import (
	"errors"
	"net/http"
	"strings"

	"redditleads/internal/apierrors"
	"redditleads/internal/auth/processor"
	"redditleads/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

// HandleJWTMiddleware authenticates the bearer token and exposes its account as Account-ID
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.Unauthorized(c, err.Error())
		c.Abort()
		return
	}
	accountID, err := claims.AccountID()
	if err != nil {
		apierrors.Unauthorized(c, err.Error())
		c.Abort()
		return
	}

	c.Set("Account-ID", accountID.String())
	c.Next()
}

// HandleGetAccount returns the authenticated account with its subscription state
func (h *Handler) HandleGetAccount(c *gin.Context) {
	ctx := c.Request.Context()

	accountIDStr, ok := c.Get("Account-ID")
	if !ok {
		apierrors.Unauthorized(c, "Account ID not found in context")
		return
	}
	accountID, err := uuid.Parse(accountIDStr.(string))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid account ID format")
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "account_id", Value: accountID.String()})
	account, err := h.authProcessor.GetAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, processor.ErrAccountNotFound) {
			apierrors.NotFound(c, "Account not found")
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}
