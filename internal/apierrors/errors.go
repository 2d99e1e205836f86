package apierrors

import (
	"net/http"

	"redditleads/internal/observability"

	"github.com/gin-gonic/gin"
)

var logger = observability.NewLogger()

// Machine-readable codes returned alongside error messages.
const (
	CodeInvalidInput           = "INVALID_INPUT"
	CodeInvalidMode            = "INVALID_MODE"
	CodeCampaignNotRunning     = "CAMPAIGN_NOT_RUNNING"
	CodeNoCollectedSubreddits  = "NO_COLLECTED_SUBREDDITS"
	CodeSubredditNotInCampaign = "SUBREDDIT_NOT_IN_CAMPAIGN"
	CodeEmptyUpload            = "EMPTY_UPLOAD"
	CodeUpstreamUnavailable    = "UPSTREAM_UNAVAILABLE"
	CodeUpstreamRateLimited    = "UPSTREAM_RATE_LIMITED"
	CodeRateLimitExceeded      = "RATE_LIMIT_EXCEEDED"
)

// ErrorResponse is the JSON structure returned to API clients
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// respond writes the error response and logs correlation info
func respond(c *gin.Context, statusCode int, code, message string) {
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: statusCode},
		observability.Field{Key: "error_code", Value: code},
		observability.Field{Key: "error_message", Value: message},
	)
	logger.Info(ctx, "API error response")

	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	respond(c, http.StatusNotFound, "NOT_FOUND", message)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, code, message string) {
	respond(c, http.StatusBadRequest, code, message)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	respond(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, code, message string) {
	respond(c, http.StatusForbidden, code, message)
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, code, message string) {
	respond(c, http.StatusConflict, code, message)
}

// TooManyRequests sends a 429 response when Reddit refuses the call outright
func TooManyRequests(c *gin.Context, message string) {
	respond(c, http.StatusTooManyRequests, CodeUpstreamRateLimited, message)
}

// RateLimitExceeded sends a 429 response for callers over their own request quota
func RateLimitExceeded(c *gin.Context, message string) {
	respond(c, http.StatusTooManyRequests, CodeRateLimitExceeded, message)
}

// BadGateway sends a 502 response and logs the upstream error
func BadGateway(c *gin.Context, internalErr error) {
	logger.Error(c.Request.Context(), "upstream failure", internalErr)
	respond(c, http.StatusBadGateway, CodeUpstreamUnavailable, "Reddit is unavailable. Please try again later.")
}

// InternalError sends a sanitized 500 response - never exposes internal details
func InternalError(c *gin.Context, internalErr error) {
	logger.Error(c.Request.Context(), "internal error", internalErr)
	respond(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred. Please try again later.")
}
