package reddit

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultRateLimitWait is used when a rate-limit message carries no parseable duration.
const DefaultRateLimitWait = 60 * time.Second

var breakPattern = regexp.MustCompile(`(?:Take a break for|try again in) (\d+) (minutes?|seconds?)`)

// RateLimitError is returned when Reddit refuses a call for pacing reasons.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	return "RATELIMIT: " + e.Message
}

// APIError is a non-rate-limit error reported in a json.errors envelope.
type APIError struct {
	Code    string
	Message string
	Field   string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// StatusError is an unexpected HTTP status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("reddit %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// RateLimitWait reports whether err is a rate-limit refusal and how long to wait before retrying.
// Plain errors qualify when their text carries the "Take a break for" phrase.
func RateLimitWait(err error) (time.Duration, bool) {
	if err == nil {
		return 0, false
	}

	msg := err.Error()
	var rlErr *RateLimitError
	if !errors.As(err, &rlErr) && !strings.Contains(msg, "Take a break for") {
		return 0, false
	}
	return ParseBreakDuration(msg), true
}

// ParseBreakDuration extracts "N minutes" or "N seconds" from a rate-limit message.
func ParseBreakDuration(msg string) time.Duration {
	m := breakPattern.FindStringSubmatch(msg)
	if m == nil {
		return DefaultRateLimitWait
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultRateLimitWait
	}
	if strings.HasPrefix(m[2], "minute") {
		return time.Duration(n) * time.Minute
	}
	return time.Duration(n) * time.Second
}

// envelopeError converts the json.errors triples of a POST response into an error.
func envelopeError(errs [][]string) error {
	if len(errs) == 0 {
		return nil
	}
	first := errs[0]
	var code, message, field string
	if len(first) > 0 {
		code = first[0]
	}
	if len(first) > 1 {
		message = first[1]
	}
	if len(first) > 2 {
		field = first[2]
	}
	if code == "RATELIMIT" {
		return &RateLimitError{Message: message}
	}
	return &APIError{Code: code, Message: message, Field: field}
}
