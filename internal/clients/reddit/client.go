package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"redditleads/internal/observability"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL  = "https://oauth.reddit.com"
	DefaultTokenURL = "https://www.reddit.com/api/v1/access_token"
)

// Config holds the script-app credentials and pacing for the API client
type Config struct {
	ClientID          string
	ClientSecret      string
	Username          string
	Password          string
	UserAgent         string
	RequestsPerMinute int
	BaseURL           string
	TokenURL          string
	Timeout           time.Duration
}

// Client talks to the Reddit API as a single configured account
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	limiter    *rate.Limiter
	logger     *observability.Logger
}

// New builds a client that authenticates with the password grant and refreshes its token on expiry
func New(cfg Config, logger *observability.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 60
	}

	base := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: &userAgentTransport{base: http.DefaultTransport, userAgent: cfg.UserAgent},
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

	source := &passwordTokenSource{
		ctx: ctx,
		cfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		username: cfg.Username,
		password: cfg.Password,
	}

	httpClient := oauth2.NewClient(ctx, oauth2.ReuseTokenSource(nil, source))
	httpClient.Timeout = cfg.Timeout

	interval := time.Minute / time.Duration(cfg.RequestsPerMinute)
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		username:   cfg.Username,
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
		logger:     logger,
	}
}

// Username is the account every call acts as
func (c *Client) Username() string {
	return c.username
}

type passwordTokenSource struct {
	ctx      context.Context
	cfg      *oauth2.Config
	username string
	password string
}

func (s *passwordTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.cfg.PasswordCredentialsToken(s.ctx, s.username, s.password)
	if err != nil {
		return nil, fmt.Errorf("reddit password grant: %w", err)
	}
	return token, nil
}

type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(req)
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, params, out)
}

func (c *Client) post(ctx context.Context, path string, form url.Values, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, form, out)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("raw_json", "1")

	endpoint := c.baseURL + path
	var body io.Reader
	if method == http.MethodGet {
		endpoint += "?" + params.Encode()
	} else {
		body = strings.NewReader(params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("reddit %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reddit %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(observability.WithFields(ctx,
		observability.Field{Key: "reddit_method", Value: method},
		observability.Field{Key: "reddit_path", Value: path},
		observability.Field{Key: "reddit_status", Value: resp.StatusCode},
		observability.Field{Key: "reddit_latency_ms", Value: time.Since(start).Milliseconds()},
	), "reddit request")

	if resp.StatusCode == http.StatusTooManyRequests {
		return rateLimitFromHeaders(resp.Header)
	}
	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("reddit %s %s: decode response: %w", method, path, err)
	}
	return nil
}

func rateLimitFromHeaders(h http.Header) error {
	seconds := 60
	if reset, err := strconv.ParseFloat(h.Get("X-Ratelimit-Reset"), 64); err == nil && reset > 0 {
		seconds = int(reset)
	}
	return &RateLimitError{Message: fmt.Sprintf("Take a break for %d seconds before trying again.", seconds)}
}
