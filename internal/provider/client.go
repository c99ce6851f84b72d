package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Shahrukh0396/GFlights/internal/ratelimit"
)

// DefaultTimeout bounds every upstream call when the config does not
// override it.
const DefaultTimeout = 10 * time.Second

// Rate limiter keys, one per upstream endpoint family.
const (
	EndpointFlightsSearch = "flights_search"
	EndpointAirports      = "airports"
)

// Config carries everything the client needs to reach the flight
// provider.
type Config struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
	Limiter      *ratelimit.EndpointLimiter
}

// Client talks to the flight provider over HTTP. It owns token
// acquisition and per-endpoint rate limiting; callers only see the API
// interface.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *tokenSource
	limiter    *ratelimit.EndpointLimiter
}

var _ API = (*Client)(nil)

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = baseURL + "/oauth/token"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := &http.Client{Timeout: timeout}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		tokens:     newTokenSource(tokenURL, cfg.ClientID, cfg.ClientSecret, httpClient),
		limiter:    cfg.Limiter,
	}
}

// doJSON performs one authenticated JSON request against the provider
// and returns the raw response body. Non-2xx statuses come back as
// typed errors.
func (c *Client) doJSON(ctx context.Context, endpoint, method, path string, query url.Values, payload any) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, endpoint); err != nil {
			return nil, &SearchError{Message: "rate limit wait: " + err.Error(), Err: err}
		}
	}

	token, err := c.tokens.Token()
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, &SearchError{Message: "encode request: " + err.Error(), Err: err}
		}
		body = bytes.NewReader(encoded)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, &SearchError{Message: "build request: " + err.Error(), Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &SearchError{Message: "provider request: " + err.Error(), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SearchError{StatusCode: resp.StatusCode, Message: "read response: " + err.Error(), Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &AuthError{Message: upstreamMessage(data, resp.StatusCode)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &SearchError{StatusCode: resp.StatusCode, Message: upstreamMessage(data, resp.StatusCode)}
	}

	return data, nil
}
