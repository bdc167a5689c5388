// Package fxtwitter fetches post payloads from the FxTwitter status API.
package fxtwitter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"x-to-markdown/internal/domain"
	"x-to-markdown/pkg/log"
)

// DefaultBaseURL is the public API endpoint.
const DefaultBaseURL = "https://api.fxtwitter.com"

// DefaultMaxConcurrent is the default number of in-flight requests.
const DefaultMaxConcurrent = 4

// Client fetches status payloads over HTTP.
type Client struct {
	http *resty.Client
	gate *Gate
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("User-Agent", userAgent).
			SetHeader("Accept", "application/json"),
		gate: NewGate(DefaultMaxConcurrent),
	}
}

// WithMaxConcurrent replaces the request gate with one allowing n
// in-flight requests and returns c.
func (c *Client) WithMaxConcurrent(n int) *Client {
	c.gate = NewGate(n)
	return c
}

// Fetch retrieves the payload for a post. API error statuses are mapped to
// domain errors; the returned payload always carries a tweet.
func (c *Client) Fetch(ctx context.Context, username, tweetID string) (*domain.Payload, error) {
	var resp *resty.Response
	err := c.gate.Do(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.http.R().
			SetContext(ctx).
			SetPathParams(map[string]string{
				"username": username,
				"id":       tweetID,
			}).
			Get("/{username}/status/{id}")
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}

	log.GlobalDebugCtx(ctx, "status api responded",
		"status", resp.StatusCode(),
		"latency_ms", resp.Time().Milliseconds(),
	)

	if err := statusError(resp.StatusCode()); err != nil {
		return nil, err
	}

	payload, err := domain.ParsePayload(resp.Body())
	if err != nil {
		return nil, err
	}
	if payload.Tweet == nil {
		// The API sometimes answers 200 with the real status in the body.
		if err := statusError(payload.Code); err != nil {
			return nil, err
		}
		return nil, domain.ErrNoTweetData
	}

	return payload, nil
}

// statusError maps an API status code to a domain error, or nil for
// success and for a zero code.
func statusError(code int) error {
	switch {
	case code == 0, code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return domain.ErrTweetNotFound
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return domain.ErrTweetPrivate
	case code == http.StatusTooManyRequests:
		return domain.ErrRateLimited
	default:
		return fmt.Errorf("%w: status %d", domain.ErrFetchFailed, code)
	}
}
