package remote

import (
	"net/http"
	"strings"
	"time"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithScorerURL sets the scoring webhook. Empty leaves scoring unconfigured.
func WithScorerURL(url string) Option {
	return func(c *Client) {
		c.scorerURL = strings.TrimSpace(url)
	}
}

// WithSummaryURL sets the dashboard summary webhook.
func WithSummaryURL(url string) Option {
	return func(c *Client) {
		c.summaryURL = strings.TrimSpace(url)
	}
}

// WithScoreTimeout bounds a single scoring call.
func WithScoreTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.scoreTimeout = d
		}
	}
}

// WithSummaryTimeout bounds a single summary call.
func WithSummaryTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.summaryTimeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithMaxBodyBytes caps how much of a response body is read.
func WithMaxBodyBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}
