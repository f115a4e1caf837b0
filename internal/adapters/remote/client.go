// Package remote is the client for the external evaluator webhooks: the
// AI-backed scorer and the dashboard summary.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okian/worddee/internal/domain/model"
)

// Default client configuration.
const (
	defaultScoreTimeout   = 30 * time.Second
	defaultSummaryTimeout = 10 * time.Second
	defaultMaxBodyBytes   = 1 << 20
)

// Client calls the remote webhooks. A zero-value URL means the matching
// call returns ErrNotConfigured without touching the network.
type Client struct {
	scorerURL      string
	summaryURL     string
	scoreTimeout   time.Duration
	summaryTimeout time.Duration
	maxBodyBytes   int64
	httpClient     *http.Client
}

// NewClient creates a Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		scoreTimeout:   defaultScoreTimeout,
		summaryTimeout: defaultSummaryTimeout,
		maxBodyBytes:   defaultMaxBodyBytes,
		httpClient:     &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether the scoring webhook is set.
func (c *Client) Configured() bool { return c.scorerURL != "" }

// SummaryConfigured reports whether the summary webhook is set.
func (c *Client) SummaryConfigured() bool { return c.summaryURL != "" }

// Score posts sub to the scoring webhook and returns its validated result.
func (c *Client) Score(ctx context.Context, sub model.Submission) (model.ScoreResult, error) {
	const op = "remote.Score"
	if !c.Configured() {
		return model.ScoreResult{}, ErrNotConfigured
	}

	payload, err := json.Marshal(sub)
	if err != nil {
		return model.ScoreResult{}, fmt.Errorf("%s: encode submission: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.scoreTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.scorerURL, bytes.NewReader(payload))
	if err != nil {
		return model.ScoreResult{}, &UnavailableError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	body, err := c.do(op, req)
	if err != nil {
		return model.ScoreResult{}, err
	}

	if err := validateScoreResult(op, body); err != nil {
		return model.ScoreResult{}, err
	}

	var res model.ScoreResult
	if err := json.Unmarshal(body, &res); err != nil {
		return model.ScoreResult{}, &InvalidPayloadError{Op: op, Content: body, Err: err}
	}
	return res, nil
}

// Summary fetches the dashboard summary. The body is returned verbatim once
// it is known to be valid JSON.
func (c *Client) Summary(ctx context.Context) (json.RawMessage, error) {
	const op = "remote.Summary"
	if !c.SummaryConfigured() {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.summaryTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.summaryURL, nil)
	if err != nil {
		return nil, &UnavailableError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(op, req)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, &InvalidPayloadError{Op: op, Content: body, Err: fmt.Errorf("body is not valid JSON")}
	}
	return json.RawMessage(body), nil
}

// do sends req and returns the body of a 2xx response.
func (c *Client) do(op string, req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxBodyBytes))
		return nil, &StatusError{Op: op, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes))
	if err != nil {
		return nil, &UnavailableError{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}
	return body, nil
}
