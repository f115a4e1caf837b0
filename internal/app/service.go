// Package service provides the core business service that implements
// the dependencies required by the HTTP API, the MCP tools and the CLI.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/worddee/internal/adapters/remote"
	"github.com/okian/worddee/internal/domain/dispatch"
	"github.com/okian/worddee/internal/domain/model"
	"github.com/okian/worddee/internal/domain/scoring"
	"github.com/okian/worddee/internal/domain/words"
	"github.com/okian/worddee/pkg/logger"
	"github.com/okian/worddee/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultScorerTimeout  = 30 * time.Second
	defaultSummaryTimeout = 10 * time.Second
)

// Service implements the scoring, word-of-the-day and summary operations.
type Service struct {
	mu sync.RWMutex

	// Core components
	local      *scoring.HeuristicScorer
	client     *remote.Client
	dispatcher *dispatch.Dispatcher
	picker     *words.Picker

	// Configuration
	scorerWebhook  string
	summaryWebhook string
	scorerTimeout  time.Duration
	summaryTimeout time.Duration
	wordList       []model.Word

	// Counters
	remoteScored    atomic.Int64
	localScored     atomic.Int64
	fallbacks       atomic.Int64
	wordsServed     atomic.Int64
	summaryFailures atomic.Int64

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithScorerWebhook sets the remote evaluator endpoint.
func WithScorerWebhook(url string) Option {
	return func(s *Service) {
		s.scorerWebhook = strings.TrimSpace(url)
	}
}

// WithSummaryWebhook sets the dashboard summary endpoint.
func WithSummaryWebhook(url string) Option {
	return func(s *Service) {
		s.summaryWebhook = strings.TrimSpace(url)
	}
}

// WithScorerTimeout bounds one remote scoring attempt.
func WithScorerTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.scorerTimeout = d
		}
	}
}

// WithSummaryTimeout bounds one summary fetch.
func WithSummaryTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.summaryTimeout = d
		}
	}
}

// WithWords replaces the word-of-the-day list. An empty list keeps the defaults.
func WithWords(list []model.Word) Option {
	return func(s *Service) {
		if len(list) > 0 {
			s.wordList = append([]model.Word(nil), list...)
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		scorerTimeout:  defaultScorerTimeout,
		summaryTimeout: defaultSummaryTimeout,
		wordList:       words.Defaults(),
		logger:         nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting worddee service...")

	s.local = scoring.NewHeuristicScorer()
	s.client = remote.NewClient(
		remote.WithScorerURL(s.scorerWebhook),
		remote.WithSummaryURL(s.summaryWebhook),
		remote.WithScoreTimeout(s.scorerTimeout),
		remote.WithSummaryTimeout(s.summaryTimeout),
	)
	s.dispatcher = dispatch.New(s.client, s.local, dispatch.WithLogger(s.logger.Named("dispatch")))
	s.picker = words.NewPicker(s.wordList)

	if !s.client.Configured() {
		s.logger.Warn(ctx, "scorer webhook not set, every submission will use the local engine")
	}
	if !s.client.SummaryConfigured() {
		s.logger.Warn(ctx, "summary webhook not set, dashboard summary is unavailable")
	}
	metrics.SetWebhookConfigured("scorer", s.client.Configured())
	metrics.SetWebhookConfigured("summary", s.client.SummaryConfigured())

	s.started = true
	s.logger.Info(ctx, "worddee service started",
		logger.Any("scorerConfigured", s.client.Configured()),
		logger.Any("summaryConfigured", s.client.SummaryConfigured()),
		logger.Duration("scorerTimeout", s.scorerTimeout),
		logger.Duration("summaryTimeout", s.summaryTimeout),
		logger.Int("words", len(s.picker.Words())),
	)

	return nil
}

// Stop shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping worddee service...")
	s.started = false
	s.logger.Info(context.Background(), "worddee service stopped")
}

// Score evaluates a submission, preferring the remote evaluator and falling
// back to the local engine on any remote failure.
func (s *Service) Score(ctx context.Context, sub model.Submission) (model.ScoreResult, error) {
	d, err := s.components()
	if err != nil {
		return model.ScoreResult{}, err
	}
	if err := validate(sub); err != nil {
		return model.ScoreResult{}, err
	}

	out, err := d.dispatcher.Evaluate(ctx, sub)
	if err != nil {
		return model.ScoreResult{}, fmt.Errorf("score: %w", err)
	}

	if out.Source == model.SourceRemote {
		s.remoteScored.Add(1)
	} else {
		s.localScored.Add(1)
		s.fallbacks.Add(1)
	}

	s.logger.Debug(ctx, "submission scored",
		logger.String("word", sub.Word),
		logger.String("source", string(out.Source)),
		logger.Float64("score", out.Result.Score),
		logger.String("level", string(out.Result.Level)),
	)
	return out.Result, nil
}

// ScoreLocal evaluates a submission with the local engine only.
func (s *Service) ScoreLocal(ctx context.Context, sub model.Submission) (model.ScoreResult, error) {
	d, err := s.components()
	if err != nil {
		return model.ScoreResult{}, err
	}
	if err := validate(sub); err != nil {
		return model.ScoreResult{}, err
	}

	start := time.Now()
	res, err := d.local.Score(ctx, sub)
	metrics.RecordLocalLatency(float64(time.Since(start).Microseconds()) / 1000)
	if err != nil {
		metrics.RecordLocalEvaluationError()
		return model.ScoreResult{}, fmt.Errorf("score local: %w", err)
	}

	s.localScored.Add(1)
	metrics.RecordSubmissionScored(string(model.SourceLocal), string(res.Level), res.Score)
	s.logger.Info(ctx, "local scorer",
		logger.String("word", sub.Word),
		logger.Float64("score", res.Score),
		logger.String("level", string(res.Level)),
	)
	return res, nil
}

// Word returns a random word of the day.
func (s *Service) Word(_ context.Context) (model.Word, error) {
	d, err := s.components()
	if err != nil {
		return model.Word{}, err
	}

	w, err := d.picker.Pick()
	if err != nil {
		return model.Word{}, fmt.Errorf("word: %w", err)
	}
	s.wordsServed.Add(1)
	metrics.RecordWordServed()
	return w, nil
}

// Summary fetches the dashboard summary from the remote webhook. Any
// failure, including a missing webhook, is reported as ErrSummaryUnavailable.
func (s *Service) Summary(ctx context.Context) (json.RawMessage, error) {
	d, err := s.components()
	if err != nil {
		return nil, err
	}

	raw, err := d.client.Summary(ctx)
	if err != nil {
		kind := remote.FailureKind(err)
		s.summaryFailures.Add(1)
		metrics.RecordSummaryRequest(kind)
		s.logger.Warn(ctx, "could not fetch dashboard summary",
			logger.String("reason", kind),
			logger.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrSummaryUnavailable, err)
	}

	metrics.RecordSummaryRequest("ok")
	return raw, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":           s.started,
		"scorerConfigured":  s.scorerWebhook != "",
		"summaryConfigured": s.summaryWebhook != "",
		"scorerTimeoutMs":   s.scorerTimeout.Milliseconds(),
		"summaryTimeoutMs":  s.summaryTimeout.Milliseconds(),
		"remoteScored":      s.remoteScored.Load(),
		"localScored":       s.localScored.Load(),
		"fallbacks":         s.fallbacks.Load(),
		"wordsServed":       s.wordsServed.Load(),
		"summaryFailures":   s.summaryFailures.Load(),
	}

	if s.started {
		stats["words"] = len(s.picker.Words())
		stats["rules"] = s.local.Rules()
	}

	return stats
}

// components is a snapshot of the started components.
type components struct {
	local      *scoring.HeuristicScorer
	client     *remote.Client
	dispatcher *dispatch.Dispatcher
	picker     *words.Picker
}

func (s *Service) components() (components, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return components{}, ErrNotStarted
	}
	return components{
		local:      s.local,
		client:     s.client,
		dispatcher: s.dispatcher,
		picker:     s.picker,
	}, nil
}

func validate(sub model.Submission) error {
	if strings.TrimSpace(sub.Word) == "" {
		return fmt.Errorf("%w: word must not be empty", ErrInvalidSubmission)
	}
	if strings.TrimSpace(sub.Sentence) == "" {
		return fmt.Errorf("%w: sentence must not be empty", ErrInvalidSubmission)
	}
	return nil
}
