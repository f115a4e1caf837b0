// Package dispatch decides which evaluator answers a submission: the remote
// webhook when it is configured and healthy, the local engine otherwise.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okian/worddee/internal/adapters/remote"
	"github.com/okian/worddee/internal/domain/model"
	"github.com/okian/worddee/pkg/logger"
	"github.com/okian/worddee/pkg/metrics"
)

// RemoteEvaluator is the primary evaluator. It returns remote.ErrNotConfigured
// when it has no endpoint.
type RemoteEvaluator interface {
	Score(ctx context.Context, sub model.Submission) (model.ScoreResult, error)
}

// LocalScorer is the fallback evaluator. It is expected to fail only on
// internal faults.
type LocalScorer interface {
	Score(ctx context.Context, sub model.Submission) (model.ScoreResult, error)
}

// Outcome is the result of one dispatch. FallbackReason is nil when the
// remote evaluator answered.
type Outcome struct {
	Result         model.ScoreResult
	Source         model.Source
	FallbackReason error
}

// Option applies a configuration option to the Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the dispatcher logger.
func WithLogger(l logger.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// Dispatcher routes each submission through at most one remote attempt and
// then, on any remote failure, the local engine. There are no retries.
type Dispatcher struct {
	remote RemoteEvaluator
	local  LocalScorer
	logger logger.Logger
}

// New creates a Dispatcher. A nil remote behaves as an unconfigured one.
func New(remoteEval RemoteEvaluator, local LocalScorer, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		remote: remoteEval,
		local:  local,
		logger: logger.Get().Named("dispatch"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Evaluate scores sub. It returns an error only when the local engine fails.
func (d *Dispatcher) Evaluate(ctx context.Context, sub model.Submission) (Outcome, error) {
	res, err := d.tryRemote(ctx, sub)
	if err == nil {
		metrics.RecordSubmissionScored(string(model.SourceRemote), string(res.Level), res.Score)
		return Outcome{Result: res, Source: model.SourceRemote}, nil
	}

	kind := remote.FailureKind(err)
	metrics.RecordFallback(kind)
	if kind == remote.KindNotConfigured {
		d.logger.Debug(ctx, "remote evaluator not configured, using local engine")
	} else {
		d.logger.Warn(ctx, "remote evaluator failed, using local engine",
			logger.String("reason", kind),
			logger.Error(err),
		)
	}

	start := time.Now()
	res, localErr := d.local.Score(ctx, sub)
	metrics.RecordLocalLatency(float64(time.Since(start).Microseconds()) / 1000)
	if localErr != nil {
		metrics.RecordLocalEvaluationError()
		metrics.RecordErrorByType("local_evaluation", "high")
		d.logger.Error(ctx, "local evaluation failed", logger.Error(localErr))
		return Outcome{}, fmt.Errorf("dispatch: %w", localErr)
	}

	metrics.RecordSubmissionScored(string(model.SourceLocal), string(res.Level), res.Score)
	return Outcome{Result: res, Source: model.SourceLocal, FallbackReason: err}, nil
}

func (d *Dispatcher) tryRemote(ctx context.Context, sub model.Submission) (model.ScoreResult, error) {
	if d.remote == nil {
		return model.ScoreResult{}, remote.ErrNotConfigured
	}

	start := time.Now()
	res, err := d.remote.Score(ctx, sub)
	if !errors.Is(err, remote.ErrNotConfigured) {
		metrics.RecordRemoteLatency(float64(time.Since(start).Milliseconds()))
	}
	return res, err
}
