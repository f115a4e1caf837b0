package loadtest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/worddee/internal/domain/model"
	"github.com/okian/worddee/pkg/logger"
)

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeInconsistent
	outcomeFailed
)

// submitAll posts submissions to /api/score using a pool of workers.
func submitAll(ctx context.Context, cfg Config, subs []model.Submission, stats *Stats) {
	log := logger.Get().Named("loadtest")
	log.Info(ctx, "submitting", logger.Int("submissions", len(subs)), logger.Int("workers", cfg.Workers))

	client := newHTTPClient(cfg.Timeout)
	url := cfg.BaseURL + "/api/score"

	var submitted, successful, inconsistent, failed atomic.Int64
	var lastReport atomic.Int64
	lastReport.Store(time.Now().UnixNano())

	jobs := make(chan model.Submission, cfg.Workers*workerChannelMultiplier)
	var wg sync.WaitGroup

	for range cfg.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sub := range jobs {
				if ctx.Err() != nil {
					return
				}
				res, id, err := submitOne(ctx, client, url, sub)
				submitted.Add(1)
				switch classify(err) {
				case outcomeSuccess:
					successful.Add(1)
					stats.countLevel(res.Level)
				case outcomeInconsistent:
					inconsistent.Add(1)
					stats.countLevel(res.Level)
				default:
					failed.Add(1)
				}
				if err != nil && cfg.Verbose {
					log.Warn(ctx, "submission rejected",
						logger.String("requestID", id),
						logger.String("word", sub.Word),
						logger.Error(err))
				}

				last := lastReport.Load()
				now := time.Now().UnixNano()
				if time.Duration(now-last) >= progressInterval && lastReport.CompareAndSwap(last, now) {
					log.Info(ctx, "progress",
						logger.Int("submitted", int(submitted.Load())),
						logger.Int("total", len(subs)),
						logger.Int("failed", int(failed.Load())))
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, sub := range subs {
			select {
			case <-ctx.Done():
				return
			case jobs <- sub:
			}
		}
	}()

	wg.Wait()

	stats.Submitted = int(submitted.Load())
	stats.Successful = int(successful.Load())
	stats.Inconsistent = int(inconsistent.Load())
	stats.Failed = int(failed.Load())
}

// submitOne posts a single submission and verifies the response.
func submitOne(ctx context.Context, client *httpClient, url string, sub model.Submission) (model.ScoreResult, string, error) {
	var res model.ScoreResult

	resp, id, err := client.postJSON(ctx, url, sub)
	if err != nil {
		return res, id, err
	}
	body, err := readBody(resp)
	if err != nil {
		return res, id, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return res, id, fmt.Errorf("%w: %d", ErrUnexpectedCode, resp.StatusCode)
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return res, id, fmt.Errorf("decode response: %w", err)
	}
	return res, id, verifyResult(res)
}

func classify(err error) outcome {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, ErrInconsistent):
		return outcomeInconsistent
	default:
		return outcomeFailed
	}
}
