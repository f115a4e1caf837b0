package loadtest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/worddee/internal/domain/words"
	"github.com/okian/worddee/pkg/logger"
)

// Run executes a complete load run: health check, generation, concurrent
// submission and verification. The returned Stats are populated even when
// the run reports failures.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	cfg := config.withDefaults()
	if len(cfg.Words) == 0 {
		cfg.Words = words.Defaults()
	}
	stats := &Stats{StartTime: time.Now()}

	logger.Get().Info(ctx, "starting worddee load run",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("submissions", cfg.Submissions),
		logger.Int("workers", cfg.Workers),
		logger.Duration("timeout", cfg.Timeout),
		logger.Any("verbose", cfg.Verbose))

	if err := checkServiceHealth(ctx, cfg); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	subs, err := generateSubmissions(ctx, cfg.Submissions, cfg.Words, stats)
	if err != nil {
		return stats, fmt.Errorf("submission generation failed: %w", err)
	}

	if cfg.OutputFile != "" {
		if err := saveSubmissions(ctx, cfg.OutputFile, subs); err != nil {
			logger.Get().Warn(ctx, "failed to save submissions", logger.Error(err))
		}
	}

	submitAll(ctx, cfg, subs, stats)

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	logFinalStats(ctx, stats)

	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("load run interrupted: %w", err)
	}
	if stats.Failed > 0 || stats.Inconsistent > 0 {
		return stats, fmt.Errorf("%w: %d failed, %d inconsistent", ErrFailures, stats.Failed, stats.Inconsistent)
	}
	return stats, nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, cfg Config) error {
	client := newHTTPClient(cfg.Timeout)
	resp, err := client.get(ctx, cfg.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode)
	}
	return nil
}

// saveSubmissions writes the generated submissions as a JSON array.
func saveSubmissions(ctx context.Context, filename string, subs any) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(subs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal submissions: %w", err)
	}
	if err := os.WriteFile(filename, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	logger.Get().Info(ctx, "submissions saved to file", logger.String("filename", filename))
	return nil
}

func logFinalStats(ctx context.Context, stats *Stats) {
	fields := []logger.Field{
		logger.Int("generated", stats.Generated),
		logger.Int("submitted", stats.Submitted),
		logger.Int("successful", stats.Successful),
		logger.Int("inconsistent", stats.Inconsistent),
		logger.Int("failed", stats.Failed),
		logger.Duration("duration", stats.Duration),
		logger.Float64("successRate", stats.SuccessRate()),
		logger.Float64("submissionsPerSecond", stats.Throughput()),
	}
	for level, n := range stats.Levels {
		fields = append(fields, logger.Int("level."+string(level), n))
	}
	logger.Get().Info(ctx, "final statistics", fields...)
}
