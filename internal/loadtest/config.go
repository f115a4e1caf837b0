// Package loadtest drives a running worddee service with generated
// submissions and checks every score it returns.
package loadtest

import (
	"sync"
	"time"

	"github.com/okian/worddee/internal/domain/model"
)

// Defaults used when a Config field is left at its zero value.
const (
	DefaultBaseURL     = "http://localhost:8000"
	DefaultSubmissions = 1000
	DefaultWorkers     = 8
	DefaultTimeout     = 30 * time.Second

	workerChannelMultiplier = 2
	percentageMultiplier    = 100
	progressInterval        = time.Second
	directoryPermission     = 0o750
)

// Config holds configuration for a load run.
type Config struct {
	BaseURL     string        // Base URL of the service
	Submissions int           // Number of submissions to generate
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	OutputFile  string        // Optional JSON dump of generated submissions
	Words       []model.Word  // Word list to draw from; defaults to the built-in list
	Verbose     bool          // Log every failed submission
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.BaseURL == "" {
		out.BaseURL = DefaultBaseURL
	}
	if out.Submissions <= 0 {
		out.Submissions = DefaultSubmissions
	}
	if out.Workers <= 0 {
		out.Workers = DefaultWorkers
	}
	if out.Timeout <= 0 {
		out.Timeout = DefaultTimeout
	}
	return out
}

// Stats holds run statistics.
type Stats struct {
	Generated    int
	Submitted    int
	Successful   int
	Inconsistent int
	Failed       int
	Levels       map[model.Level]int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration

	mu sync.Mutex
}

// SuccessRate is the share of submitted requests that returned a consistent
// result, as a percentage.
func (s *Stats) SuccessRate() float64 {
	if s.Submitted == 0 {
		return 0
	}
	return float64(s.Successful) / float64(s.Submitted) * percentageMultiplier
}

// Throughput is submissions per second over the whole run.
func (s *Stats) Throughput() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Submitted) / s.Duration.Seconds()
}

func (s *Stats) countLevel(level model.Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Levels == nil {
		s.Levels = make(map[model.Level]int)
	}
	s.Levels[level]++
}
