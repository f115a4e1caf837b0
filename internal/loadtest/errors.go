package loadtest

import "errors"

// Sentinel kinds for load runs.
var (
	ErrNoWords        = errors.New("no words to generate submissions from")
	ErrUnhealthy      = errors.New("service is not healthy")
	ErrUnexpectedCode = errors.New("unexpected status code")
	ErrInconsistent   = errors.New("inconsistent score result")
	ErrFailures       = errors.New("load run had failures")
)
