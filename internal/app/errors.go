package service

import "errors"

// Sentinel error kinds returned by the Service.
var (
	// ErrNotStarted is returned when an operation runs before Start.
	ErrNotStarted = errors.New("service not started")
	// ErrInvalidSubmission reports a blank word or sentence.
	ErrInvalidSubmission = errors.New("invalid submission")
	// ErrSummaryUnavailable reports that the dashboard summary could not be fetched.
	ErrSummaryUnavailable = errors.New("summary unavailable")
)
