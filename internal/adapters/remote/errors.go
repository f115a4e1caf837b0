package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotConfigured indicates the webhook endpoint is empty. Callers treat it
// as an expected condition, not a failure.
var ErrNotConfigured = errors.New("remote endpoint not configured")

// Failure kinds, used as log and metric labels.
const (
	KindNotConfigured  = "not_configured"
	KindTimeout        = "timeout"
	KindUnavailable    = "unavailable"
	KindStatus         = "status"
	KindInvalidPayload = "invalid_payload"
	KindOther          = "other"
)

// UnavailableError indicates the endpoint could not be reached or did not
// answer within the timeout.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: remote unavailable: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Timeout reports whether the call hit its deadline.
func (e *UnavailableError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}

// StatusError indicates the endpoint answered with a non-2xx status.
type StatusError struct {
	Op   string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: remote returned status %d", e.Op, e.Code)
}

// InvalidPayloadError indicates a 2xx response whose body is not valid JSON
// or does not conform to the expected shape.
type InvalidPayloadError struct {
	Op      string
	Content json.RawMessage
	Err     error
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("%s: invalid remote payload: %v", e.Op, e.Err)
}

func (e *InvalidPayloadError) Unwrap() error { return e.Err }

// FailureKind classifies err into one of the Kind* labels.
func FailureKind(err error) string {
	var (
		unavailable *UnavailableError
		status      *StatusError
		payload     *InvalidPayloadError
	)
	switch {
	case errors.Is(err, ErrNotConfigured):
		return KindNotConfigured
	case errors.As(err, &unavailable):
		if unavailable.Timeout() {
			return KindTimeout
		}
		return KindUnavailable
	case errors.As(err, &status):
		return KindStatus
	case errors.As(err, &payload):
		return KindInvalidPayload
	default:
		return KindOther
	}
}
