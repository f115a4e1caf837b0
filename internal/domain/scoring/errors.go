package scoring

import "errors"

// Sentinel error kinds for this package.
var (
	// ErrEvaluationFailed reports that the local engine could not produce a
	// result. It is the only scoring failure callers ever see.
	ErrEvaluationFailed = errors.New("local evaluation failed")
)
