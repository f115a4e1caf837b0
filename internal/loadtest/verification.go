package loadtest

import (
	"fmt"

	"github.com/okian/worddee/internal/domain/model"
	"github.com/okian/worddee/internal/domain/scoring"
)

const (
	minScore = 0
	maxScore = 100
)

// verifyResult checks that a returned result is internally consistent: the
// score is in range and the level is the one the score maps to.
func verifyResult(res model.ScoreResult) error {
	if res.Score < minScore || res.Score > maxScore {
		return fmt.Errorf("%w: score %.1f out of range", ErrInconsistent, res.Score)
	}
	if !res.Level.Valid() {
		return fmt.Errorf("%w: unknown level %q", ErrInconsistent, res.Level)
	}
	if want := scoring.LevelFor(res.Score); res.Level != want {
		return fmt.Errorf("%w: score %.1f has level %q, want %q", ErrInconsistent, res.Score, res.Level, want)
	}
	return nil
}
