package loadtest

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/worddee/internal/domain/model"
	"github.com/okian/worddee/pkg/logger"
)

// templates produce sentences of varying quality. %s is the target word.
// The mix covers every level band and the missing-word path.
var templates = []string{ //nolint:gochecknoglobals // fixed generator table
	"The team %s showed great skill in the final round of the competition.",
	"She is known for her %s and works with people from every department.",
	"We made a %s decision to move the meeting to the end of the month.",
	"%s is important",
	"my friend has %s",
	"The committee discussed the proposal for over an hour before voting on it",
	"yes",
	"He said that the plan was simple and that everyone should follow it.",
}

// generateSubmissions builds n submissions by walking the word list and the
// template table in lockstep, so the same config always yields the same run.
func generateSubmissions(ctx context.Context, n int, list []model.Word, stats *Stats) ([]model.Submission, error) {
	if len(list) == 0 {
		return nil, ErrNoWords
	}
	logger.Get().Info(ctx, "generating submissions", logger.Int("count", n))

	subs := make([]model.Submission, n)
	for i := range n {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("context cancelled during generation: %w", err)
		}
		w := list[i%len(list)]
		tmpl := templates[i%len(templates)]
		sentence := tmpl
		if strings.Contains(tmpl, "%s") {
			sentence = fmt.Sprintf(tmpl, w.Word)
		}
		subs[i] = model.Submission{Word: w.Word, Sentence: sentence}
	}

	stats.Generated = len(subs)
	return subs, nil
}
