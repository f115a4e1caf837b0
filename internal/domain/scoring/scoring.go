// Package scoring implements the local sentence quality engine: a fixed set
// of heuristic rules and the aggregator that folds their findings into a
// ScoreResult.
package scoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/worddee/internal/domain/model"
)

// Scorer evaluates a submission.
type Scorer interface {
	// Score evaluates sub, honoring ctx where the implementation blocks.
	Score(ctx context.Context, sub model.Submission) (model.ScoreResult, error)
}

// Option applies a configuration option to the HeuristicScorer.
type Option func(*HeuristicScorer)

// WithLexicon replaces the verb and preposition sets used by the default rules.
// It has no effect when WithRules is also given.
func WithLexicon(lex Lexicon) Option {
	return func(s *HeuristicScorer) {
		s.lexicon = lex
	}
}

// WithRules replaces the rule set. Rules run in the given order.
func WithRules(rules ...Rule) Option {
	return func(s *HeuristicScorer) {
		if len(rules) > 0 {
			s.rules = append([]Rule(nil), rules...)
		}
	}
}

// HeuristicScorer implements Scorer with the local rule set. It holds no
// mutable state and is safe for concurrent use.
type HeuristicScorer struct {
	lexicon Lexicon
	rules   []Rule
}

// NewHeuristicScorer creates a scorer with the default rules and lexicon
// unless overridden by options.
func NewHeuristicScorer(opts ...Option) *HeuristicScorer {
	s := &HeuristicScorer{
		lexicon: DefaultLexicon(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if len(s.rules) == 0 {
		s.rules = DefaultRules(s.lexicon)
	}
	return s
}

// Score trims the sentence, lower-cases the word, runs every rule and
// aggregates the findings. A panicking rule is reported as
// ErrEvaluationFailed.
func (s *HeuristicScorer) Score(_ context.Context, sub model.Submission) (res model.ScoreResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = model.ScoreResult{}
			err = fmt.Errorf("%w: rule panicked: %v", ErrEvaluationFailed, r)
		}
	}()

	norm := Normalize(sub)
	return Aggregate(norm, s.Evaluate(norm)), nil
}

// Evaluate runs every rule against sub as given, without normalization.
func (s *HeuristicScorer) Evaluate(sub model.Submission) []Finding {
	findings := make([]Finding, 0, len(s.rules))
	for _, rule := range s.rules {
		findings = append(findings, rule.Evaluate(sub))
	}
	return findings
}

// Rules returns the names of the configured rules in evaluation order.
func (s *HeuristicScorer) Rules() []string {
	names := make([]string, len(s.rules))
	for i, r := range s.rules {
		names[i] = r.Name()
	}
	return names
}

// Normalize trims surrounding whitespace from both fields and lower-cases the word.
func Normalize(sub model.Submission) model.Submission {
	return model.Submission{
		Word:     strings.ToLower(strings.TrimSpace(sub.Word)),
		Sentence: strings.TrimSpace(sub.Sentence),
	}
}
