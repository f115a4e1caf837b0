package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/okian/worddee/internal/domain/model"
)

// Aggregation constants.
const (
	baseScore         = 50.0
	minScore          = 0.0
	maxScore          = 100.0
	advancedThreshold = 85.0
	intermediateFloor = 70.0
)

// Level opening phrases, prepended to the rule notes.
const (
	openingAdvanced     = "Excellent work! Your sentence demonstrates strong command of English."
	openingIntermediate = "Good job! You're on the right track."
	openingBeginner     = "Keep practicing! Review the feedback below to improve."
)

const correctedTemplate = "I believe the %s aspect of this is very important. %s"

// LevelFor maps a clamped score to its level. Lower bounds are inclusive.
func LevelFor(score float64) model.Level {
	switch {
	case score >= advancedThreshold:
		return model.LevelAdvanced
	case score >= intermediateFloor:
		return model.LevelIntermediate
	default:
		return model.LevelBeginner
	}
}

// Aggregate folds findings into a ScoreResult. Findings must be in rule
// declaration order; their notes appear in the suggestion in that order.
func Aggregate(sub model.Submission, findings []Finding) model.ScoreResult {
	raw := baseScore
	notes := make([]string, 0, len(findings))
	wordMissing := false
	for _, f := range findings {
		raw += float64(f.Points)
		if f.Note != "" {
			notes = append(notes, f.Note)
		}
		if f.Rule == RuleVocabulary && f.Verdict == VerdictFail {
			wordMissing = true
		}
	}

	score := round1(math.Max(minScore, math.Min(maxScore, raw)))
	level := LevelFor(score)

	corrected := sub.Sentence
	if wordMissing {
		corrected = strings.TrimSpace(fmt.Sprintf(correctedTemplate, strings.ToLower(sub.Word), sub.Sentence))
	}

	return model.ScoreResult{
		Score:             score,
		Level:             level,
		Suggestion:        suggestion(level, notes),
		CorrectedSentence: corrected,
	}
}

func suggestion(level model.Level, notes []string) string {
	opening := openingBeginner
	switch level {
	case model.LevelAdvanced:
		opening = openingAdvanced
	case model.LevelIntermediate:
		opening = openingIntermediate
	case model.LevelBeginner:
	}
	if len(notes) == 0 {
		return opening
	}
	return opening + " " + strings.Join(notes, " ")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
