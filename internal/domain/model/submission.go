// Package model contains domain models passed between layers.
package model

// Submission is a learner's attempt: a target word and a free-text sentence
// meant to use it. Fields mirror the OpenAPI schema for /api/score.
type Submission struct {
	Word     string `json:"word"`     // target vocabulary word
	Sentence string `json:"sentence"` // learner's sentence
}

// Level is the proficiency band derived from a score.
type Level string

// Proficiency levels.
const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Valid reports whether l is one of the three known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

// ScoreResult is the evaluation returned to clients, whichever evaluator
// produced it.
type ScoreResult struct {
	Score             float64 `json:"score"`              // 0..100, one decimal
	Level             Level   `json:"level"`              // derived from Score
	Suggestion        string  `json:"suggestion"`         // opening phrase plus rule notes
	CorrectedSentence string  `json:"corrected_sentence"` // sentence, or a template when the word is missing
}

// Word is a word-of-the-day entry.
type Word struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// Source identifies which evaluator produced a ScoreResult. It is internal
// and never part of the scoring response.
type Source string

// Evaluator sources.
const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)
