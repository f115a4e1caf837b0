package scoring

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/okian/worddee/internal/domain/model"
)

// Rule names, in declaration order.
const (
	RuleLength         = "length"
	RuleVocabulary     = "vocabulary"
	RuleCapitalization = "capitalization"
	RulePunctuation    = "punctuation"
	RuleVerb           = "verb"
	RulePreposition    = "preposition"
)

// Point awards.
const (
	minTokens         = 6
	goodTokens        = 10
	pointsShort       = 0
	pointsMedium      = 10
	pointsLong        = 15
	pointsVocabulary  = 20
	pointsCapital     = 5
	pointsPunctuation = 5
	pointsVerb        = 15
	pointsPreposition = 10
)

// Verdict classifies a finding.
type Verdict string

// Verdicts. VerdictNone marks a finding that contributes no note.
const (
	VerdictPass Verdict = "pass"
	VerdictFail Verdict = "fail"
	VerdictWarn Verdict = "warn"
	VerdictNone Verdict = "none"
)

// Finding is one rule's contribution for a submission.
type Finding struct {
	Rule    string
	Points  int
	Verdict Verdict
	Note    string
}

// Rule inspects a submission against a single criterion. Implementations
// must be pure and must not panic on any string input.
type Rule interface {
	Name() string
	Evaluate(sub model.Submission) Finding
}

// DefaultRules returns the six rules in declaration order.
func DefaultRules(lex Lexicon) []Rule {
	return []Rule{
		LengthRule{},
		VocabularyRule{},
		CapitalizationRule{},
		PunctuationRule{},
		VerbRule{Lexicon: lex},
		PrepositionRule{Lexicon: lex},
	}
}

// LengthRule rewards sentences of at least six whitespace-delimited tokens.
type LengthRule struct{}

// Name implements Rule.
func (LengthRule) Name() string { return RuleLength }

// Evaluate implements Rule.
func (LengthRule) Evaluate(sub model.Submission) Finding {
	n := len(strings.Fields(sub.Sentence))
	switch {
	case n < minTokens:
		return Finding{Rule: RuleLength, Points: pointsShort, Verdict: VerdictFail,
			Note: "❌ Sentence is too short - use at least 6 words."}
	case n < goodTokens:
		return Finding{Rule: RuleLength, Points: pointsMedium, Verdict: VerdictPass,
			Note: "✓ Sentence length is okay."}
	default:
		return Finding{Rule: RuleLength, Points: pointsLong, Verdict: VerdictPass,
			Note: "✓ Sentence has a good length."}
	}
}

// VocabularyRule checks that the target word appears in the sentence,
// case-insensitively and as a substring. A blank word never counts as used.
type VocabularyRule struct{}

// Name implements Rule.
func (VocabularyRule) Name() string { return RuleVocabulary }

// Evaluate implements Rule.
func (VocabularyRule) Evaluate(sub model.Submission) Finding {
	word := strings.ToLower(sub.Word)
	if word != "" && strings.Contains(strings.ToLower(sub.Sentence), word) {
		return Finding{Rule: RuleVocabulary, Points: pointsVocabulary, Verdict: VerdictPass,
			Note: fmt.Sprintf("✓ Used the word '%s' correctly.", word)}
	}
	return Finding{Rule: RuleVocabulary, Verdict: VerdictFail,
		Note: fmt.Sprintf("❌ The word '%s' does not appear in the sentence.", word)}
}

// CapitalizationRule checks the first character is upper-case.
type CapitalizationRule struct{}

// Name implements Rule.
func (CapitalizationRule) Name() string { return RuleCapitalization }

// Evaluate implements Rule.
func (CapitalizationRule) Evaluate(sub model.Submission) Finding {
	first, _ := utf8.DecodeRuneInString(sub.Sentence)
	if sub.Sentence != "" && unicode.IsUpper(first) {
		return Finding{Rule: RuleCapitalization, Points: pointsCapital, Verdict: VerdictPass,
			Note: "✓ Starts with a capital letter."}
	}
	return Finding{Rule: RuleCapitalization, Verdict: VerdictFail,
		Note: "❌ Start the sentence with a capital letter."}
}

// PunctuationRule checks the sentence ends with '.', '!' or '?'.
type PunctuationRule struct{}

// Name implements Rule.
func (PunctuationRule) Name() string { return RulePunctuation }

// Evaluate implements Rule.
func (PunctuationRule) Evaluate(sub model.Submission) Finding {
	if strings.HasSuffix(sub.Sentence, ".") || strings.HasSuffix(sub.Sentence, "!") || strings.HasSuffix(sub.Sentence, "?") {
		return Finding{Rule: RulePunctuation, Points: pointsPunctuation, Verdict: VerdictPass,
			Note: "✓ Ends with proper punctuation."}
	}
	return Finding{Rule: RulePunctuation, Verdict: VerdictFail,
		Note: "❌ End the sentence with a period, exclamation mark, or question mark."}
}

// VerbRule looks for an auxiliary or copula verb among the lower-cased
// tokens. Tokens keep attached punctuation, so "is," does not match.
type VerbRule struct {
	Lexicon Lexicon
}

// Name implements Rule.
func (VerbRule) Name() string { return RuleVerb }

// Evaluate implements Rule.
func (r VerbRule) Evaluate(sub model.Submission) Finding {
	if anyToken(sub.Sentence, r.Lexicon.IsVerb) {
		return Finding{Rule: RuleVerb, Points: pointsVerb, Verdict: VerdictPass,
			Note: "✓ Uses a verb correctly."}
	}
	return Finding{Rule: RuleVerb, Verdict: VerdictWarn,
		Note: "⚠️ No verb found in the sentence - check the grammar."}
}

// PrepositionRule awards a bonus for a preposition token. Absence is silent.
type PrepositionRule struct {
	Lexicon Lexicon
}

// Name implements Rule.
func (PrepositionRule) Name() string { return RulePreposition }

// Evaluate implements Rule.
func (r PrepositionRule) Evaluate(sub model.Submission) Finding {
	if anyToken(sub.Sentence, r.Lexicon.IsPreposition) {
		return Finding{Rule: RulePreposition, Points: pointsPreposition, Verdict: VerdictPass,
			Note: "✓ Uses a preposition."}
	}
	return Finding{Rule: RulePreposition, Verdict: VerdictNone}
}

func anyToken(sentence string, match func(string) bool) bool {
	for _, tok := range strings.Fields(strings.ToLower(sentence)) {
		if match(tok) {
			return true
		}
	}
	return false
}
