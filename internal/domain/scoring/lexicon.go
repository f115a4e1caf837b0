package scoring

import "strings"

// Closed word sets used by the grammar rules.
var (
	defaultVerbs = []string{ //nolint:gochecknoglobals // fixed vocabulary
		"is", "are", "was", "were", "be",
		"have", "has", "had",
		"do", "does", "did",
		"can", "could", "will", "would", "should", "must", "may", "might",
	}
	defaultPrepositions = []string{ //nolint:gochecknoglobals // fixed vocabulary
		"in", "on", "at", "by", "with", "for", "to", "from", "of", "about", "through", "during",
	}
)

// Lexicon holds the verb and preposition sets the grammar rules match
// tokens against. It is immutable once built.
type Lexicon struct {
	verbs        map[string]struct{}
	prepositions map[string]struct{}
}

// NewLexicon builds a Lexicon. Entries are lower-cased and trimmed; blanks
// are dropped.
func NewLexicon(verbs, prepositions []string) Lexicon {
	return Lexicon{
		verbs:        toSet(verbs),
		prepositions: toSet(prepositions),
	}
}

// DefaultLexicon returns the auxiliary/copula verbs and common prepositions
// the engine ships with.
func DefaultLexicon() Lexicon {
	return NewLexicon(defaultVerbs, defaultPrepositions)
}

// IsVerb reports whether token (already lower-cased) is a known verb.
func (l Lexicon) IsVerb(token string) bool {
	_, ok := l.verbs[token]
	return ok
}

// IsPreposition reports whether token (already lower-cased) is a known preposition.
func (l Lexicon) IsPreposition(token string) bool {
	_, ok := l.prepositions[token]
	return ok
}

// Size returns the number of verbs and prepositions.
func (l Lexicon) Size() (verbs, prepositions int) {
	return len(l.verbs), len(l.prepositions)
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}
