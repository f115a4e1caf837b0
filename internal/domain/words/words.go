// Package words serves the word of the day.
package words

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/okian/worddee/internal/domain/model"
)

// ErrNoWords is returned when the picker has nothing to choose from.
var ErrNoWords = errors.New("no words configured")

// Defaults returns the built-in word list.
func Defaults() []model.Word {
	return []model.Word{
		{Word: "Serendipity", Definition: "The occurrence of events by chance in a happy or beneficial way"},
		{Word: "Ephemeral", Definition: "Lasting for a very short time; transient"},
		{Word: "Eloquent", Definition: "Fluent or persuasive in speaking or writing"},
		{Word: "Pragmatic", Definition: "Dealing with things in a realistic and practical way"},
		{Word: "Melancholy", Definition: "A feeling of pensive sadness, typically with no obvious cause"},
		{Word: "Innovation", Definition: "A new method, idea, product, etc."},
		{Word: "Resilience", Definition: "The ability to recover quickly from difficulties"},
	}
}

// Option applies a configuration option to the Picker.
type Option func(*Picker)

// WithIndexFunc replaces the random index source. fn receives the list
// length and must return a value in [0, n).
func WithIndexFunc(fn func(n int) int) Option {
	return func(p *Picker) {
		if fn != nil {
			p.index = fn
		}
	}
}

// Picker returns a random entry from a fixed list. It is safe for
// concurrent use.
type Picker struct {
	words []model.Word
	index func(n int) int
}

// NewPicker creates a Picker over a copy of list. Entries with a blank word
// are dropped.
func NewPicker(list []model.Word, opts ...Option) *Picker {
	p := &Picker{index: rand.IntN} //nolint:gosec // word rotation needs no cryptographic randomness
	for _, w := range list {
		if strings.TrimSpace(w.Word) == "" {
			continue
		}
		p.words = append(p.words, w)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Pick returns one word.
func (p *Picker) Pick() (model.Word, error) {
	if len(p.words) == 0 {
		return model.Word{}, ErrNoWords
	}
	return p.words[p.index(len(p.words))], nil
}

// Words returns a copy of the list.
func (p *Picker) Words() []model.Word {
	return append([]model.Word(nil), p.words...)
}
