package questionbank

import (
	"math/rand/v2"
)

// Bank is an immutable, ordered set of questions.
type Bank struct {
	questions []Question
	version   string
}

// New validates the questions and returns a Bank holding a private copy.
func New(questions []Question) (*Bank, error) {
	if err := Validate(questions); err != nil {
		return nil, err
	}
	return newBank(questions, ""), nil
}

func newBank(questions []Question, version string) *Bank {
	b := &Bank{
		questions: make([]Question, len(questions)),
		version:   version,
	}
	for i, q := range questions {
		b.questions[i] = q.clone()
	}
	return b
}

// All returns every question in insertion order.
// The result is a copy; modifying it does not affect the bank.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = q.clone()
	}
	return out
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Version returns the bank file version, or "" for banks built with New.
func (b *Bank) Version() string {
	return b.version
}

// SelectRandomSubset returns count distinct questions in random order.
//
// When count is at least the bank size, every question is returned exactly
// once in a fresh random permutation. A non-positive count yields an empty
// slice.
func (b *Bank) SelectRandomSubset(count int, rng *rand.Rand) []Question {
	if count <= 0 || len(b.questions) == 0 {
		return []Question{}
	}
	if count > len(b.questions) {
		count = len(b.questions)
	}
	rng = orDefault(rng)

	perm := rng.Perm(len(b.questions))
	out := make([]Question, count)
	for i := range out {
		out[i] = b.questions[perm[i]].clone()
	}
	return out
}
