package questionbank

import (
	"math/rand/v2"
	"slices"
)

// Question is a single trivia question: a prompt, the correct answer and
// the wrong answers that may be shown next to it.
type Question struct {
	// Prompt is the question text shown to the player.
	Prompt string `json:"prompt"`

	// CorrectAnswer is the only accepted response.
	CorrectAnswer string `json:"correct_answer"`

	// Misdirectors are candidate wrong answers. Never contains CorrectAnswer.
	Misdirectors []string `json:"misdirectors"`
}

// Responses returns an answer-set of the given size: the correct answer at a
// uniformly random position, every other slot filled with a misdirector.
//
// Misdirectors are taken in a random order. If the question has fewer
// misdirectors than slots-1, they repeat rather than leaving a slot empty.
// A question without misdirectors yields only the correct answer.
func (q Question) Responses(slots int, rng *rand.Rand) []string {
	if slots <= 0 {
		return []string{}
	}
	if len(q.Misdirectors) == 0 {
		return []string{q.CorrectAnswer}
	}
	rng = orDefault(rng)

	responses := make([]string, slots)
	correct := rng.IntN(slots)
	responses[correct] = q.CorrectAnswer

	order := rng.Perm(len(q.Misdirectors))
	k := 0
	for i := range responses {
		if i == correct {
			continue
		}
		responses[i] = q.Misdirectors[order[k%len(order)]]
		k++
	}
	return responses
}

// IsCorrect reports whether response exactly matches the correct answer.
func (q Question) IsCorrect(response string) bool {
	return response == q.CorrectAnswer
}

// clone returns a copy that shares no backing arrays with q.
func (q Question) clone() Question {
	q.Misdirectors = slices.Clone(q.Misdirectors)
	return q
}

// orDefault returns rng, or a freshly seeded generator when rng is nil.
func orDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
