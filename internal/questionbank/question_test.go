package questionbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponses_ContainsCorrectOnce(t *testing.T) {
	for _, q := range Default().All() {
		for _, n := range []int{3, 4} {
			for seed := uint64(0); seed < 20; seed++ {
				got := q.Responses(n, seeded(seed))

				assert.Len(t, got, n)
				correct := 0
				for _, r := range got {
					assert.NotEmpty(t, r)
					if r == q.CorrectAnswer {
						correct++
					}
				}
				assert.Equal(t, 1, correct, "prompt %q slots %d", q.Prompt, n)
			}
		}
	}
}

func TestResponses_CorrectPositionCoversEverySlot(t *testing.T) {
	q := Default().All()[0]
	positions := make(map[int]bool)
	for seed := uint64(0); seed < 200; seed++ {
		got := q.Responses(4, seeded(seed))
		for i, r := range got {
			if r == q.CorrectAnswer {
				positions[i] = true
			}
		}
	}
	assert.Len(t, positions, 4)
}

func TestResponses_DistinctMisdirectorsWhenProvisioned(t *testing.T) {
	q := Question{Prompt: "p", CorrectAnswer: "a", Misdirectors: []string{"b", "c", "d"}}
	got := q.Responses(4, seeded(7))
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, got)
}

func TestResponses_UnderProvisionedRepeats(t *testing.T) {
	q := Question{Prompt: "p", CorrectAnswer: "a", Misdirectors: []string{"b"}}
	got := q.Responses(4, seeded(3))

	assert.Len(t, got, 4)
	assert.ElementsMatch(t, []string{"a", "b", "b", "b"}, got)
}

func TestResponses_EdgeSizes(t *testing.T) {
	q := Question{Prompt: "p", CorrectAnswer: "a", Misdirectors: []string{"b", "c"}}

	assert.Empty(t, q.Responses(0, nil))
	assert.Empty(t, q.Responses(-1, nil))
	assert.Equal(t, []string{"a"}, q.Responses(1, nil))
}

func TestIsCorrect_ExactMatch(t *testing.T) {
	q := Question{Prompt: "p", CorrectAnswer: "New York City", Misdirectors: []string{"Boston"}}

	assert.True(t, q.IsCorrect("New York City"))
	assert.False(t, q.IsCorrect("new york city"))
	assert.False(t, q.IsCorrect(" New York City"))
}
