package quiz

import "math/rand/v2"

// Level controls how many answers are offered per question.
type Level int

const (
	LevelMixed Level = iota // 3 or 4 answers, drawn per question
	LevelEasy               // 3 answers
	LevelHard               // 4 answers
)

// Labels accepted by ParseLevel. Anything else is treated as mixed.
const (
	LabelEasy  = "Easy"
	LabelHard  = "Hard"
	LabelMixed = "Mix It Up"
)

const (
	easySlots = 3
	hardSlots = 4
)

// ParseLevel maps a display label to a Level. Only the exact labels "Easy"
// and "Hard" select those levels; every other input means mixed.
func ParseLevel(label string) Level {
	switch label {
	case LabelEasy:
		return LevelEasy
	case LabelHard:
		return LevelHard
	default:
		return LevelMixed
	}
}

// String returns the level's display label.
func (l Level) String() string {
	switch l {
	case LevelEasy:
		return LabelEasy
	case LevelHard:
		return LabelHard
	default:
		return LabelMixed
	}
}

// Slots returns the number of answer slots for one question at this level.
func (l Level) Slots(rng *rand.Rand) int {
	switch l {
	case LevelEasy:
		return easySlots
	case LevelHard:
		return hardSlots
	default:
		return easySlots + rng.IntN(hardSlots-easySlots+1)
	}
}
