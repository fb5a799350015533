package quiz

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// Unlimited as a QuestionCount removes the per-round question cap from a
// cycling timed round, so only the clock ends it.
const Unlimited = -1

// DefaultQuestionsPerRound is the round length used when none is configured.
const DefaultQuestionsPerRound = 4

// DefaultTimeLimit is the clock for a timed round, in seconds.
const DefaultTimeLimit = 15

// TickInterval is how often the caller should invoke Session.Tick in a
// timed round.
const TickInterval = time.Second

// DefaultAdvanceDelay is the pause between answering and the next question.
const DefaultAdvanceDelay = 2 * time.Second

// Options describes a round.
type Options struct {
	// QuestionCount is the number of questions requested. Requests above the
	// bank size are clipped to the bank unless the round cycles.
	QuestionCount int

	// Level sets the number of answer slots per question.
	Level Level

	// TimeLimit is the round clock in seconds. Zero means untimed.
	TimeLimit int
}

// Option customizes a Session.
type Option func(*Session)

// WithRand sets the random source used for selection and answer placement.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithLogger sets the logger for round lifecycle events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCycling lets a timed round run past the bank size by reshuffling the
// bank once every question has been served. Has no effect on untimed rounds.
func WithCycling() Option {
	return func(s *Session) {
		s.cycling = true
	}
}
