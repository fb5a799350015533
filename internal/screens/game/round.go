package game

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/triviaz/internal/questionbank"
	"github.com/abhisek/triviaz/internal/quiz"
)

// Round carries everything needed to start (and restart) a round. Screens
// pass it along until the level is chosen.
type Round struct {
	Bank         *questionbank.Bank
	Options      quiz.Options
	Cycle        bool
	AdvanceDelay time.Duration
	Logger       *zap.Logger
	Rand         *rand.Rand
}

// NewSession builds a fresh quiz session from the round settings.
func (r Round) NewSession() *quiz.Session {
	opts := []quiz.Option{quiz.WithLogger(r.Logger), quiz.WithRand(r.Rand)}
	if r.Cycle {
		opts = append(opts, quiz.WithCycling())
	}
	return quiz.New(r.Bank, r.Options, opts...)
}

// Timed returns a copy of r configured as a timed challenge: the clock
// runs for seconds and the bank cycles until it stops.
func (r Round) Timed(seconds int) Round {
	r.Options.TimeLimit = seconds
	r.Options.QuestionCount = quiz.Unlimited
	r.Cycle = true
	return r
}

// WithCount returns a copy of r asking for n questions.
func (r Round) WithCount(n int) Round {
	r.Options.QuestionCount = n
	return r
}
