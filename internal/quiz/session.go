package quiz

import (
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/triviaz/internal/questionbank"
)

// Phase is the coarse state of a round.
type Phase int

const (
	PhaseNotStarted Phase = iota // No question served yet
	PhaseInProgress              // Questions remain
	PhaseFinished                // Questions exhausted or clock ran out
)

// String returns a lowercase name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInProgress:
		return "in-progress"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Session walks one round of questions and keeps score.
//
// A Session is owned by a single caller and is not safe for concurrent use.
// None of its methods block; a timed round relies on the caller invoking
// Tick once per TickInterval.
type Session struct {
	id        string
	questions []questionbank.Question
	deck      *questionbank.Deck
	limit     int // Unlimited, or the most questions this round may serve
	current   int // -1 before the first question

	score       int
	recorded    bool // current question already scored
	lastCorrect bool

	level     Level
	responses []string // answer-set for the current question

	timed            bool
	timeLimit        int
	secondsRemaining int

	cycling bool
	rng     *rand.Rand
	logger  *zap.Logger
}

// New creates a round drawn from bank.
//
// Untimed rounds (and timed rounds without WithCycling) serve at most one
// pass over the bank: a QuestionCount above the bank size, or Unlimited,
// yields the whole bank in random order. Timed rounds with WithCycling keep
// drawing from a reshuffling deck, capped at QuestionCount unless it is
// Unlimited.
func New(bank *questionbank.Bank, opts Options, options ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		current: -1,
		level:   opts.Level,
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	if opts.TimeLimit > 0 {
		s.timed = true
		s.timeLimit = opts.TimeLimit
		s.secondsRemaining = opts.TimeLimit
	}

	count := opts.QuestionCount
	wraps := count == Unlimited || count > bank.Len()
	switch {
	case s.timed && s.cycling && wraps:
		s.deck = bank.NewDeck(s.rng)
		s.limit = count
	case count < 0:
		s.questions = bank.SelectRandomSubset(bank.Len(), s.rng)
		s.limit = len(s.questions)
	default:
		s.questions = bank.SelectRandomSubset(count, s.rng)
		s.limit = len(s.questions)
	}

	s.logger = s.logger.With(zap.String("round_id", s.id))
	s.logger.Debug("round created",
		zap.Int("requested", opts.QuestionCount),
		zap.Int("planned", s.Len()),
		zap.Stringer("level", s.level),
		zap.Bool("timed", s.timed),
		zap.Int("time_limit", s.timeLimit),
		zap.Bool("cycling", s.deck != nil),
	)
	return s
}

// ID returns the round's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Len returns the number of questions planned for the round, or Unlimited
// for an uncapped cycling round.
func (s *Session) Len() int {
	if s.deck != nil {
		return s.limit
	}
	return len(s.questions)
}

// HasNextQuestion reports whether NextQuestion would serve a question.
func (s *Session) HasNextQuestion() bool {
	next := s.current + 1
	if s.limit != Unlimited && next >= s.limit {
		return false
	}
	if s.deck == nil && next >= len(s.questions) {
		return false
	}
	if s.timed && s.secondsRemaining <= 0 {
		return false
	}
	return true
}

// NextQuestion advances to and returns the next question. When the round
// has nothing left it returns false and leaves the session unchanged.
func (s *Session) NextQuestion() (questionbank.Question, bool) {
	if !s.HasNextQuestion() {
		return questionbank.Question{}, false
	}

	if s.deck != nil && s.current+1 >= len(s.questions) {
		cycle := s.deck.Cycle()
		q, ok := s.deck.Draw()
		if !ok {
			return questionbank.Question{}, false
		}
		if cycle > 0 && s.deck.Cycle() != cycle {
			s.logger.Debug("question bank reshuffled", zap.Int("cycle", s.deck.Cycle()))
		}
		s.questions = append(s.questions, q)
	}

	s.current++
	s.recorded = false
	s.lastCorrect = false
	q := s.questions[s.current]
	s.responses = q.Responses(s.level.Slots(s.rng), s.rng)

	if s.current == 0 {
		s.logger.Debug("round started")
	}
	return q, true
}

// CurrentQuestion returns the question most recently served by
// NextQuestion, or false before the first one.
func (s *Session) CurrentQuestion() (questionbank.Question, bool) {
	if s.current < 0 || s.current >= len(s.questions) {
		return questionbank.Question{}, false
	}
	return s.questions[s.current], true
}

// RecordAnswer scores the player's response to the current question and
// reports whether it was correct. Only the first response to a question
// counts; later calls return the same outcome without changing the score.
// With no current question it returns false.
func (s *Session) RecordAnswer(response string) bool {
	q, ok := s.CurrentQuestion()
	if !ok {
		return false
	}
	if s.recorded {
		return s.lastCorrect
	}

	s.recorded = true
	s.lastCorrect = q.IsCorrect(response)
	if s.lastCorrect {
		s.score++
	}

	s.logger.Debug("answer recorded",
		zap.Int("question", s.current+1),
		zap.Bool("correct", s.lastCorrect),
		zap.Int("score", s.score),
	)
	if !s.HasNextQuestion() {
		s.logger.Debug("round finished",
			zap.Int("score", s.score),
			zap.Int("answered", s.TotalQuestionsAnswered()),
		)
	}
	return s.lastCorrect
}

// Answered reports whether the current question has been scored.
func (s *Session) Answered() bool {
	return s.recorded
}

// LastAnswerCorrect reports whether the current question was answered
// correctly. False until RecordAnswer is called for it.
func (s *Session) LastAnswerCorrect() bool {
	return s.recorded && s.lastCorrect
}

// TotalQuestionsAnswered returns how many questions have been served.
func (s *Session) TotalQuestionsAnswered() int {
	return s.current + 1
}

// Score returns the number of correct answers so far.
func (s *Session) Score() int {
	return s.score
}

// Level returns the round's current level.
func (s *Session) Level() Level {
	return s.level
}

// SetLevel sets the level from a display label and returns the level it
// resolved to. Unrecognized labels select LevelMixed. The current
// question's answer-set is regenerated for the new level.
func (s *Session) SetLevel(label string) Level {
	s.level = ParseLevel(label)
	if q, ok := s.CurrentQuestion(); ok {
		s.responses = q.Responses(s.level.Slots(s.rng), s.rng)
	}
	return s.level
}

// LevelledResponsesForCurrentQuestion returns the answer-set for the current
// question. The set is stable until the next question or a level change.
// Returns nil before the first question.
func (s *Session) LevelledResponsesForCurrentQuestion() []string {
	if _, ok := s.CurrentQuestion(); !ok {
		return nil
	}
	return slices.Clone(s.responses)
}

// IsTimed reports whether the round runs against a clock.
func (s *Session) IsTimed() bool {
	return s.timed
}

// TimeLimit returns the round clock in seconds, or 0 when untimed.
func (s *Session) TimeLimit() int {
	return s.timeLimit
}

// SecondsRemaining returns the time left on the round clock.
func (s *Session) SecondsRemaining() int {
	return s.secondsRemaining
}

// TimeExpired reports whether a timed round's clock has reached zero.
func (s *Session) TimeExpired() bool {
	return s.timed && s.secondsRemaining <= 0
}

// Tick counts one second off the round clock and returns the seconds left.
// It is a no-op for untimed rounds and once the clock reaches zero.
func (s *Session) Tick() int {
	if !s.timed || s.secondsRemaining <= 0 {
		return s.secondsRemaining
	}
	s.secondsRemaining--
	if s.secondsRemaining == 0 {
		s.logger.Debug("round clock expired",
			zap.Int("score", s.score),
			zap.Int("answered", s.TotalQuestionsAnswered()),
		)
	}
	return s.secondsRemaining
}

// Phase returns the round's coarse state. A round that can never serve a
// question is finished from the start.
func (s *Session) Phase() Phase {
	if !s.HasNextQuestion() {
		return PhaseFinished
	}
	if s.current < 0 {
		return PhaseNotStarted
	}
	return PhaseInProgress
}
