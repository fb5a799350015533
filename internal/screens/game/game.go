package game

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/triviaz/internal/questionbank"
	"github.com/abhisek/triviaz/internal/quiz"
	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/screens/summary"
	"github.com/abhisek/triviaz/internal/ui/components"
	"github.com/abhisek/triviaz/internal/ui/layout"
)

type feedback int

const (
	feedbackNone feedback = iota
	feedbackCorrect
	feedbackWrong
	feedbackTimeUp
)

// GameScreen runs one round: it shows each question with its answer
// buttons, scores the pick, pauses on feedback and finally hands off to
// the summary screen.
type GameScreen struct {
	round    Round
	session  *quiz.Session
	question questionbank.Question
	buttons  components.AnswerButtons
	feedback feedback
	ended    bool
	logger   *zap.Logger
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)
var _ screen.StatusProvider = (*GameScreen)(nil)

// New creates a GameScreen for a session built from round.
func New(session *quiz.Session, round Round) *GameScreen {
	logger := round.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameScreen{
		round:   round,
		session: session,
		logger:  logger.With(zap.String("round_id", session.ID())),
	}
}

func (g *GameScreen) Init() tea.Cmd {
	if cmd := g.nextQuestion(); cmd != nil {
		return cmd
	}
	if g.session.IsTimed() {
		return g.tickCmd()
	}
	return nil
}

func (g *GameScreen) Title() string {
	return "Round"
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	if g.feedback != feedbackNone {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Skip"},
			{Key: "Esc", Description: "Quit round"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "←→", Description: "Move"},
		{Key: "Enter", Description: "Pick"},
		{Key: "Esc", Description: "Quit round"},
	}
}

func (g *GameScreen) HeaderStatus() layout.HeaderStatus {
	return layout.HeaderStatus{
		Score:     g.session.Score(),
		Answered:  g.session.TotalQuestionsAnswered(),
		Seconds:   g.session.SecondsRemaining(),
		ShowClock: g.session.IsTimed(),
	}
}

// Level returns the level the round is played at.
func (g *GameScreen) Level() quiz.Level {
	return g.session.Level()
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if msg.roundID != g.session.ID() {
			return g, nil
		}
		return g.handleTick()

	case advanceMsg:
		if msg.roundID != g.session.ID() || msg.seq != g.session.TotalQuestionsAnswered() {
			return g, nil
		}
		return g.advance()

	case tea.KeyMsg:
		return g.handleKey(msg)
	}
	return g, nil
}

func (g *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if g.ended {
		return g, nil
	}

	if g.feedback != feedbackNone {
		if msg.String() == "enter" {
			return g.advance()
		}
		return g, nil
	}

	g.buttons, _ = g.buttons.Update(msg)
	choice, ok := g.buttons.Choice()
	if !ok {
		return g, nil
	}

	g.session.RecordAnswer(choice)
	g.feedback = feedbackWrong
	if g.session.LastAnswerCorrect() {
		g.feedback = feedbackCorrect
	}
	g.buttons.Reveal(g.question.CorrectAnswer)
	return g, g.advanceCmd()
}

func (g *GameScreen) handleTick() (screen.Screen, tea.Cmd) {
	if g.ended {
		return g, nil
	}

	if g.session.Tick() > 0 {
		return g, g.tickCmd()
	}

	// The clock stopped. Mid-question the round ends after a short
	// "time's up" pause; mid-feedback the pending advance ends it.
	if !g.session.Answered() {
		g.feedback = feedbackTimeUp
		g.buttons.Reveal(g.question.CorrectAnswer)
		return g, g.advanceCmd()
	}
	return g, nil
}

// advance moves to the next question, or to the summary when the round
// is over.
func (g *GameScreen) advance() (screen.Screen, tea.Cmd) {
	if g.ended {
		return g, nil
	}
	g.feedback = feedbackNone
	return g, g.nextQuestion()
}

// nextQuestion serves the next question. It returns the command that ends
// the round when none is left, nil otherwise.
func (g *GameScreen) nextQuestion() tea.Cmd {
	q, ok := g.session.NextQuestion()
	if !ok {
		return g.finish()
	}
	g.question = q
	g.buttons = components.NewAnswerButtons(g.session.LevelledResponsesForCurrentQuestion())
	return nil
}

func (g *GameScreen) finish() tea.Cmd {
	g.ended = true
	sum := g.session.Summary()
	g.logger.Info("round finished",
		zap.Int("score", sum.Score),
		zap.Int("answered", sum.Answered),
		zap.Bool("time_expired", sum.TimeExpired),
	)

	round := g.round
	replay := func() screen.Screen {
		return New(round.NewSession(), round)
	}
	return router.ReplaceCmd(summary.New(sum, replay))
}

func (g *GameScreen) advanceCmd() tea.Cmd {
	msg := advanceMsg{roundID: g.session.ID(), seq: g.session.TotalQuestionsAnswered()}
	delay := g.round.AdvanceDelay
	if delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return msg })
}

func (g *GameScreen) tickCmd() tea.Cmd {
	id := g.session.ID()
	return tea.Tick(quiz.TickInterval, func(time.Time) tea.Msg {
		return timerTickMsg{roundID: id}
	})
}
