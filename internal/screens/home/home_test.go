package home

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triviaz/internal/questionbank"
	"github.com/abhisek/triviaz/internal/quiz"
	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/screens/game"
	"github.com/abhisek/triviaz/internal/screens/level"
	"github.com/abhisek/triviaz/internal/screens/setup"
)

func down() tea.KeyPressMsg  { return tea.KeyPressMsg{Code: tea.KeyDown} }
func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func testRound() game.Round {
	return game.Round{
		Bank:    questionbank.Default(),
		Options: quiz.Options{QuestionCount: quiz.DefaultQuestionsPerRound},
	}
}

func pushed(t *testing.T, cmd tea.Cmd) router.PushScreenMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	return msg
}

func TestHomeScreen_View(t *testing.T) {
	h := New(testRound(), 30, nil)
	view := h.View(100, 34)

	for _, label := range []string{"PLAY", "TIMED CHALLENGE", "CUSTOM ROUND", "EXIT"} {
		assert.Contains(t, view, label)
	}
	assert.Contains(t, view, "10 QUESTIONS")
	assert.Contains(t, view, "30s CHALLENGE")
	assert.Equal(t, "Home", h.Title())
}

func TestHomeScreen_CompactView(t *testing.T) {
	view := New(testRound(), 30, nil).View(70, 16)
	assert.Contains(t, view, "T · R · I · V · I · A · Z")
}

func TestHomeScreen_PlayPushesLevel(t *testing.T) {
	h := New(testRound(), 30, nil)

	_, cmd := h.Update(enter())

	_, ok := pushed(t, cmd).Screen.(*level.LevelScreen)
	assert.True(t, ok)
}

func TestHomeScreen_TimedChallenge(t *testing.T) {
	h := New(testRound(), 30, nil)
	h.Update(down())

	_, cmd := h.Update(enter())
	lvl := pushed(t, cmd).Screen.(*level.LevelScreen)

	_, cmd = lvl.Update(enter())
	require.NotNil(t, cmd)
	g := cmd().(router.ReplaceScreenMsg).Screen.(*game.GameScreen)
	g.Init()

	status := g.HeaderStatus()
	assert.True(t, status.ShowClock)
	assert.Equal(t, 30, status.Seconds)
}

func TestHomeScreen_CustomRoundPushesSetup(t *testing.T) {
	h := New(testRound(), 30, nil)
	h.Update(down())
	h.Update(down())

	_, cmd := h.Update(enter())

	_, ok := pushed(t, cmd).Screen.(*setup.SetupScreen)
	assert.True(t, ok)
}

func TestHomeScreen_Exit(t *testing.T) {
	h := New(testRound(), 30, nil)
	for i := 0; i < 3; i++ {
		h.Update(down())
	}

	_, cmd := h.Update(enter())
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestHomeScreen_LoadErrorDisablesPlay(t *testing.T) {
	h := New(game.Round{}, 30, errors.New("bank.json: invalid question bank"))

	assert.Equal(t, 3, h.menu.Selected, "only EXIT is selectable")
	assert.Contains(t, h.View(100, 34), "Could not load question bank")

	h.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 3, h.menu.Selected)
}
