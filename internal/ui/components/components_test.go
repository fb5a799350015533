package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestAnswerButtons_NumberKeySubmits(t *testing.T) {
	a := NewAnswerButtons([]string{"Paris", "Rome", "Oslo"})

	a, _ = a.Update(keyPress('2'))

	require.True(t, a.Submitted)
	got, ok := a.Choice()
	assert.True(t, ok)
	assert.Equal(t, "Rome", got)
}

func TestAnswerButtons_OutOfRangeNumberIgnored(t *testing.T) {
	a := NewAnswerButtons([]string{"Paris", "Rome", "Oslo"})

	a, _ = a.Update(keyPress('4'))

	assert.False(t, a.Submitted)
	_, ok := a.Choice()
	assert.False(t, ok)
}

func TestAnswerButtons_ArrowsThenEnter(t *testing.T) {
	a := NewAnswerButtons([]string{"a", "b", "c", "d"})

	a, _ = a.Update(specialKey(tea.KeyDown))
	a, _ = a.Update(specialKey(tea.KeyDown))
	a, _ = a.Update(specialKey(tea.KeyDown))
	a, _ = a.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 3, a.Selected, "selection clamps at the last button")

	a, _ = a.Update(specialKey(tea.KeyUp))
	a, _ = a.Update(specialKey(tea.KeyEnter))

	got, ok := a.Choice()
	require.True(t, ok)
	assert.Equal(t, "c", got)
}

func TestAnswerButtons_LockedAfterSubmit(t *testing.T) {
	a := NewAnswerButtons([]string{"a", "b", "c"})
	a, _ = a.Update(keyPress('1'))
	a, _ = a.Update(keyPress('3'))

	got, _ := a.Choice()
	assert.Equal(t, "a", got)
}

func TestAnswerButtons_View(t *testing.T) {
	a := NewAnswerButtons([]string{"Paris", "Rome", "Oslo", "Bern"})
	view := a.View(80)
	for _, opt := range a.Options {
		assert.Contains(t, view, opt)
	}

	a, _ = a.Update(keyPress('1'))
	a.Reveal("Rome")
	assert.Contains(t, a.View(40), "Rome")

	assert.Empty(t, NewAnswerButtons(nil).View(80))
}

func TestMenu_SkipsDisabled(t *testing.T) {
	var fired string
	m := NewMenu([]MenuItem{
		{Label: "ONE", Disabled: true},
		{Label: "TWO", Action: func() tea.Cmd { fired = "TWO"; return nil }},
		{Label: "THREE", Disabled: true},
		{Label: "FOUR", Action: func() tea.Cmd { fired = "FOUR"; return nil }},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, "FOUR", fired)
	assert.Equal(t, []string{"ONE", "TWO", "THREE", "FOUR"}, m.Labels())
	assert.Contains(t, m.View(40), "FOUR")
}

func TestTextInput_NumericOnly(t *testing.T) {
	ti := NewTextInput("count", true, 3)

	for _, r := range "1a2" {
		ti, _ = ti.Update(keyPress(r))
	}

	assert.Equal(t, "12", ti.Value())
	n, err := ti.NumericValue()
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestTextInput_ErrorClearsOnEdit(t *testing.T) {
	ti := NewTextInput("count", true, 3)
	ti.SetError("too big")
	assert.Contains(t, ti.View(), "too big")

	ti, _ = ti.Update(keyPress('5'))
	assert.Empty(t, ti.Err())
}

func TestTimerBar(t *testing.T) {
	bar := TimerBar(5, 20, 40)
	assert.InDelta(t, 0.25, bar.Percent, 1e-9)
	assert.Contains(t, bar.View(), "5s")

	assert.Zero(t, TimerBar(5, 0, 40).Percent)
}
