package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triviaz/internal/ui/theme"
)

// AnswerButtons is a grid of answer buttons for one question. It handles
// selection only; scoring belongs to the caller.
type AnswerButtons struct {
	Options   []string
	Selected  int
	Submitted bool
	Chosen    int
	correct   string
	revealed  bool
}

// NewAnswerButtons creates answer buttons for the given responses.
func NewAnswerButtons(options []string) AnswerButtons {
	return AnswerButtons{
		Options: options,
		Chosen:  -1,
	}
}

// Update handles arrow navigation, number shortcuts and enter.
func (a AnswerButtons) Update(msg tea.Msg) (AnswerButtons, tea.Cmd) {
	if a.Submitted || len(a.Options) == 0 {
		return a, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k", "left", "h":
		if a.Selected > 0 {
			a.Selected--
		}
	case "down", "j", "right", "l", "tab":
		if a.Selected < len(a.Options)-1 {
			a.Selected++
		}
	case "enter", "space", " ":
		a.submit(a.Selected)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(a.Options) {
			a.Selected = n - 1
			a.submit(n - 1)
		}
	}

	return a, nil
}

func (a *AnswerButtons) submit(i int) {
	a.Submitted = true
	a.Chosen = i
}

// Choice returns the submitted response text.
func (a AnswerButtons) Choice() (string, bool) {
	if !a.Submitted || a.Chosen < 0 || a.Chosen >= len(a.Options) {
		return "", false
	}
	return a.Options[a.Chosen], true
}

// Reveal marks the correct response so View can colour the outcome.
func (a *AnswerButtons) Reveal(correct string) {
	a.correct = correct
	a.revealed = true
}

// View renders the buttons in two columns, or one column when narrow.
func (a AnswerButtons) View(width int) string {
	if len(a.Options) == 0 {
		return ""
	}

	cols := 2
	bw := (width - 6) / 2
	if bw < 24 {
		cols = 1
		bw = min(width-4, 40)
	}
	bw = min(bw, 34)

	buttons := make([]string, len(a.Options))
	for i, opt := range a.Options {
		label := fmt.Sprintf("%d  %s", i+1, opt)
		buttons[i] = a.style(i, opt).Width(bw).Render(label)
	}

	var rows []string
	for i := 0; i < len(buttons); i += cols {
		end := min(i+cols, len(buttons))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, spaced(buttons[i:end])...))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rows, "\n"))
}

func (a AnswerButtons) style(i int, opt string) lipgloss.Style {
	switch {
	case a.revealed && opt == a.correct:
		return theme.AnswerButtonCorrect
	case a.revealed && i == a.Chosen:
		return theme.AnswerButtonWrong
	case a.revealed || a.Submitted:
		return theme.AnswerButtonDimmed
	case i == a.Selected:
		return theme.AnswerButtonSelected
	default:
		return theme.AnswerButton
	}
}

func spaced(cells []string) []string {
	out := make([]string, 0, len(cells)*2)
	for i, c := range cells {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, c)
	}
	return out
}
