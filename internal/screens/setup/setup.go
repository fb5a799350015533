package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/screens/game"
	"github.com/abhisek/triviaz/internal/screens/level"
	"github.com/abhisek/triviaz/internal/ui/components"
	"github.com/abhisek/triviaz/internal/ui/layout"
	"github.com/abhisek/triviaz/internal/ui/theme"
)

// MaxQuestions bounds the custom round length.
const MaxQuestions = 99

// SetupScreen asks how many questions a custom round should have.
type SetupScreen struct {
	round game.Round
	input components.TextInput
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen for round.
func New(round game.Round) *SetupScreen {
	return &SetupScreen{
		round: round,
		input: components.NewTextInput(fmt.Sprintf("1-%d", MaxQuestions), true, 2),
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SetupScreen) Title() string {
	return "Custom Round"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "0-9", Description: "Type"},
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s.submit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SetupScreen) submit() (screen.Screen, tea.Cmd) {
	n, err := s.input.NumericValue()
	if err != nil || n < 1 || n > MaxQuestions {
		s.input.SetError(fmt.Sprintf("enter a number from 1 to %d", MaxQuestions))
		return s, nil
	}
	return s, router.ReplaceCmd(level.New(s.round.WithCount(n)))
}

func (s *SetupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	note := fmt.Sprintf("The bank holds %d questions. Longer rounds serve each once.", s.round.Bank.Len())
	sections := []string{
		theme.Title.Width(cw).Render("How many questions?"),
		theme.Subtitle.Width(cw).Render(note),
		components.ArcadeCard(s.input.View(), cw),
	}
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
