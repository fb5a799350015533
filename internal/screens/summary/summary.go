package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triviaz/internal/quiz"
	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/ui/components"
	"github.com/abhisek/triviaz/internal/ui/layout"
	"github.com/abhisek/triviaz/internal/ui/theme"
)

// SummaryScreen displays the end-of-round score.
type SummaryScreen struct {
	summary quiz.Summary
	menu    components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. replay builds the screen for another round
// with the same settings; a nil replay hides the play-again option.
func New(sum quiz.Summary, replay func() screen.Screen) *SummaryScreen {
	var items []components.MenuItem
	if replay != nil {
		items = append(items, components.MenuItem{Label: "PLAY AGAIN", Action: func() tea.Cmd {
			return router.ReplaceCmd(replay())
		}})
	}
	items = append(items, components.MenuItem{Label: "HOME", Action: func() tea.Cmd {
		return router.PopToRootCmd
	}})

	return &SummaryScreen{
		summary: sum,
		menu:    components.NewMenu(items),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Game Over"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// ScoreLine is the headline result sentence.
func ScoreLine(sum quiz.Summary) string {
	return fmt.Sprintf("You correctly answered %d out of %d questions!", sum.Score, sum.Answered)
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(theme.Title.Width(cw).Render("Good game!"))
	b.WriteString("\n\n")
	b.WriteString(components.CenteredLine(ScoreLine(sum), lipgloss.NewStyle().Foreground(theme.Text).Bold(true), cw))
	b.WriteString("\n\n")

	stats := []string{
		fmt.Sprintf("Accuracy: %.0f%%", sum.Accuracy*100),
		"Level: " + sum.Level.String(),
	}
	if sum.Timed {
		if sum.TimeExpired {
			stats = append(stats, "Clock: time's up")
		} else {
			stats = append(stats, fmt.Sprintf("Clock: %ds left", sum.SecondsRemaining))
		}
	}
	b.WriteString(components.ArcadeCard(
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(stats, "    ")), cw))
	b.WriteString("\n\n")

	b.WriteString(s.menu.View(cw))

	return components.CabinetFrame(b.String(), width, height)
}
