package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/triviaz/internal/ui/components"
	"github.com/abhisek/triviaz/internal/ui/theme"
)

const (
	msgCorrect = "Correct!"
	msgWrong   = "Sorry! Wrong answer!"
	msgTimeUp  = "Time's up!"
)

func (g *GameScreen) View(width, height int) string {
	if g.ended {
		return components.CenteredLine("\n\nTallying your score...", lipgloss.NewStyle().Foreground(theme.TextDim), width)
	}

	var b strings.Builder

	b.WriteString(g.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if g.session.IsTimed() {
		bar := components.TimerBar(g.session.SecondsRemaining(), g.session.TimeLimit(), min(width-8, 60))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n\n")
	}

	prompt := theme.Prompt.Width(min(width-8, 70)).Render(g.question.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	b.WriteString(g.buttons.View(width))
	b.WriteString("\n\n")

	b.WriteString(g.renderFeedback(width))

	return b.String()
}

func (g *GameScreen) renderInfoLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Level: " + g.session.Level().String())

	progress := fmt.Sprintf("Q %d", g.session.TotalQuestionsAnswered())
	if n := g.session.Len(); n >= 0 {
		progress = fmt.Sprintf("Q %d/%d", g.session.TotalQuestionsAnswered(), n)
	}
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  %s %d",
			progress,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			g.session.Score(),
		))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (g *GameScreen) renderFeedback(width int) string {
	switch g.feedback {
	case feedbackCorrect:
		return components.CenteredLine(msgCorrect, theme.Correct, width)
	case feedbackWrong:
		return components.CenteredLine(msgWrong, theme.Incorrect, width) + "\n" +
			components.CenteredLine("Answer: "+g.question.CorrectAnswer, lipgloss.NewStyle().Foreground(theme.TextDim), width)
	case feedbackTimeUp:
		return components.CenteredLine(msgTimeUp, lipgloss.NewStyle().Foreground(theme.Warning).Bold(true), width)
	}
	return components.CenteredLine("Pick an answer with 1-4 or the arrow keys", theme.Hint, width)
}
