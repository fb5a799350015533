package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/triviaz/internal/ui/theme"
)

const arcadeTitleFull = ` ████████╗██████╗ ██╗██╗   ██╗██╗ █████╗ ███████╗
 ╚══██╔══╝██╔══██╗██║██║   ██║██║██╔══██╗╚══███╔╝
    ██║   ██████╔╝██║██║   ██║██║███████║  ███╔╝
    ██║   ██╔══██╗██║╚██╗ ██╔╝██║██╔══██║ ███╔╝
    ██║   ██║  ██║██║ ╚████╔╝ ██║██║  ██║███████╗
    ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═══╝  ╚═╝╚═╝  ╚═╝╚══════╝`

const arcadeTitleCompact = "T · R · I · V · I · A · Z"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	art := arcadeTitleFull
	if compact {
		art = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders bank and round facts in a double-bordered box.
func renderStatsBar(questions, perRound, challenge, cw int, compact bool) string {
	bankStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	roundStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	clockStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			bankStyle.Render(fmt.Sprintf("?%d", questions)),
			roundStyle.Render(fmt.Sprintf("#%d", perRound)),
			clockStyle.Render(fmt.Sprintf("⏱%ds", challenge)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			bankStyle.Render(fmt.Sprintf("? %d QUESTIONS", questions)),
			roundStyle.Render(fmt.Sprintf("# %d PER ROUND", perRound)),
			clockStyle.Render(fmt.Sprintf("⏱ %ds CHALLENGE", challenge)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderLoadError renders the bank load failure in place of the stats.
func renderLoadError(err error, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Error).
		Foreground(theme.Error).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(fmt.Sprintf("Could not load question bank:\n%v", err))
}

// renderMascotBox renders the mascot centered at content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
