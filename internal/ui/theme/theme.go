package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, game-show inspired.
var (
	Primary      = lipgloss.Color("#6366F1") // Indigo
	Secondary    = lipgloss.Color("#14B8A6") // Teal
	Accent       = lipgloss.Color("#F97316") // Orange
	Success      = lipgloss.Color("#22C55E") // Green
	Error        = lipgloss.Color("#F43F5E") // Rose
	Warning      = lipgloss.Color("#EAB308") // Amber
	Text         = lipgloss.Color("#F8FAFC") // White
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgDark       = lipgloss.Color("#0F172A") // Deep Navy
	BgCard       = lipgloss.Color("#1E293B") // Dark Slate
	Border       = lipgloss.Color("#334155") // Slate
	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(ArcadeYellow).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Prompt = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true).
		Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Feedback
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Answer buttons
var (
	AnswerButton = lipgloss.NewStyle().
			Align(lipgloss.Center).
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	AnswerButtonSelected = AnswerButton.
				Bold(true).
				Foreground(BgDark).
				Background(ArcadeYellow).
				BorderForeground(ArcadeYellow)

	AnswerButtonCorrect = AnswerButton.
				Bold(true).
				Foreground(BgDark).
				Background(Success).
				BorderForeground(Success)

	AnswerButtonWrong = AnswerButton.
				Bold(true).
				Foreground(Text).
				Background(Error).
				BorderForeground(Error)

	AnswerButtonDimmed = AnswerButton.
				Foreground(TextDim)
)
