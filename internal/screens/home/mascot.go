package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triviaz/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle  MascotVariant = iota // Quiz master at the podium
	MascotAlert                      // Bank failed to load
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ‿  │
│  ?  │
└─────┘`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ︵  │
│  ?  │
└─────┘`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	if variant == MascotAlert {
		art, fg = mascotAlert, theme.Error
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
