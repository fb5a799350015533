package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/screens/game"
	"github.com/abhisek/triviaz/internal/screens/level"
	"github.com/abhisek/triviaz/internal/screens/setup"
	"github.com/abhisek/triviaz/internal/ui/components"
	"github.com/abhisek/triviaz/internal/ui/layout"
)

// fullHeight is the content height needed for the title art and mascot.
const fullHeight = 34

// HomeScreen is the start screen of the application.
type HomeScreen struct {
	menu      components.Menu
	round     game.Round
	challenge int
	loadErr   error
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. round holds the configured defaults and
// challenge is the clock, in seconds, for the timed challenge. When
// loadErr is set the game entries are disabled and the error is shown.
func New(round game.Round, challenge int, loadErr error) *HomeScreen {
	disabled := loadErr != nil || round.Bank == nil

	items := []components.MenuItem{
		{Label: "PLAY", Disabled: disabled, Action: func() tea.Cmd {
			return router.PushCmd(level.New(round))
		}},
		{Label: "TIMED CHALLENGE", Disabled: disabled, Action: func() tea.Cmd {
			return router.PushCmd(level.New(round.Timed(challenge)))
		}},
		{Label: "CUSTOM ROUND", Disabled: disabled, Action: func() tea.Cmd {
			return router.PushCmd(setup.New(round))
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		round:     round,
		challenge: challenge,
		loadErr:   loadErr,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := width < layout.CompactWidthThreshold || height < fullHeight
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	variant := MascotIdle
	if h.loadErr != nil {
		variant = MascotAlert
	}
	if !compact {
		sections = append(sections, renderMascotBox(variant, cw))
	}

	if h.loadErr != nil {
		sections = append(sections, renderLoadError(h.loadErr, cw))
	} else if h.round.Bank != nil {
		sections = append(sections, renderStatsBar(
			h.round.Bank.Len(), h.round.Options.QuestionCount, h.challenge, cw, compact))
	}

	sections = append(sections, h.menu.View(cw))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
