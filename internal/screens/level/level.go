package level

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/triviaz/internal/quiz"
	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/screens/game"
	"github.com/abhisek/triviaz/internal/ui/components"
	"github.com/abhisek/triviaz/internal/ui/theme"
)

// Labels are the level choices offered to the player.
var Labels = []string{
	quiz.LevelEasy.String(),
	quiz.LevelHard.String(),
	quiz.LevelMixed.String(),
}

// LevelScreen asks which level to play, then starts the round.
type LevelScreen struct {
	round game.Round
	menu  components.Menu
}

var _ screen.Screen = (*LevelScreen)(nil)

// New creates a LevelScreen for round.
func New(round game.Round) *LevelScreen {
	l := &LevelScreen{round: round}

	items := make([]components.MenuItem, len(Labels))
	for i, label := range Labels {
		items[i] = components.MenuItem{Label: label, Action: func() tea.Cmd {
			return l.start(label)
		}}
	}
	l.menu = components.NewMenu(items)
	return l
}

// start builds the session, applies the chosen level and swaps this
// screen for the game.
func (l *LevelScreen) start(label string) tea.Cmd {
	round := l.round
	session := round.NewSession()
	round.Options.Level = session.SetLevel(label)
	return router.ReplaceCmd(game.New(session, round))
}

func (l *LevelScreen) Init() tea.Cmd {
	return nil
}

func (l *LevelScreen) Title() string {
	return "Choose Level"
}

func (l *LevelScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		// Number shortcuts mirror the answer buttons.
		switch kmsg.String() {
		case "1", "2", "3":
			i := int(kmsg.String()[0] - '1')
			l.menu.Selected = i
			return l, l.start(Labels[i])
		}
	}

	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LevelScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		theme.Title.Width(cw).Render("Welcome to Random Trivia!"),
		theme.Subtitle.Width(cw).Render("What level game would you like to play?"),
		l.menu.View(cw),
	}
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
