package character

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/router"
	"github.com/abhisek/casefile/internal/screen"
	"github.com/abhisek/casefile/internal/ui/components"
	"github.com/abhisek/casefile/internal/ui/layout"
	"github.com/abhisek/casefile/internal/ui/theme"
)

// CharacterScreen lets the player pick a detective partner. It is the root
// screen whenever no detective is selected.
type CharacterScreen struct {
	env  *screen.Env
	menu components.Menu
}

var _ screen.Screen = (*CharacterScreen)(nil)
var _ screen.KeyHintProvider = (*CharacterScreen)(nil)

// New creates a CharacterScreen.
func New(env *screen.Env) *CharacterScreen {
	s := &CharacterScreen{env: env}
	s.menu = components.NewMenu(s.items())
	return s
}

func (s *CharacterScreen) items() []components.MenuItem {
	var items []components.MenuItem
	for _, c := range s.env.Content.Characters() {
		id := c.ID
		items = append(items, components.MenuItem{
			Label:  c.Name,
			Detail: s.env.Text(c.Description),
			Action: func() tea.Cmd { return s.choose(id) },
		})
	}
	return items
}

func (s *CharacterScreen) choose(id string) tea.Cmd {
	s.env.Game.SelectCharacter(id)
	s.env.Logger.Info().Str("character", id).Msg("detective selected")
	menu := s.env.Menu()
	return func() tea.Msg { return router.ResetScreenMsg{Screen: menu} }
}

func (s *CharacterScreen) Init() tea.Cmd {
	return nil
}

func (s *CharacterScreen) Title() string {
	return s.env.T(i18n.KeyAppTitle)
}

func (s *CharacterScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: s.env.T(i18n.KeyHintNavigate)},
		{Key: "Enter", Description: s.env.T(i18n.KeyHintSelect)},
		{Key: "L", Description: s.env.T(i18n.KeyHintLanguage)},
		{Key: "Ctrl+C", Description: s.env.T(i18n.KeyHintQuit)},
	}
}

func (s *CharacterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *CharacterScreen) View(width, height int) string {
	selected := s.menu.Selected
	s.menu = components.NewMenu(s.items())
	s.menu.Selected = selected

	cw := components.ContentWidth(width)
	var b strings.Builder
	b.WriteString(theme.Title.Render(s.env.T(i18n.KeyAppTitle)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(s.env.T(i18n.KeyChooseDetective)))
	b.WriteString("\n\n")
	b.WriteString(components.FileCard(lipgloss.NewStyle().Width(cw-8).Render(s.menu.View()), cw))

	return components.Center(b.String(), width, height)
}
