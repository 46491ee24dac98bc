package chapters

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/router"
	"github.com/abhisek/casefile/internal/screen"
	storyscreen "github.com/abhisek/casefile/internal/screens/story"
	"github.com/abhisek/casefile/internal/story"
	"github.com/abhisek/casefile/internal/ui/components"
	"github.com/abhisek/casefile/internal/ui/layout"
	"github.com/abhisek/casefile/internal/ui/theme"
)

// ChaptersScreen lists the story chapters.
type ChaptersScreen struct {
	env     *screen.Env
	ctl     *story.Controller
	menu    components.Menu
	missing bool
}

var _ screen.Screen = (*ChaptersScreen)(nil)
var _ screen.KeyHintProvider = (*ChaptersScreen)(nil)

// New creates a ChaptersScreen over the content's chapters.
func New(env *screen.Env) *ChaptersScreen {
	s := &ChaptersScreen{
		env: env,
		ctl: story.NewController(env.Content.Chapters(), env.Content, env.Game, story.Options{
			Delay:  env.AdvanceDelay,
			Logger: env.Logger,
		}),
	}
	s.menu = components.NewMenu(s.items())
	return s
}

func (s *ChaptersScreen) items() []components.MenuItem {
	var items []components.MenuItem
	for i, ch := range s.ctl.Chapters() {
		index := i
		items = append(items, components.MenuItem{
			Label:  s.env.Text(ch.Title),
			Detail: s.env.Text(ch.Description),
			Action: func() tea.Cmd { return s.open(index) },
		})
	}
	return items
}

// open starts chapter index and pushes the story screen.
func (s *ChaptersScreen) open(index int) tea.Cmd {
	if s.ctl.Start(index) != story.SignalNone {
		s.missing = true
		return nil
	}
	s.missing = false
	return router.Push(storyscreen.New(s.env, s.ctl))
}

func (s *ChaptersScreen) Init() tea.Cmd {
	return nil
}

func (s *ChaptersScreen) Title() string {
	return s.env.T(i18n.KeyCaseFiles)
}

func (s *ChaptersScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: s.env.T(i18n.KeyHintNavigate)},
		{Key: "Enter", Description: s.env.T(i18n.KeyHintSelect)},
		{Key: "Esc", Description: s.env.T(i18n.KeyHintBack)},
	}
}

func (s *ChaptersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ChaptersScreen) View(width, height int) string {
	// Labels follow the language toggle.
	selected := s.menu.Selected
	s.menu = components.NewMenu(s.items())
	s.menu.Selected = selected

	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(width).Render(s.env.T(i18n.KeySelectCase)))
	b.WriteString("\n\n")
	menu := lipgloss.NewStyle().Width(components.ContentWidth(width)).Render(s.menu.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))
	if s.missing {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(s.env.T(i18n.KeyChapterMissing))))
	}
	return b.String()
}
