package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/casefile/internal/content"
	"github.com/abhisek/casefile/internal/game"
	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/router"
	"github.com/abhisek/casefile/internal/screen"
	"github.com/abhisek/casefile/internal/screens/character"
	"github.com/abhisek/casefile/internal/screens/home"
	"github.com/abhisek/casefile/internal/screens/welcome"
	"github.com/abhisek/casefile/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Game    *game.Store
	Content *content.Provider

	// Results records graded tests. May be nil.
	Results screen.Results

	Logger       zerolog.Logger
	Lang         i18n.Language
	AdvanceDelay time.Duration
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screen.Env
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel showing the welcome screen first.
func newAppModel(opts Options) AppModel {
	env := &screen.Env{
		Game:         opts.Game,
		Content:      opts.Content,
		Results:      opts.Results,
		Logger:       opts.Logger,
		AdvanceDelay: opts.AdvanceDelay,
		Lang:         opts.Lang,
	}
	if env.Lang == "" {
		env.Lang = i18n.Default
	}
	env.Menu = func() screen.Screen { return home.New(env) }
	env.Characters = func() screen.Screen { return character.New(env) }

	start := welcome.New(env.T(i18n.KeyAppSubtitle), func() screen.Screen {
		if env.Game.State().HasCharacter() {
			return env.Menu()
		}
		return env.Characters()
	})

	return AppModel{
		env:    env,
		router: router.New(start),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		key := msg.String()
		switch key {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.captured(key) {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Back
			}
			return m, nil
		case "L":
			if m.captured(key) {
				break
			}
			lang := m.env.ToggleLanguage()
			m.env.Logger.Debug().Str("lang", string(lang)).Msg("language switched")
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// captured reports whether the active screen wants key for itself.
func (m AppModel) captured(key string) bool {
	c, ok := m.router.Active().(screen.KeyCapturer)
	return ok && c.CapturesKey(key)
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	header := layout.RenderHeader(m.router.Active().Title(), m.hud(), m.width)
	footer := layout.RenderFooter(m.hints(), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) hud() layout.HUD {
	hud := layout.HUD{Language: string(m.env.Lang)}
	if c, ok := m.env.Detective(); ok {
		hud.Detective = c.Name
		hud.Level = fmt.Sprintf(m.env.T(i18n.KeyLevel), m.env.Game.State().CharacterLevel)
	}
	return hud
}

func (m AppModel) hints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: m.env.T(i18n.KeyHintBack)},
			{Key: "L", Description: m.env.T(i18n.KeyHintLanguage)},
			{Key: "Ctrl+C", Description: m.env.T(i18n.KeyHintQuit)},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: m.env.T(i18n.KeyHintNavigate)},
		{Key: "Enter", Description: m.env.T(i18n.KeyHintSelect)},
		{Key: "L", Description: m.env.T(i18n.KeyHintLanguage)},
		{Key: "Ctrl+C", Description: m.env.T(i18n.KeyHintQuit)},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		opts.Logger.Error().Err(err).Msg("program exited with error")
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
