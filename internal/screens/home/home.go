package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/casefile/internal/game"
	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/router"
	"github.com/abhisek/casefile/internal/screen"
	"github.com/abhisek/casefile/internal/screens/chapters"
	"github.com/abhisek/casefile/internal/screens/history"
	sessionscreen "github.com/abhisek/casefile/internal/screens/session"
	sess "github.com/abhisek/casefile/internal/session"
	"github.com/abhisek/casefile/internal/ui/components"
	"github.com/abhisek/casefile/internal/ui/layout"
)

// menuKeys are the main menu entries in display order.
var menuKeys = []i18n.Key{
	i18n.KeyStoryMode,
	i18n.KeyStudyMode,
	i18n.KeyTestMode,
	i18n.KeyHistory,
	i18n.KeyChangeDetective,
	i18n.KeyQuit,
}

// HomeScreen is the main menu.
type HomeScreen struct {
	env  *screen.Env
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. Mode screens are built only when chosen.
func New(env *screen.Env) *HomeScreen {
	h := &HomeScreen{env: env}

	actions := []func() tea.Cmd{
		func() tea.Cmd { return router.Push(chapters.New(env)) },
		func() tea.Cmd { return router.Push(sessionscreen.New(env, sess.ModeStudy)) },
		func() tea.Cmd { return router.Push(sessionscreen.New(env, sess.ModeTest)) },
		func() tea.Cmd { return router.Push(history.New(env)) },
		h.changeDetective,
		func() tea.Cmd { return tea.Quit },
	}
	items := make([]components.MenuItem, len(actions))
	for i, action := range actions {
		items[i] = components.MenuItem{Label: env.T(menuKeys[i]), Action: action}
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) changeDetective() tea.Cmd {
	h.env.Game.ClearCharacter()
	h.env.Logger.Info().Msg("detective cleared")
	next := h.env.Characters()
	return func() tea.Msg { return router.ResetScreenMsg{Screen: next} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return h.env.T(i18n.KeyAppTitle)
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: h.env.T(i18n.KeyHintNavigate)},
		{Key: "Enter", Description: h.env.T(i18n.KeyHintSelect)},
		{Key: "L", Description: h.env.T(i18n.KeyHintLanguage)},
		{Key: "Ctrl+C", Description: h.env.T(i18n.KeyHintQuit)},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer.
	compact := height+8 < 34 || width < 80
	cw := components.ContentWidth(width)
	st := h.env.Game.State()

	sections := []string{renderTitle(h.env.T(i18n.KeyAppTitle), h.env.T(i18n.KeyAppSubtitle), cw)}
	if !compact {
		sections = append(sections, renderBadgeBox(VariantFor(st), cw))
	}
	sections = append(sections,
		renderStatsBar(h.stats(st, cw-10), cw),
		renderMenu(h.labels(), h.menu.Selected, cw, compact),
	)

	return renderDesk(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) labels() []string {
	labels := make([]string, len(menuKeys))
	for i, k := range menuKeys {
		labels[i] = h.env.T(k)
	}
	return labels
}

func (h *HomeScreen) stats(st game.State, w int) []string {
	name := "?"
	if c, ok := h.env.Detective(); ok {
		name = c.Name
	}

	next := h.env.T(i18n.KeyTopRank)
	if t := game.NextLevelThreshold(st.CharacterLevel); t > 0 {
		next = fmt.Sprintf(h.env.T(i18n.KeyNextLevel), t)
	}

	hp := components.NewProgressBar(h.env.T(i18n.KeyCredibility), float64(st.CurrentHP)/game.MaxHP, w)
	hp.Value = fmt.Sprintf("%d/%d", st.CurrentHP, game.MaxHP)
	hp.Danger = st.CurrentHP <= alertHP

	progress := components.NewProgressBar(h.env.T(i18n.KeyCaseProgress), st.CaseProgress/game.MaxProgress, w)
	progress.Value = fmt.Sprintf("%.0f%%", st.CaseProgress)

	return []string{
		fmt.Sprintf("%s  ·  %s", name, fmt.Sprintf(h.env.T(i18n.KeyLevel), st.CharacterLevel)),
		fmt.Sprintf("%s  ·  %s", fmt.Sprintf(h.env.T(i18n.KeyPerfectCases), st.PerfectRuns), next),
		hp.View(),
		progress.View(),
	}
}
