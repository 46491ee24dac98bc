package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/router"
	"github.com/abhisek/casefile/internal/screen"
	"github.com/abhisek/casefile/internal/store"
	"github.com/abhisek/casefile/internal/ui/layout"
	"github.com/abhisek/casefile/internal/ui/theme"
)

// Limit is how many graded tests the screen loads.
const Limit = 50

type historyLoadedMsg struct {
	Results []store.TestResult
	Err     error
}

// HistoryScreen lists past graded tests, newest first.
type HistoryScreen struct {
	env      *screen.Env
	results  []store.TestResult
	selected int
	expanded map[int]bool
	loaded   bool
	failed   bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(env *screen.Env) *HistoryScreen {
	return &HistoryScreen{
		env:      env,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.env.Results
	logger := s.env.Logger
	return func() tea.Msg {
		if repo == nil {
			return historyLoadedMsg{}
		}
		results, err := repo.Recent(context.Background(), Limit)
		if err != nil {
			logger.Error().Err(err).Msg("load test history")
		}
		return historyLoadedMsg{Results: results, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return s.env.T(i18n.KeyHistory)
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: s.env.T(i18n.KeyHintNavigate)},
		{Key: "Enter", Description: s.env.T(i18n.KeyReview)},
		{Key: "Esc", Description: s.env.T(i18n.KeyHintBack)},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.failed = msg.Err != nil
		s.results = msg.Results
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, router.Back
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	notice := func(text string, c lipgloss.Style) string {
		return c.Width(width).Align(lipgloss.Center).Render("\n\n" + text)
	}
	switch {
	case s.failed:
		return notice(s.env.T(i18n.KeyLoadFailed), lipgloss.NewStyle().Foreground(theme.Error))
	case !s.loaded:
		return notice(s.env.T(i18n.KeyLoading), lipgloss.NewStyle().Foreground(theme.TextDim))
	case len(s.results) == 0:
		return notice(s.env.T(i18n.KeyNoHistory), lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true))
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, r := range s.results {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		stamp := ""
		if r.Perfect {
			stamp = "  ★"
		}
		line := fmt.Sprintf("%s%s  %-10s  %d/%d  %3d%%%s",
			prefix, r.FinishedAt.Local().Format("Jan 02, 2006 15:04"), s.detective(r.CharacterID),
			r.Score, r.Total, r.Percent, stamp)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    %s %d/100   %s %.0f%%   %s",
				s.env.T(i18n.KeyCredibility), r.HP,
				s.env.T(i18n.KeyCaseProgress), r.Progress,
				fmt.Sprintf(s.env.T(i18n.KeyLevel), r.Level))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *HistoryScreen) detective(id string) string {
	if c, ok := s.env.Content.Characters().Find(id); ok {
		return c.Name
	}
	return id
}
