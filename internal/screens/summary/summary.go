package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/casefile/internal/game"
	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/quiz"
	"github.com/abhisek/casefile/internal/router"
	"github.com/abhisek/casefile/internal/screen"
	sess "github.com/abhisek/casefile/internal/session"
	"github.com/abhisek/casefile/internal/ui/components"
	"github.com/abhisek/casefile/internal/ui/layout"
	"github.com/abhisek/casefile/internal/ui/theme"
)

// SummaryScreen shows the case report for a finished quiz.
type SummaryScreen struct {
	env     *screen.Env
	mode    sess.Mode
	outcome sess.Outcome
	offset  int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for outcome.
func New(env *screen.Env, mode sess.Mode, outcome sess.Outcome) *SummaryScreen {
	return &SummaryScreen{env: env, mode: mode, outcome: outcome}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return s.env.T(i18n.KeyResultsTitle)
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: s.env.T(i18n.KeyBackToMenu)},
		{Key: "↑↓", Description: s.env.T(i18n.KeyReview)},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, router.Back
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.outcome.Report.Questions)-1 {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	rep := s.outcome.Report
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.outcome.Perfect {
		b.WriteString(center(components.Stamp(strings.ToUpper(s.env.T(i18n.KeyPerfectCase)), true)))
		b.WriteString("\n\n")
	}

	score := fmt.Sprintf("%s: %d/%d  (%d%%)", s.env.T(i18n.KeyScore), rep.Score, rep.Total, rep.Percent())
	b.WriteString(center(theme.Title.Render(score)))
	b.WriteString("\n\n")

	if s.mode == sess.ModeTest {
		b.WriteString(s.renderEffects(width))
	}

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.env.T(i18n.KeyReview))))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("─", min(width-8, 60)))))
	b.WriteString("\n")

	used := lipgloss.Height(b.String())
	rows := height - used
	if rows < 1 {
		rows = 1
	}
	for i, qr := range rep.Questions {
		if i < s.offset {
			continue
		}
		if i-s.offset >= rows {
			break
		}
		b.WriteString(center(s.renderReviewRow(qr, width)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *SummaryScreen) renderEffects(width int) string {
	var b strings.Builder
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	if s.outcome.LeveledUp {
		b.WriteString(center(components.Stamp(fmt.Sprintf(s.env.T(i18n.KeyLevelUp), s.outcome.Level), true)))
		b.WriteString("\n")
	}
	if s.outcome.PenaltyApplied {
		b.WriteString(center(components.Stamp(s.env.T(i18n.KeyPenalty), false)))
		b.WriteString("\n")
	}

	st := s.outcome.State
	barWidth := min(width-8, 60)
	hp := components.NewProgressBar(s.env.T(i18n.KeyCredibility), float64(st.CurrentHP)/game.MaxHP, barWidth)
	hp.Value = fmt.Sprintf("%d/%d", st.CurrentHP, game.MaxHP)
	hp.Danger = true
	progress := components.NewProgressBar(s.env.T(i18n.KeyCaseProgress), st.CaseProgress/game.MaxProgress, barWidth)
	progress.Value = fmt.Sprintf("%.0f%%", st.CaseProgress)

	b.WriteString(center(hp.View()))
	b.WriteString("\n")
	b.WriteString(center(progress.View()))
	b.WriteString("\n")
	b.WriteString(center(theme.Hint.Render(fmt.Sprintf(s.env.T(i18n.KeyPerfectCases), st.PerfectRuns))))
	b.WriteString("\n\n")
	return b.String()
}

func (s *SummaryScreen) renderReviewRow(qr quiz.QuestionReport, width int) string {
	units := quiz.Units(qr.Question)
	got := qr.Result.CorrectUnits()

	mark := components.MarkIncorrect
	style := theme.Incorrect
	if qr.Result.Correct {
		mark = components.MarkCorrect
		style = theme.Correct
	}

	status := fmt.Sprintf(s.env.T(i18n.KeyUnitsCorrect), got, units)
	if !qr.Answered() {
		status = s.env.T(i18n.KeyUnanswered)
	}

	prompt := truncate(s.env.Text(qr.Question.Info().Prompt), max(width-30, 20))
	return mark.String() + " " + theme.Body.Render(prompt) + "  " + style.Render(status)
}

// truncate shortens s to n runes, adding an ellipsis when it cuts.
func truncate(s string, n int) string {
	r := []rune(strings.ReplaceAll(s, "\n", " "))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}
