package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/casefile/internal/game"
	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/quiz"
	sess "github.com/abhisek/casefile/internal/session"
	"github.com/abhisek/casefile/internal/ui/components"
	"github.com/abhisek/casefile/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	c, ok := s.current()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n" + s.env.T(i18n.KeyNoQuestions))
	}
	if s.confirmQuit {
		return components.Center(components.FileCard(
			theme.Incorrect.Render(s.env.T(i18n.KeyAbandonTest)), components.ContentWidth(width)),
			width, height)
	}

	var b strings.Builder

	// Part and position line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + s.parts[s.index])
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf(s.env.T(i18n.KeyQuestionOf), s.index+1, len(s.cards)) +
			"   " + fmt.Sprintf(s.env.T(i18n.KeyAnswered), s.answered(), len(s.cards)))

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	if s.sheet.Mode() == sess.ModeTest {
		b.WriteString(s.renderHUD(width))
	} else {
		b.WriteString(theme.Hint.Render("  " + s.env.T(i18n.KeyStudyNote)))
	}
	b.WriteString("\n\n")

	cw := min(width-4, 100)
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(c.View(cw, s.env.Lang)))
	return b.String()
}

// renderHUD draws the credibility and case progress meters.
func (s *SessionScreen) renderHUD(width int) string {
	st := s.env.Game.State()
	barWidth := max((width-8)/2, 20)

	hp := components.NewProgressBar(s.env.T(i18n.KeyCredibility), float64(st.CurrentHP)/game.MaxHP, barWidth)
	hp.Value = fmt.Sprintf("%d", st.CurrentHP)
	hp.Danger = true

	progress := components.NewProgressBar(s.env.T(i18n.KeyCaseProgress), st.CaseProgress/game.MaxProgress, barWidth)
	progress.Value = fmt.Sprintf("%.0f%%", st.CaseProgress)

	return "  " + hp.View() + "  " + progress.View()
}

func (s *SessionScreen) answered() int {
	n := 0
	for _, q := range s.sheet.Questions() {
		if quiz.IsAnswered(s.sheet.Answer(q.Info().ID)) {
			n++
		}
	}
	return n
}
