package story

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/casefile/internal/game"
	"github.com/abhisek/casefile/internal/i18n"
	flow "github.com/abhisek/casefile/internal/story"
	"github.com/abhisek/casefile/internal/ui/components"
	"github.com/abhisek/casefile/internal/ui/theme"
)

func (s *StoryScreen) View(width, height int) string {
	ch, scene, ok := s.ctl.Current()
	if !ok {
		return components.Center(theme.Incorrect.Render(s.env.T(i18n.KeyChapterMissing)), width, height)
	}
	cw := components.ContentWidth(width)
	st := s.env.Game.State()

	var b strings.Builder
	b.WriteString(s.renderMeter(st, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(fmt.Sprintf("%d / %d", st.CurrentSceneIndex+1, len(ch.Scenes)))))
	b.WriteString("\n\n")

	var body string
	switch sc := scene.(type) {
	case *flow.NarrativeScene:
		speaker := s.env.Content.Speaker(sc.Speaker)
		body = theme.Speaker.Render(speaker.Name) + "\n\n" +
			lipgloss.NewStyle().Width(cw-6).Foreground(theme.Text).Render(s.env.Text(sc.Dialogue))
	case *flow.QuestionScene:
		body = s.renderQuestion(sc, cw)
	case *flow.ConclusionScene:
		body = components.Stamp(s.env.Text(sc.Title), true) + "\n\n" +
			lipgloss.NewStyle().Width(cw-6).Foreground(theme.Text).Render(s.env.Text(sc.Summary)) + "\n\n" +
			theme.Hint.Render(s.env.T(i18n.KeyEndOfChapter))
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.FileCard(body, cw)))
	return b.String()
}

func (s *StoryScreen) renderQuestion(sc *flow.QuestionScene, cw int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Width(cw - 6).Inherit(theme.Hint).Render(s.env.Text(sc.Prompt)))
	b.WriteString("\n\n")
	if s.hasCard {
		b.WriteString(s.card.View(cw-6, s.env.Lang))
	}
	if s.feedback != "" {
		style := theme.Hint
		switch s.feedbackKind {
		case feedbackWrong:
			style = theme.Incorrect
		case feedbackRight:
			style = theme.Correct
		}
		b.WriteString("\n")
		b.WriteString(style.Render(s.env.T(s.feedback)))
	}
	return b.String()
}

func (s *StoryScreen) renderMeter(st game.State, width int) string {
	hp := components.NewProgressBar(s.env.T(i18n.KeyCredibility), float64(st.CurrentHP)/game.MaxHP, min(width-8, 50))
	hp.Value = fmt.Sprintf("%d/%d", st.CurrentHP, game.MaxHP)
	hp.Danger = true
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, hp.View())
}
