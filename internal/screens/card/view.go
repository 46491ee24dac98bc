package card

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/quiz"
	sess "github.com/abhisek/casefile/internal/session"
	"github.com/abhisek/casefile/internal/ui/components"
	"github.com/abhisek/casefile/internal/ui/theme"
)

// View renders the prompt, the answer area and, once answered in reveal
// mode, the explanation.
func (c Card) View(width int, lang i18n.Language) string {
	info := c.q.Info()
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		Render(info.Prompt.Get(lang)))
	b.WriteString("\n\n")

	switch q := c.q.(type) {
	case *quiz.SelectQuestion:
		b.WriteString(c.viewSelect(q, lang))
	case *quiz.FillInQuestion:
		b.WriteString(c.viewFillIn(q, lang))
	case *quiz.OrderingQuestion:
		b.WriteString(c.viewOrdering(q, lang))
	}

	if c.reveal && quiz.IsAnswered(c.Answer()) {
		if exp := info.Explanation.Get(lang); exp != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Width(width).Inherit(theme.Hint).
				Render(i18n.T(i18n.KeyExplanation, lang) + ": " + exp))
		}
	}
	return b.String()
}

func (c Card) viewSelect(q *quiz.SelectQuestion, lang i18n.Language) string {
	list := components.OptionList{Cursor: c.cursor, Multi: q.Multiple}
	for i, opt := range q.Options {
		row := components.OptionRow{Text: opt.Get(lang), Checked: c.sheet.Selected(q, i)}
		if c.reveal && row.Checked {
			row.Mark = markOf(q.IsCorrectOption(i))
		}
		list.Rows = append(list.Rows, row)
	}
	return list.View()
}

func (c Card) viewFillIn(q *quiz.FillInQuestion, lang i18n.Language) string {
	var b strings.Builder
	for i, blank := range q.Blanks {
		prefix := "  "
		style := theme.Unselected
		if i == c.cursor {
			prefix = "▸ "
			style = theme.Selected
		}
		b.WriteString(style.Render(prefix + blank.Label.Get(lang) + ": "))

		entry := c.sheet.Entry(q, blank.ID)
		switch {
		case c.editing && i == c.cursor:
			b.WriteString(c.input.View())
		case entry == "":
			b.WriteString(theme.Hint.Render("________"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Manila).Render(entry))
		}

		if c.sheet.BlankLocked(q, blank.ID) {
			b.WriteString(theme.Hint.Render("  (" + i18n.T(i18n.KeyLocked, lang) + ")"))
		}
		if c.reveal && entry != "" && !(c.editing && i == c.cursor) {
			ok := quiz.BlankCorrect(blank, entry, lang)
			b.WriteString(" " + markOf(ok).String())
			if !ok {
				b.WriteString(theme.Hint.Render(fmt.Sprintf("  %s: %s",
					i18n.T(i18n.KeyCorrectAnswer, lang), blank.Correct.Get(lang))))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (c Card) viewOrdering(q *quiz.OrderingQuestion, lang i18n.Language) string {
	if c.sub >= len(q.Subs) {
		return ""
	}
	sub := q.Subs[c.sub]
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("%d/%d  %s", c.sub+1, len(q.Subs), sub.Title.Get(lang))))
	b.WriteString("\n")

	order := c.sheet.Order(q, c.sub)
	highlight := c.cursor
	if c.grabbed != noStep {
		if moved, ok := sess.Move(order, c.grabbed, c.target); ok {
			order = moved
		}
		highlight = c.target
	}
	touched := c.touched(q)

	for pos, id := range order {
		step, _ := sub.Step(id)
		line := fmt.Sprintf("%d. %s", pos+1, step.Text.Get(lang))

		prefix := "  "
		style := theme.Unselected
		switch {
		case c.grabbed != noStep && pos == highlight:
			prefix = "⇅ "
			style = theme.Grabbed
		case pos == highlight:
			prefix = "▸ "
			style = theme.Selected
		}
		b.WriteString(style.Render(prefix + line))
		if c.reveal && touched && c.grabbed == noStep {
			b.WriteString(" " + markOf(quiz.StepCorrect(order, pos)).String())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// touched reports whether the learner has rearranged the visible sub-question.
func (c Card) touched(q *quiz.OrderingQuestion) bool {
	orders, _ := c.sheet.Answer(q.ID).(quiz.OrderingAnswer)
	_, ok := orders[c.sub]
	return ok
}

func markOf(correct bool) components.Mark {
	if correct {
		return components.MarkCorrect
	}
	return components.MarkIncorrect
}
