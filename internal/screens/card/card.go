// Package card renders a single question and feeds key presses into an
// answer sheet. The quiz and story screens both embed it.
package card

import (
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/quiz"
	sess "github.com/abhisek/casefile/internal/session"
	"github.com/abhisek/casefile/internal/ui/components"
	"github.com/abhisek/casefile/internal/ui/layout"
)

const noStep = -1

// Card is the interactive view of one question.
type Card struct {
	q      quiz.Question
	sheet  *sess.Session
	reveal bool

	// cursor is the option, blank or row under the pointer.
	cursor int

	// sub is the visible ordering sub-question.
	sub int

	// grabbed is the step id being moved, target its preview position.
	grabbed int
	target  int

	editing bool
	input   components.TextInput
}

// New creates a card for q that records answers in sheet. With reveal set,
// answered units are marked right or wrong as soon as they are entered.
func New(q quiz.Question, sheet *sess.Session, reveal bool) Card {
	return Card{q: q, sheet: sheet, reveal: reveal, grabbed: noStep}
}

// Question returns the question on the card.
func (c Card) Question() quiz.Question { return c.q }

// Answer returns what has been entered so far.
func (c Card) Answer() quiz.Answer { return c.sheet.Answer(c.q.Info().ID) }

// SetReveal turns answer marking on or off.
func (c *Card) SetReveal(on bool) { c.reveal = on }

// Editing reports whether a blank is being typed into. While editing every
// key belongs to the card.
func (c Card) Editing() bool { return c.editing }

// Busy reports whether the card is in the middle of an edit or a move, in
// which case esc cancels that instead of leaving the screen.
func (c Card) Busy() bool { return c.editing || c.grabbed != noStep }

// Update routes a message to the handler for the question kind.
func (c Card) Update(msg tea.Msg, lang i18n.Language) (Card, tea.Cmd) {
	if c.editing {
		return c.updateEditing(msg, lang)
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch q := c.q.(type) {
	case *quiz.SelectQuestion:
		c.updateSelect(q, key.String())
	case *quiz.FillInQuestion:
		return c.updateFillIn(q, key.String(), lang)
	case *quiz.OrderingQuestion:
		c.updateOrdering(q, key.String())
	}
	return c, nil
}

func (c *Card) updateSelect(q *quiz.SelectQuestion, key string) {
	switch key {
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < len(q.Options)-1 {
			c.cursor++
		}
	case "space", "enter":
		c.sheet.Select(q, c.cursor)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(q.Options) {
			c.cursor = n - 1
			c.sheet.Select(q, c.cursor)
		}
	}
}

func (c Card) updateFillIn(q *quiz.FillInQuestion, key string, lang i18n.Language) (Card, tea.Cmd) {
	switch key {
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < len(q.Blanks)-1 {
			c.cursor++
		}
	case "enter":
		if c.cursor >= len(q.Blanks) || c.sheet.Finished() {
			return c, nil
		}
		b := q.Blanks[c.cursor]
		if c.sheet.BlankLocked(q, b.ID) {
			return c, nil
		}
		c.editing = true
		c.input = components.NewTextInput(i18n.T(i18n.KeyTypeAnswer, lang), c.sheet.Entry(q, b.ID), 80)
		return c, c.input.Init()
	}
	return c, nil
}

// updateEditing feeds keys to the text input. Enter, tab and esc all leave
// the blank, which commits it.
func (c Card) updateEditing(msg tea.Msg, lang i18n.Language) (Card, tea.Cmd) {
	q := c.q.(*quiz.FillInQuestion)
	b := q.Blanks[c.cursor]

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "tab", "esc":
			c.editing = false
			c.sheet.SetBlank(q, b.ID, c.input.Value())
			c.sheet.CommitBlank(q, b.ID, lang)
			if key.String() == "tab" && c.cursor < len(q.Blanks)-1 {
				c.cursor++
			}
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	c.sheet.SetBlank(q, b.ID, c.input.Value())
	return c, cmd
}

func (c *Card) updateOrdering(q *quiz.OrderingQuestion, key string) {
	order := c.sheet.Order(q, c.sub)

	if c.grabbed != noStep {
		switch key {
		case "up", "k":
			if c.target > 0 {
				c.target--
			}
		case "down", "j":
			if c.target < len(order)-1 {
				c.target++
			}
		case "space", "enter":
			c.sheet.MoveStep(q, c.sub, c.grabbed, c.target)
			c.cursor = c.target
			c.grabbed = noStep
		case "esc":
			c.grabbed = noStep
		}
		return
	}

	switch key {
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < len(order)-1 {
			c.cursor++
		}
	case "left", "h":
		if c.sub > 0 {
			c.sub--
			c.cursor = 0
		}
	case "right", "l":
		if c.sub < len(q.Subs)-1 {
			c.sub++
			c.cursor = 0
		}
	case "space", "enter":
		if c.sheet.Finished() || c.cursor >= len(order) {
			return
		}
		c.grabbed = order[c.cursor]
		c.target = c.cursor
	}
}

// KeyHints describes the keys the card currently responds to.
func (c Card) KeyHints(lang i18n.Language) []layout.KeyHint {
	t := func(k i18n.Key) string { return i18n.T(k, lang) }
	switch q := c.q.(type) {
	case *quiz.SelectQuestion:
		action := t(i18n.KeyHintSelect)
		if q.Multiple {
			action = t(i18n.KeyHintToggle)
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: t(i18n.KeyHintNavigate)},
			{Key: "Space", Description: action},
		}
	case *quiz.FillInQuestion:
		if c.editing {
			return []layout.KeyHint{{Key: "Enter", Description: t(i18n.KeyHintDone)}}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: t(i18n.KeyHintNavigate)},
			{Key: "Enter", Description: t(i18n.KeyHintEdit)},
		}
	case *quiz.OrderingQuestion:
		if c.grabbed != noStep {
			return []layout.KeyHint{
				{Key: "↑↓", Description: t(i18n.KeyHintNavigate)},
				{Key: "Space", Description: t(i18n.KeyHintDrop)},
			}
		}
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: t(i18n.KeyHintNavigate)},
			{Key: "Space", Description: t(i18n.KeyHintGrab)},
		}
		if len(q.Subs) > 1 {
			hints = append(hints, layout.KeyHint{Key: "←→", Description: t(i18n.KeyHintSubQuestion)})
		}
		return hints
	}
	return nil
}
