package card

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/casefile/internal/game"
	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/quiz"
	sess "github.com/abhisek/casefile/internal/session"
)

func txt(en string) i18n.Text {
	return i18n.Text{i18n.English: en}
}

func selectQ(multi bool) *quiz.SelectQuestion {
	return &quiz.SelectQuestion{
		Base:     quiz.Base{ID: "s1", Prompt: txt("Which one?"), Explanation: txt("Because beta.")},
		Multiple: multi,
		Options:  []i18n.Text{txt("alpha"), txt("beta"), txt("gamma")},
		Correct:  []int{1},
	}
}

func fillQ() *quiz.FillInQuestion {
	return &quiz.FillInQuestion{
		Base: quiz.Base{ID: "f1", Prompt: txt("Fill it")},
		Blanks: []quiz.Blank{
			{ID: 0, Label: txt("Phase"), Correct: txt("single")},
			{ID: 1, Label: txt("Voltage"), Correct: txt("200")},
		},
	}
}

func orderQ() *quiz.OrderingQuestion {
	return &quiz.OrderingQuestion{
		Base: quiz.Base{ID: "o1", Prompt: txt("Order it")},
		Subs: []quiz.SubQuestion{
			{Title: txt("First"), Steps: []quiz.Step{{ID: 1, Text: txt("one")}, {ID: 0, Text: txt("zero")}, {ID: 2, Text: txt("two")}}},
			{Title: txt("Second"), Steps: []quiz.Step{{ID: 0, Text: txt("a")}, {ID: 1, Text: txt("b")}}},
		},
	}
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func press(c Card, keys ...string) Card {
	for _, k := range keys {
		c, _ = c.Update(key(k), i18n.English)
	}
	return c
}

func typeText(c Card, s string) Card {
	for _, r := range s {
		c, _ = c.Update(tea.KeyPressMsg{Code: r, Text: string(r)}, i18n.English)
	}
	return c
}

func TestSelectSingle(t *testing.T) {
	q := selectQ(false)
	sheet := sess.NewStudy([]quiz.Question{q})
	c := New(q, sheet, false)

	c = press(c, "down", "space")
	assert.Equal(t, quiz.SelectAnswer{1}, c.Answer())

	c = press(c, "3")
	assert.Equal(t, quiz.SelectAnswer{2}, c.Answer())
	assert.Equal(t, 2, c.cursor)
}

func TestSelectMultiToggles(t *testing.T) {
	q := selectQ(true)
	sheet := sess.NewStudy([]quiz.Question{q})
	c := New(q, sheet, false)

	c = press(c, "space", "down", "space", "up", "space")
	assert.Equal(t, quiz.SelectAnswer{1}, c.Answer())
}

func TestSelectCursorBounded(t *testing.T) {
	q := selectQ(false)
	c := New(q, sess.NewStudy([]quiz.Question{q}), false)

	c = press(c, "up", "down", "down", "down", "down")
	assert.Equal(t, 2, c.cursor)
}

func TestRevealMarksAndExplains(t *testing.T) {
	q := selectQ(false)
	c := New(q, sess.NewStudy([]quiz.Question{q}), true)

	assert.NotContains(t, c.View(80, i18n.English), "Because beta.")

	c = press(c, "space")
	out := c.View(80, i18n.English)
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "Because beta.")
}

func TestHiddenWithoutReveal(t *testing.T) {
	q := selectQ(false)
	c := New(q, sess.NewStudy([]quiz.Question{q}), false)

	c = press(c, "space")
	out := c.View(80, i18n.English)
	assert.NotContains(t, out, "✗")
	assert.NotContains(t, out, "Because beta.")
}

func TestFillInEditAndCommit(t *testing.T) {
	q := fillQ()
	sheet := sess.NewStudy([]quiz.Question{q})
	c := New(q, sheet, false)

	c = press(c, "enter")
	require.True(t, c.Editing())
	assert.True(t, c.Busy())

	c = typeText(c, "single")
	assert.Equal(t, "single", sheet.Entry(q, 0))

	c = press(c, "enter")
	assert.False(t, c.Editing())
	assert.Equal(t, quiz.FillInAnswer{0: "single"}, c.Answer())
}

func TestFillInTabMovesToNextBlank(t *testing.T) {
	q := fillQ()
	sheet := sess.NewStudy([]quiz.Question{q})
	c := New(q, sheet, false)

	c = press(c, "enter")
	c = typeText(c, "single")
	c = press(c, "tab")
	assert.Equal(t, 1, c.cursor)

	c = press(c, "enter")
	c = typeText(c, "200")
	c = press(c, "esc")
	assert.False(t, c.Editing())
	assert.True(t, quiz.Evaluate(q, c.Answer(), i18n.English).Correct)
}

func TestFillInLockedInTest(t *testing.T) {
	q := fillQ()
	g := game.NewStore(game.NewState().SelectCharacter("conan"), nil, zerolog.Nop())
	sheet := sess.NewTest([]quiz.Question{q}, g)
	c := New(q, sheet, false)

	c = press(c, "enter")
	c = typeText(c, "wrong")
	c = press(c, "enter")
	assert.Equal(t, game.MaxHP-game.HPLoss, g.State().CurrentHP)

	c = press(c, "enter")
	assert.False(t, c.Editing(), "committed blank cannot be reopened in test mode")
	assert.Contains(t, c.View(80, i18n.English), "locked")
}

func TestOrderingGrabAndDrop(t *testing.T) {
	q := orderQ()
	sheet := sess.NewStudy([]quiz.Question{q})
	c := New(q, sheet, false)

	// Presentation order is [1 0 2]; move step 0 to the top.
	c = press(c, "down", "space")
	assert.True(t, c.Busy())
	assert.Equal(t, []int{1, 0, 2}, sheet.Order(q, 0), "nothing moves until the drop")

	c = press(c, "up", "space")
	assert.False(t, c.Busy())
	assert.Equal(t, []int{0, 1, 2}, sheet.Order(q, 0))
	assert.Equal(t, 0, c.cursor)
}

func TestOrderingEscCancelsGrab(t *testing.T) {
	q := orderQ()
	sheet := sess.NewStudy([]quiz.Question{q})
	c := New(q, sheet, false)

	c = press(c, "space", "down", "esc")
	assert.False(t, c.Busy())
	assert.Nil(t, c.Answer())
}

func TestOrderingSwitchSub(t *testing.T) {
	q := orderQ()
	sheet := sess.NewStudy([]quiz.Question{q})
	c := New(q, sheet, false)

	c = press(c, "right")
	assert.Equal(t, 1, c.sub)
	assert.Contains(t, c.View(80, i18n.English), "Second")

	c = press(c, "right")
	assert.Equal(t, 1, c.sub)

	c = press(c, "left")
	assert.Equal(t, 0, c.sub)
}

func TestOrderingTestModeEffects(t *testing.T) {
	q := orderQ()
	g := game.NewStore(game.NewState().SelectCharacter("conan"), nil, zerolog.Nop())
	sheet := sess.NewTest([]quiz.Question{q}, g)
	c := New(q, sheet, false)

	// Step 0 moves from position 1 to 0: it becomes correct.
	press(c, "down", "space", "up", "space")
	assert.Greater(t, g.State().CaseProgress, 0.0)
	assert.Equal(t, game.MaxHP, g.State().CurrentHP)
}

func TestKeyHintsPerKind(t *testing.T) {
	single := selectQ(false)
	hints := New(single, sess.NewStudy([]quiz.Question{single}), false).KeyHints(i18n.English)
	assert.Equal(t, "Select", hints[1].Description)

	multi := selectQ(true)
	hints = New(multi, sess.NewStudy([]quiz.Question{multi}), false).KeyHints(i18n.English)
	assert.Equal(t, "Toggle", hints[1].Description)

	o := orderQ()
	hints = New(o, sess.NewStudy([]quiz.Question{o}), false).KeyHints(i18n.English)
	assert.Len(t, hints, 3)
}
