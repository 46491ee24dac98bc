package story

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/casefile/internal/content"
	"github.com/abhisek/casefile/internal/game"
	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/router"
	"github.com/abhisek/casefile/internal/screen"
	flow "github.com/abhisek/casefile/internal/story"
)

var (
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keySpace = tea.KeyPressMsg{Code: tea.KeySpace}
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyEsc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	keyC     = tea.KeyPressMsg{Code: 'c', Text: "c"}
)

func newScreen(t *testing.T, chapter int) (*StoryScreen, *screen.Env) {
	t.Helper()
	p, err := content.Default()
	require.NoError(t, err)
	env := &screen.Env{
		Game:    game.NewStore(game.NewState().SelectCharacter("conan"), nil, zerolog.Nop()),
		Content: p,
		Logger:  zerolog.Nop(),
		Lang:    i18n.English,
	}
	ctl := flow.NewController(p.Chapters(), p, env.Game, flow.Options{Delay: time.Millisecond, Logger: zerolog.Nop()})
	require.Equal(t, flow.SignalNone, ctl.Start(chapter))
	return New(env, ctl), env
}

func isPop(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(router.PopScreenMsg)
	return ok
}

func TestStoryNarrativeAdvances(t *testing.T) {
	s, env := newScreen(t, 0)

	assert.Contains(t, s.View(100, 40), "Inspector Megure")
	s.Update(keyEnter)
	assert.Equal(t, 1, env.Game.State().CurrentSceneIndex)
	assert.Contains(t, s.View(100, 40), "Conan")
}

func TestStoryQuestionNeedsAnswer(t *testing.T) {
	s, env := newScreen(t, 0)
	s.Update(keyEnter)
	s.Update(keySpace)
	require.True(t, s.hasCard)

	s.Update(keyC)
	assert.Contains(t, s.View(100, 40), "Please provide an answer.")
	assert.Equal(t, game.MaxHP, env.Game.State().CurrentHP)
}

func TestStoryWrongThenRight(t *testing.T) {
	s, env := newScreen(t, 0)
	s.Update(keyEnter)
	s.Update(keyEnter) // now on the question scene

	// p1q1: option A is wrong.
	s.Update(keySpace)
	s.Update(keyC)
	s.Update(keyC)
	assert.Equal(t, game.MaxHP-game.HPLoss, env.Game.State().CurrentHP, "same wrong answer is charged once")
	assert.Contains(t, s.View(100, 40), "doesn't seem right")

	s.Update(keyDown)
	s.Update(keyDown)
	s.Update(keySpace)
	_, cmd := s.Update(keyC)
	require.NotNil(t, cmd, "correct answer schedules the advance")
	assert.Contains(t, s.View(100, 40), "Correct!")
	assert.Equal(t, 2, env.Game.State().CurrentSceneIndex, "cursor waits for the timer")

	// Keys are ignored while waiting.
	s.Update(keyC)
	assert.Equal(t, 2, env.Game.State().CurrentSceneIndex)

	s.Update(cmd())
	assert.Equal(t, 3, env.Game.State().CurrentSceneIndex)
	assert.False(t, s.hasCard)
	assert.Contains(t, s.View(100, 40), "Haibara")
}

func TestStoryStaleAdvanceIgnored(t *testing.T) {
	s, env := newScreen(t, 0)
	s.Update(advanceMsg{at: sceneRef{0, 0}})
	assert.Equal(t, 0, env.Game.State().CurrentSceneIndex)
}

func TestStoryConclusionReturns(t *testing.T) {
	s, env := newScreen(t, 0)
	st := env.Game.State()
	for st.CurrentSceneIndex < 4 {
		env.Game.AdvanceStory()
		st = env.Game.State()
	}
	s.sync()

	assert.Contains(t, s.View(100, 40), "Case Solved!")
	_, cmd := s.Update(keyEnter)
	assert.True(t, isPop(cmd))
}

func TestStoryEscLeaves(t *testing.T) {
	s, _ := newScreen(t, 1)
	_, cmd := s.Update(keyEsc)
	assert.True(t, isPop(cmd))
}

func TestStoryCapturesWhileTyping(t *testing.T) {
	s, _ := newScreen(t, 0)
	assert.False(t, s.CapturesKey("L"))
	assert.False(t, s.CapturesKey("esc"))
}

func TestStoryTitleIsChapter(t *testing.T) {
	s, env := newScreen(t, 1)
	assert.True(t, strings.HasPrefix(s.Title(), "Chapter 2"))

	env.ToggleLanguage()
	assert.True(t, strings.HasPrefix(s.Title(), "Chương 2"))
}
