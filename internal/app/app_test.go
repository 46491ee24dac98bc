package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/casefile/internal/content"
	"github.com/abhisek/casefile/internal/game"
	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/router"
	"github.com/abhisek/casefile/internal/screens/character"
	"github.com/abhisek/casefile/internal/screens/home"
	sessionscreen "github.com/abhisek/casefile/internal/screens/session"
	sess "github.com/abhisek/casefile/internal/session"
)

func newModel(t *testing.T, st game.State) AppModel {
	t.Helper()
	p, err := content.Default()
	require.NoError(t, err)
	return newAppModel(Options{
		Game:    game.NewStore(st, nil, zerolog.Nop()),
		Content: p,
		Logger:  zerolog.Nop(),
	})
}

// send delivers msg and feeds any resulting navigation message back in.
func send(m AppModel, msg tea.Msg) AppModel {
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg, router.ResetScreenMsg:
		next, _ = m.Update(out)
		m = next.(AppModel)
	}
	return m
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestWelcomeLeadsToCharacterSelection(t *testing.T) {
	m := newModel(t, game.NewState())
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.IsType(t, &character.CharacterScreen{}, m.router.Active())
	assert.Equal(t, 1, m.router.Depth())
}

func TestWelcomeLeadsToMenuWithDetective(t *testing.T) {
	m := newModel(t, game.NewState().SelectCharacter("conan"))
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
}

func TestSelectingDetectiveOpensMenu(t *testing.T) {
	m := newModel(t, game.NewState())
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
	assert.Equal(t, "conan", m.env.Game.State().SelectedCharacterID)
}

func TestLanguageToggle(t *testing.T) {
	m := newModel(t, game.NewState())
	assert.Equal(t, i18n.English, m.env.Lang)

	m = send(m, key('L'))
	assert.Equal(t, i18n.Vietnamese, m.env.Lang)

	m = send(m, key('L'))
	assert.Equal(t, i18n.English, m.env.Lang)
}

func TestEscPopsToMenu(t *testing.T) {
	m := newModel(t, game.NewState().SelectCharacter("conan"))
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m = send(m, tea.KeyPressMsg{Code: tea.KeyDown})
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.IsType(t, &sessionscreen.SessionScreen{}, m.router.Active())
	require.Equal(t, 2, m.router.Depth())

	m = send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())

	m = send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())
}

func TestEscInTestModeAsksFirst(t *testing.T) {
	m := newModel(t, game.NewState().SelectCharacter("conan"))
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m.router.Push(sessionscreen.New(m.env, sess.ModeTest))

	m = send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.IsType(t, &sessionscreen.SessionScreen{}, m.router.Active())

	m = send(m, key('y'))
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
}

func TestCtrlCQuits(t *testing.T) {
	m := newModel(t, game.NewState())
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)

	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestViewShowsHUD(t *testing.T) {
	m := newModel(t, game.NewState().SelectCharacter("conan"))
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	out := m.render()
	assert.Contains(t, out, "Conan Edogawa")
	assert.Contains(t, out, "Level 1")
	assert.Contains(t, out, "EN")
}
