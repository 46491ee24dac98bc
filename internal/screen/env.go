package screen

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/casefile/internal/content"
	"github.com/abhisek/casefile/internal/game"
	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/store"
)

// Results records and lists graded tests.
type Results interface {
	Append(ctx context.Context, res store.TestResult) (store.TestResult, error)
	Recent(ctx context.Context, limit int) ([]store.TestResult, error)
}

// Env is shared by every screen of one running app.
type Env struct {
	Game    *game.Store
	Content *content.Provider

	// Results may be nil, in which case graded tests are not recorded.
	Results Results

	Logger       zerolog.Logger
	AdvanceDelay time.Duration
	Lang         i18n.Language

	// Menu and Characters build the two root screens. Set by the app.
	Menu       func() Screen
	Characters func() Screen
}

// T looks up a UI string in the current language.
func (e *Env) T(key i18n.Key) string {
	return i18n.T(key, e.Lang)
}

// Text resolves content text in the current language.
func (e *Env) Text(t i18n.Text) string {
	return t.Get(e.Lang)
}

// ToggleLanguage switches to the next supported language.
func (e *Env) ToggleLanguage() i18n.Language {
	e.Lang = i18n.Next(e.Lang, i18n.Supported)
	return e.Lang
}

// Detective returns the selected character, if any.
func (e *Env) Detective() (game.Character, bool) {
	st := e.Game.State()
	if !st.HasCharacter() {
		return game.Character{}, false
	}
	return e.Content.Characters().Find(st.SelectedCharacterID)
}
