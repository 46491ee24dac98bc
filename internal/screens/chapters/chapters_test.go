package chapters

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/casefile/internal/content"
	"github.com/abhisek/casefile/internal/game"
	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/router"
	"github.com/abhisek/casefile/internal/screen"
	storyscreen "github.com/abhisek/casefile/internal/screens/story"
)

func newScreen(t *testing.T) (*ChaptersScreen, *screen.Env) {
	t.Helper()
	p, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	st := game.NewState().SelectCharacter("conan")
	st.CurrentHP = 20
	env := &screen.Env{
		Game:    game.NewStore(st, nil, zerolog.Nop()),
		Content: p,
		Logger:  zerolog.Nop(),
		Lang:    i18n.English,
	}
	return New(env), env
}

func TestChaptersListed(t *testing.T) {
	s, _ := newScreen(t)
	view := s.View(100, 30)
	if !strings.Contains(view, "Chapter 1: The Case of the Missing Manual") {
		t.Error("expected chapter 1 title")
	}
	if !strings.Contains(view, "Chapter 2: The Sabotaged Power Supply") {
		t.Error("expected chapter 2 title")
	}
}

func TestChaptersOpenStartsChapter(t *testing.T) {
	s, env := newScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*storyscreen.StoryScreen); !ok {
		t.Errorf("expected story screen, got %T", push.Screen)
	}

	st := env.Game.State()
	if st.CurrentChapterIndex != 1 || st.CurrentSceneIndex != 0 {
		t.Errorf("cursor = %d/%d, want 1/0", st.CurrentChapterIndex, st.CurrentSceneIndex)
	}
	if st.CurrentHP != game.MaxHP {
		t.Errorf("hp = %d, starting a chapter refills credibility", st.CurrentHP)
	}
}

func TestChaptersOpenUnknown(t *testing.T) {
	s, _ := newScreen(t)
	if cmd := s.open(9); cmd != nil {
		t.Error("unknown chapter should not push")
	}
	if !strings.Contains(s.View(100, 30), "could not be found") {
		t.Error("expected the missing chapter notice")
	}
}

func TestChaptersFollowLanguage(t *testing.T) {
	s, env := newScreen(t)
	env.ToggleLanguage()
	if !strings.Contains(s.View(100, 30), "Chương 1") {
		t.Error("expected Vietnamese chapter titles")
	}
	if s.Title() != "Cốt truyện: Hồ sơ vụ án" {
		t.Errorf("Title = %q", s.Title())
	}
}
