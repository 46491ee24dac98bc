package session

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/casefile/internal/content"
	"github.com/abhisek/casefile/internal/game"
	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/quiz"
	"github.com/abhisek/casefile/internal/router"
	"github.com/abhisek/casefile/internal/screen"
	"github.com/abhisek/casefile/internal/screens/summary"
	sess "github.com/abhisek/casefile/internal/session"
	"github.com/abhisek/casefile/internal/store"
)

// mockResults implements screen.Results for testing.
type mockResults struct {
	appended []store.TestResult
}

func (m *mockResults) Append(_ context.Context, r store.TestResult) (store.TestResult, error) {
	r.ID = "saved"
	m.appended = append(m.appended, r)
	return r, nil
}

func (m *mockResults) Recent(_ context.Context, _ int) ([]store.TestResult, error) {
	return m.appended, nil
}

func newEnv(t *testing.T, results screen.Results) *screen.Env {
	t.Helper()
	p, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	st := game.NewState().SelectCharacter("conan")
	st.CurrentHP = 30
	st.CaseProgress = 60
	return &screen.Env{
		Game:    game.NewStore(st, nil, zerolog.Nop()),
		Content: p,
		Results: results,
		Logger:  zerolog.Nop(),
		Lang:    i18n.English,
	}
}

func press(s *SessionScreen, keys ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = s.Update(k)
	}
	return cmd
}

func char(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

var (
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyEsc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	keySpace = tea.KeyPressMsg{Code: tea.KeySpace}
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
)

// collect runs cmd and any batched commands, returning every message.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestSessionScreen_TestModeResetsMeters(t *testing.T) {
	env := newEnv(t, nil)
	New(env, sess.ModeTest)

	st := env.Game.State()
	if st.CurrentHP != game.MaxHP || st.CaseProgress != 0 {
		t.Errorf("meters not reset: hp=%d progress=%v", st.CurrentHP, st.CaseProgress)
	}
}

func TestSessionScreen_StudyLeavesMeters(t *testing.T) {
	env := newEnv(t, nil)
	s := New(env, sess.ModeStudy)
	press(s, keySpace)

	st := env.Game.State()
	if st.CurrentHP != 30 || st.CaseProgress != 60 {
		t.Errorf("study mode changed meters: hp=%d progress=%v", st.CurrentHP, st.CaseProgress)
	}
}

func TestSessionScreen_QuestionsInPartOrder(t *testing.T) {
	env := newEnv(t, nil)
	s := New(env, sess.ModeStudy)

	if len(s.cards) != len(env.Content.Questions()) {
		t.Fatalf("cards = %d, want %d", len(s.cards), len(env.Content.Questions()))
	}
	if got := s.cards[0].Question().Info().Part; got != "part1" {
		t.Errorf("first question part = %q", got)
	}
	if s.parts[0] != env.Content.PartTitle("part1", i18n.English) {
		t.Errorf("part title = %q", s.parts[0])
	}
}

func TestSessionScreen_NavigateQuestions(t *testing.T) {
	env := newEnv(t, nil)
	s := New(env, sess.ModeStudy)

	press(s, char('p'))
	if s.index != 0 {
		t.Errorf("index = %d after p at start", s.index)
	}
	press(s, char('n'), char('n'))
	if s.index != 2 {
		t.Errorf("index = %d, want 2", s.index)
	}
	for i := 0; i < 20; i++ {
		press(s, char('n'))
	}
	if s.index != len(s.cards)-1 {
		t.Errorf("index = %d, want last", s.index)
	}
}

func TestSessionScreen_FirstAnswerCharged(t *testing.T) {
	env := newEnv(t, nil)
	s := New(env, sess.ModeTest)

	// p1q1 is correct at option 2; choosing A is wrong.
	press(s, keySpace)
	if hp := env.Game.State().CurrentHP; hp != game.MaxHP-game.HPLoss {
		t.Fatalf("hp = %d after wrong answer", hp)
	}
	press(s, char('3'))
	if hp := env.Game.State().CurrentHP; hp != game.MaxHP-game.HPLoss {
		t.Errorf("hp = %d, later answers must not be charged", hp)
	}
	if p := env.Game.State().CaseProgress; p != 0 {
		t.Errorf("progress = %v, later answers must not be rewarded", p)
	}
}

func TestSessionScreen_TypingCapturesKeys(t *testing.T) {
	env := newEnv(t, nil)
	s := New(env, sess.ModeStudy)

	// p1q4 is the first fill-in question.
	for s.cards[s.index].Question().Kind() != quiz.KindFillIn {
		press(s, char('n'))
	}
	press(s, keyEnter)
	if !s.CapturesKey("L") || !s.CapturesKey("esc") {
		t.Fatal("editing a blank should capture every key")
	}

	press(s, char('n'), char('s'))
	if s.sheet.Finished() {
		t.Fatal("typing s into a blank must not submit")
	}
	press(s, keyEnter)
	if s.CapturesKey("L") {
		t.Error("keys should be released after leaving the blank")
	}

	q := s.cards[s.index].Question().(*quiz.FillInQuestion)
	if got := s.sheet.Entry(q, q.Blanks[0].ID); got != "ns" {
		t.Errorf("entry = %q, want %q", got, "ns")
	}
}

func TestSessionScreen_SubmitStudy(t *testing.T) {
	env := newEnv(t, &mockResults{})
	s := New(env, sess.ModeStudy)

	msgs := collect(press(s, char('s')))
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	replace, ok := msgs[0].(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msgs[0])
	}
	if _, ok := replace.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", replace.Screen)
	}
	if len(env.Results.(*mockResults).appended) != 0 {
		t.Error("study mode must not record history")
	}
}

func TestSessionScreen_SubmitTestRecordsResult(t *testing.T) {
	results := &mockResults{}
	env := newEnv(t, results)
	s := New(env, sess.ModeTest)

	press(s, keyDown, keyDown, keySpace) // p1q1 correct
	msgs := collect(press(s, char('s')))

	var replaced bool
	for _, m := range msgs {
		if _, ok := m.(router.ReplaceScreenMsg); ok {
			replaced = true
		}
	}
	if !replaced {
		t.Error("expected the results screen")
	}
	if len(results.appended) != 1 {
		t.Fatalf("appended = %d, want 1", len(results.appended))
	}
	got := results.appended[0]
	if got.CharacterID != "conan" || got.Score != 1 || got.Total != 20 || got.Percent != 5 {
		t.Errorf("unexpected result %+v", got)
	}
	if got.HP != game.MaxHP {
		t.Errorf("hp = %d", got.HP)
	}
}

func TestSessionScreen_EscInTestAsksFirst(t *testing.T) {
	env := newEnv(t, nil)
	s := New(env, sess.ModeTest)

	if !s.CapturesKey("esc") {
		t.Fatal("test mode should handle esc itself")
	}
	if cmd := press(s, keyEsc); cmd != nil {
		t.Fatal("esc should only open the confirmation")
	}
	if !strings.Contains(s.View(100, 30), "Abandon this test?") {
		t.Error("expected the confirmation prompt")
	}

	press(s, char('n'))
	if s.confirmQuit {
		t.Error("n should dismiss the prompt")
	}

	press(s, keyEsc)
	cmd := press(s, char('y'))
	if cmd == nil {
		t.Fatal("y should leave the screen")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSessionScreen_StudyEscLeftToApp(t *testing.T) {
	env := newEnv(t, nil)
	s := New(env, sess.ModeStudy)
	if s.CapturesKey("esc") {
		t.Error("study mode should let the app pop on esc")
	}
}

func TestSessionScreen_ViewShowsHUDInTest(t *testing.T) {
	env := newEnv(t, nil)

	test := New(env, sess.ModeTest).View(120, 40)
	if !strings.Contains(test, "Credibility") || !strings.Contains(test, "Case Progress") {
		t.Error("test mode should show the HUD")
	}

	study := New(env, sess.ModeStudy).View(120, 40)
	if strings.Contains(study, "Credibility") {
		t.Error("study mode should not show the HUD")
	}
	if !strings.Contains(study, "Question 1/10") {
		t.Error("expected the question counter")
	}
}

func TestSessionScreen_Title(t *testing.T) {
	env := newEnv(t, nil)
	if got := New(env, sess.ModeTest).Title(); got != "Test Mode" {
		t.Errorf("Title = %q", got)
	}
	env.ToggleLanguage()
	if got := New(env, sess.ModeStudy).Title(); got != "Chế độ học" {
		t.Errorf("Title = %q", got)
	}
}
