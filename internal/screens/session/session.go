package session

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/quiz"
	"github.com/abhisek/casefile/internal/router"
	"github.com/abhisek/casefile/internal/screen"
	"github.com/abhisek/casefile/internal/screens/card"
	"github.com/abhisek/casefile/internal/screens/summary"
	sess "github.com/abhisek/casefile/internal/session"
	"github.com/abhisek/casefile/internal/store"
	"github.com/abhisek/casefile/internal/ui/layout"
)

// SessionScreen runs a study or test pass over the whole question set.
type SessionScreen struct {
	env   *screen.Env
	sheet *sess.Session

	// parts holds the part title of each question, by index.
	parts []string
	cards []card.Card
	index int

	confirmQuit bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.KeyCapturer = (*SessionScreen)(nil)

// New creates a SessionScreen. Test mode resets credibility and case
// progress immediately.
func New(env *screen.Env, mode sess.Mode) *SessionScreen {
	var questions []quiz.Question
	var parts []string
	for _, pq := range env.Content.QuestionsByPart() {
		title := env.Content.PartTitle(pq.Part.ID, env.Lang)
		for _, q := range pq.Questions {
			questions = append(questions, q)
			parts = append(parts, title)
		}
	}

	var sheet *sess.Session
	if mode == sess.ModeTest {
		sheet = sess.NewTest(questions, env.Game)
	} else {
		sheet = sess.NewStudy(questions)
	}

	s := &SessionScreen{env: env, sheet: sheet, parts: parts}
	for _, q := range questions {
		s.cards = append(s.cards, card.New(q, sheet, mode == sess.ModeStudy))
	}

	env.Logger.Info().
		Str("mode", string(mode)).
		Int("questions", len(questions)).
		Int("units", quiz.TotalUnits(questions)).
		Msg("quiz started")
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	return nil
}

func (s *SessionScreen) Title() string {
	if s.sheet.Mode() == sess.ModeTest {
		return s.env.T(i18n.KeyTestMode)
	}
	return s.env.T(i18n.KeyStudyMode)
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: s.env.T(i18n.KeyHintQuit)},
			{Key: "N", Description: s.env.T(i18n.KeyHintContinue)},
		}
	}
	var hints []layout.KeyHint
	if c, ok := s.current(); ok {
		hints = c.KeyHints(s.env.Lang)
		if c.Busy() {
			return hints
		}
	}
	return append(hints,
		layout.KeyHint{Key: "N/P", Description: s.env.T(i18n.KeyHintQuestions)},
		layout.KeyHint{Key: "S", Description: s.env.T(i18n.KeySubmit)},
		layout.KeyHint{Key: "Esc", Description: s.env.T(i18n.KeyHintBack)},
	)
}

// CapturesKey keeps typing inside a blank and lets esc cancel moves or ask
// before a test is abandoned.
func (s *SessionScreen) CapturesKey(key string) bool {
	c, ok := s.current()
	if ok && c.Editing() {
		return true
	}
	if key != "esc" {
		return false
	}
	return s.confirmQuit || (ok && c.Busy()) || s.sheet.Mode() == sess.ModeTest
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultRecordedMsg:
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s.forward(msg)
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.env.Logger.Info().Msg("test abandoned")
			return s, router.Back
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if c, ok := s.current(); ok && c.Busy() {
		return s.forward(msg)
	}

	switch key {
	case "n", "pgdown", "]":
		if s.index < len(s.cards)-1 {
			s.index++
		}
		return s, nil
	case "p", "pgup", "[":
		if s.index > 0 {
			s.index--
		}
		return s, nil
	case "s":
		return s, s.submit()
	case "esc":
		if s.sheet.Mode() == sess.ModeTest {
			s.confirmQuit = true
			return s, nil
		}
		return s, router.Back
	}
	return s.forward(msg)
}

func (s *SessionScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := s.current(); !ok {
		return s, nil
	}
	var cmd tea.Cmd
	s.cards[s.index], cmd = s.cards[s.index].Update(msg, s.env.Lang)
	return s, cmd
}

// submit grades the sheet, records a graded test and swaps in the results.
func (s *SessionScreen) submit() tea.Cmd {
	outcome := s.sheet.Finish(s.env.Lang)
	mode := s.sheet.Mode()

	s.env.Logger.Info().
		Str("mode", string(mode)).
		Int("score", outcome.Report.Score).
		Int("total", outcome.Report.Total).
		Bool("perfect", outcome.Perfect).
		Bool("leveled_up", outcome.LeveledUp).
		Bool("penalty", outcome.PenaltyApplied).
		Msg("quiz finished")

	results := summary.New(s.env, mode, outcome)
	replace := func() tea.Msg { return router.ReplaceScreenMsg{Screen: results} }
	if mode != sess.ModeTest {
		return replace
	}
	return tea.Batch(s.record(outcome), replace)
}

func (s *SessionScreen) record(outcome sess.Outcome) tea.Cmd {
	repo := s.env.Results
	if repo == nil {
		return nil
	}
	logger := s.env.Logger
	res := store.TestResult{
		CharacterID: outcome.State.SelectedCharacterID,
		Score:       outcome.Report.Score,
		Total:       outcome.Report.Total,
		Percent:     outcome.Report.Percent(),
		Perfect:     outcome.Perfect,
		HP:          outcome.State.CurrentHP,
		Progress:    outcome.State.CaseProgress,
		Level:       outcome.Level,
	}
	return func() tea.Msg {
		saved, err := repo.Append(context.Background(), res)
		if err != nil {
			logger.Error().Err(err).Msg("record test result")
		}
		return resultRecordedMsg{Result: saved, Err: err}
	}
}

func (s *SessionScreen) current() (card.Card, bool) {
	if s.index < 0 || s.index >= len(s.cards) {
		return card.Card{}, false
	}
	return s.cards[s.index], true
}
