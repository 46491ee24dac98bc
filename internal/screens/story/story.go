package story

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/quiz"
	"github.com/abhisek/casefile/internal/router"
	"github.com/abhisek/casefile/internal/screen"
	"github.com/abhisek/casefile/internal/screens/card"
	sess "github.com/abhisek/casefile/internal/session"
	flow "github.com/abhisek/casefile/internal/story"
	"github.com/abhisek/casefile/internal/ui/layout"
)

type sceneRef struct {
	chapter, scene int
}

// advanceMsg fires after the delay that follows a correct answer.
type advanceMsg struct {
	at sceneRef
}

type feedbackKind int

const (
	feedbackNone feedbackKind = iota
	feedbackInfo
	feedbackWrong
	feedbackRight
)

// StoryScreen plays the scenes of the chapter the controller has started.
type StoryScreen struct {
	env *screen.Env
	ctl *flow.Controller

	// card answers the current question scene; cardAt is the scene it
	// belongs to.
	card    card.Card
	hasCard bool
	cardAt  sceneRef

	feedback     i18n.Key
	feedbackKind feedbackKind
}

var _ screen.Screen = (*StoryScreen)(nil)
var _ screen.KeyHintProvider = (*StoryScreen)(nil)
var _ screen.KeyCapturer = (*StoryScreen)(nil)

// New creates a StoryScreen over a controller whose chapter is started.
func New(env *screen.Env, ctl *flow.Controller) *StoryScreen {
	s := &StoryScreen{env: env, ctl: ctl}
	s.sync()
	return s
}

func (s *StoryScreen) Init() tea.Cmd {
	return nil
}

func (s *StoryScreen) Title() string {
	ch, _, _ := s.ctl.Current()
	return s.env.Text(ch.Title)
}

func (s *StoryScreen) KeyHints() []layout.KeyHint {
	_, scene, ok := s.ctl.Current()
	if !ok {
		return []layout.KeyHint{{Key: "Esc", Description: s.env.T(i18n.KeyHintBack)}}
	}
	if _, isQuestion := scene.(*flow.QuestionScene); !isQuestion {
		return []layout.KeyHint{
			{Key: "Enter", Description: s.env.T(i18n.KeyHintContinue)},
			{Key: "Esc", Description: s.env.T(i18n.KeyHintBack)},
		}
	}
	if s.ctl.Solved() || !s.hasCard {
		return nil
	}
	hints := s.card.KeyHints(s.env.Lang)
	if s.card.Busy() {
		return hints
	}
	return append(hints,
		layout.KeyHint{Key: "C", Description: s.env.T(i18n.KeyHintConfirm)},
		layout.KeyHint{Key: "Esc", Description: s.env.T(i18n.KeyHintBack)},
	)
}

// CapturesKey keeps typing inside a blank and lets esc cancel a move.
func (s *StoryScreen) CapturesKey(key string) bool {
	if !s.hasCard {
		return false
	}
	if s.card.Editing() {
		return true
	}
	return key == "esc" && s.card.Busy()
}

func (s *StoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if msg.at != s.here() {
			return s, nil
		}
		s.clearFeedback()
		return s, s.follow(s.ctl.Advance())

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s.forward(msg)
}

func (s *StoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	_, scene, ok := s.ctl.Current()
	if !ok {
		return s, router.Back
	}

	if _, isQuestion := scene.(*flow.QuestionScene); !isQuestion {
		switch msg.String() {
		case "enter", "space":
			return s, s.follow(s.ctl.Next())
		case "esc":
			return s, router.Back
		}
		return s, nil
	}

	if s.ctl.Solved() {
		return s, nil
	}
	if s.hasCard && s.card.Busy() {
		return s.forward(msg)
	}
	switch msg.String() {
	case "c":
		return s, s.confirm()
	case "esc":
		return s, router.Back
	}
	return s.forward(msg)
}

func (s *StoryScreen) confirm() tea.Cmd {
	var answer quiz.Answer
	if s.hasCard {
		answer = s.card.Answer()
	}
	v := s.ctl.Confirm(answer, s.env.Lang)

	switch v.Signal {
	case flow.SignalNeedsAnswer:
		s.setFeedback(i18n.KeyNeedsAnswer, feedbackInfo)
	case flow.SignalTryAgain:
		s.setFeedback(i18n.KeyTryAgain, feedbackWrong)
	case flow.SignalCorrect:
		s.setFeedback(i18n.KeyCorrectClue, feedbackRight)
		s.card.SetReveal(true)
		at := s.here()
		return tea.Tick(v.Delay, func(time.Time) tea.Msg { return advanceMsg{at: at} })
	case flow.SignalReturnToChapters:
		return router.Back
	}
	return nil
}

// follow reacts to a controller signal after the cursor may have moved.
func (s *StoryScreen) follow(sig flow.Signal) tea.Cmd {
	switch sig {
	case flow.SignalReturnToChapters, flow.SignalFinished:
		s.env.Logger.Info().Str("signal", sig.String()).Msg("leaving story")
		return router.Back
	}
	s.sync()
	return nil
}

func (s *StoryScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if !s.hasCard {
		return s, nil
	}
	var cmd tea.Cmd
	s.card, cmd = s.card.Update(msg, s.env.Lang)
	return s, cmd
}

// sync builds a fresh answer card when the cursor reaches a question scene.
func (s *StoryScreen) sync() {
	q, ok := s.ctl.Question()
	if !ok {
		s.hasCard = false
		return
	}
	at := s.here()
	if s.hasCard && s.cardAt == at {
		return
	}
	s.card = card.New(q, sess.NewStudy([]quiz.Question{q}), false)
	s.hasCard = true
	s.cardAt = at
	s.clearFeedback()
}

func (s *StoryScreen) here() sceneRef {
	st := s.env.Game.State()
	return sceneRef{st.CurrentChapterIndex, st.CurrentSceneIndex}
}

func (s *StoryScreen) setFeedback(key i18n.Key, kind feedbackKind) {
	s.feedback = key
	s.feedbackKind = kind
}

func (s *StoryScreen) clearFeedback() {
	s.feedback = ""
	s.feedbackKind = feedbackNone
}
