package session

import (
	"github.com/abhisek/casefile/internal/game"
	"github.com/abhisek/casefile/internal/quiz"
)

// Mode selects whether answers carry game consequences.
type Mode string

const (
	// ModeStudy shows feedback immediately and never touches game state.
	ModeStudy Mode = "study"

	// ModeTest applies answer effects and is graded when finished.
	ModeTest Mode = "test"
)

// GameEffects is the part of the game store a session drives.
type GameEffects interface {
	State() game.State
	ResetForNewTest()
	ApplyAnswerEffect(correct bool, progressGain float64)
	RecordPerfectRun() bool
	ApplyPenaltyAndReset()
}

// Session is the learner's answer sheet for one pass over a question set.
//
// In test mode it decides when an interaction counts as a scored event:
// a select question is charged once, on its first answer; a fill-in blank
// is charged once, when it is first committed; an ordering step is charged
// whenever a move flips its own placement between correct and incorrect.
type Session struct {
	mode      Mode
	questions []quiz.Question
	answers   quiz.Answers
	gain      float64
	game      GameEffects

	// charged records select questions that already produced an effect.
	charged map[string]bool

	// committed records fill-in blanks already charged, per question.
	committed map[string]map[int]bool

	outcome *Outcome
}

// NewStudy creates a study session. No game state is involved.
func NewStudy(questions []quiz.Question) *Session {
	return newSession(ModeStudy, questions, nil)
}

// NewTest creates a graded session and resets HP and case progress.
func NewTest(questions []quiz.Question, g GameEffects) *Session {
	s := newSession(ModeTest, questions, g)
	if g != nil {
		g.ResetForNewTest()
	}
	return s
}

func newSession(mode Mode, questions []quiz.Question, g GameEffects) *Session {
	return &Session{
		mode:      mode,
		questions: questions,
		answers:   make(quiz.Answers),
		gain:      quiz.ProgressPerUnit(questions),
		game:      g,
		charged:   make(map[string]bool),
		committed: make(map[string]map[int]bool),
	}
}

// Mode returns the session mode.
func (s *Session) Mode() Mode { return s.mode }

// Questions returns the question set in display order.
func (s *Session) Questions() []quiz.Question { return s.questions }

// ProgressPerUnit is the progress awarded for each correct unit.
func (s *Session) ProgressPerUnit() float64 { return s.gain }

// Answer returns a copy of the current answer for the question id, or nil.
func (s *Session) Answer(id string) quiz.Answer {
	a, ok := s.answers[id]
	if !ok {
		return nil
	}
	return quiz.Clone(a)
}

// Answers returns a copy of the whole answer sheet.
func (s *Session) Answers() quiz.Answers {
	out := make(quiz.Answers, len(s.answers))
	for id, a := range s.answers {
		out[id] = quiz.Clone(a)
	}
	return out
}

// Finished reports whether the test has been graded.
func (s *Session) Finished() bool { return s.outcome != nil }

func (s *Session) testing() bool {
	return s.mode == ModeTest && s.game != nil && s.outcome == nil
}
