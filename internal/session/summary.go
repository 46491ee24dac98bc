package session

import (
	"github.com/abhisek/casefile/internal/game"
	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/quiz"
)

// Outcome is the graded result of a finished session.
type Outcome struct {
	Report quiz.Report

	// Perfect is true when every unit was answered correctly.
	Perfect bool

	// LeveledUp is true when this run raised the character level.
	LeveledUp bool

	// Level is the character level after the run.
	Level int

	// PenaltyApplied is true when the run ended with HP at zero.
	PenaltyApplied bool

	// State is the game state after end-of-test effects.
	State game.State
}

// Finish grades the session. In test mode it applies the end-of-test effects
// exactly once: a perfect score records a perfect run, and depleted HP
// applies the credibility penalty. Later calls return the cached outcome.
func (s *Session) Finish(lang i18n.Language) Outcome {
	if s.outcome != nil {
		return *s.outcome
	}
	out := Outcome{Report: quiz.Score(s.questions, s.answers, lang)}
	out.Perfect = out.Report.Perfect()

	if s.mode == ModeTest && s.game != nil {
		if out.Perfect {
			out.LeveledUp = s.game.RecordPerfectRun()
		}
		if s.game.State().CurrentHP <= 0 {
			s.game.ApplyPenaltyAndReset()
			out.PenaltyApplied = true
		}
		out.State = s.game.State()
		out.Level = out.State.CharacterLevel
	}

	s.outcome = &out
	return out
}

// Outcome returns the graded result and whether the session is finished.
func (s *Session) Outcome() (Outcome, bool) {
	if s.outcome == nil {
		return Outcome{}, false
	}
	return *s.outcome, true
}
