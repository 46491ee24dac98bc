package session

import (
	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/quiz"
)

// Select records an option choice. Single-select replaces the selection;
// multi-select toggles the option.
//
// In test mode only the first answer to a question has an effect, judged on
// whether the chosen option is a correct one. Later changes are recorded but
// never charged or rewarded, so retrying cannot be used to farm progress.
// Multi-select judges only the first toggled option, not the whole
// selection the way single-select does.
func (s *Session) Select(q *quiz.SelectQuestion, option int) {
	if s.outcome != nil || option < 0 || option >= len(q.Options) {
		return
	}
	id := q.ID

	prev, _ := s.answers[id].(quiz.SelectAnswer)
	var next quiz.SelectAnswer
	if q.Multiple {
		next = toggle(prev, option)
	} else {
		next = quiz.SelectAnswer{option}
	}
	s.answers[id] = next

	if s.testing() && !s.charged[id] {
		s.charged[id] = true
		s.game.ApplyAnswerEffect(q.IsCorrectOption(option), s.gain)
	}
}

// Selected reports whether option is currently selected.
func (s *Session) Selected(q *quiz.SelectQuestion, option int) bool {
	sel, _ := s.answers[q.ID].(quiz.SelectAnswer)
	for _, o := range sel {
		if o == option {
			return true
		}
	}
	return false
}

// SetBlank edits the entry for a blank. In test mode a committed blank is
// locked and SetBlank returns false.
func (s *Session) SetBlank(q *quiz.FillInQuestion, blankID int, text string) bool {
	if s.outcome != nil {
		return false
	}
	if _, ok := q.Blank(blankID); !ok {
		return false
	}
	if s.mode == ModeTest && s.committed[q.ID][blankID] {
		return false
	}
	entries, _ := s.answers[q.ID].(quiz.FillInAnswer)
	if entries == nil {
		entries = make(quiz.FillInAnswer)
	}
	entries[blankID] = text
	s.answers[q.ID] = entries
	return true
}

// Entry returns the current text for a blank.
func (s *Session) Entry(q *quiz.FillInQuestion, blankID int) string {
	entries, _ := s.answers[q.ID].(quiz.FillInAnswer)
	return entries[blankID]
}

// CommitBlank marks the learner as done with a blank. In test mode the
// first commit of a non-empty entry applies the answer effect for that
// blank, judged against lang. Empty entries are not committed.
func (s *Session) CommitBlank(q *quiz.FillInQuestion, blankID int, lang i18n.Language) {
	b, ok := q.Blank(blankID)
	if !ok || s.outcome != nil {
		return
	}
	entry := s.Entry(q, blankID)
	if !quiz.IsAnswered(quiz.FillInAnswer{blankID: entry}) {
		return
	}
	if s.committed[q.ID] == nil {
		s.committed[q.ID] = make(map[int]bool)
	}
	if s.committed[q.ID][blankID] {
		return
	}
	s.committed[q.ID][blankID] = true

	if s.testing() {
		s.game.ApplyAnswerEffect(quiz.BlankCorrect(b, entry, lang), s.gain)
	}
}

// BlankLocked reports whether the blank can no longer be edited.
func (s *Session) BlankLocked(q *quiz.FillInQuestion, blankID int) bool {
	return s.mode == ModeTest && s.committed[q.ID][blankID]
}

// Order returns the current order of step ids for a sub-question, or the
// presentation order if the learner has not moved anything yet.
func (s *Session) Order(q *quiz.OrderingQuestion, sub int) []int {
	if sub < 0 || sub >= len(q.Subs) {
		return nil
	}
	orders, _ := s.answers[q.ID].(quiz.OrderingAnswer)
	if order, ok := orders[sub]; ok {
		return append([]int(nil), order...)
	}
	return q.Subs[sub].InitialOrder()
}

// MoveStep moves one step of a sub-question to position, shifting the
// others. In test mode the moved step's placement before and after the move
// is compared: becoming correct awards progress, becoming incorrect costs HP,
// and no flip has no effect.
func (s *Session) MoveStep(q *quiz.OrderingQuestion, sub, stepID, position int) {
	if s.outcome != nil {
		return
	}
	before := s.Order(q, sub)
	after, ok := Move(before, stepID, position)
	if !ok {
		return
	}

	orders, _ := s.answers[q.ID].(quiz.OrderingAnswer)
	if orders == nil {
		orders = make(quiz.OrderingAnswer)
	}
	orders[sub] = after
	s.answers[q.ID] = orders

	if !s.testing() {
		return
	}
	switch OrderDelta(before, after, stepID) {
	case DeltaGained:
		s.game.ApplyAnswerEffect(true, s.gain)
	case DeltaLost:
		s.game.ApplyAnswerEffect(false, 0)
	}
}

// Result evaluates the current answer for q.
func (s *Session) Result(q quiz.Question, lang i18n.Language) quiz.Result {
	return quiz.Evaluate(q, s.answers[q.Info().ID], lang)
}

func toggle(sel quiz.SelectAnswer, option int) quiz.SelectAnswer {
	out := make(quiz.SelectAnswer, 0, len(sel)+1)
	found := false
	for _, o := range sel {
		if o == option {
			found = true
			continue
		}
		out = append(out, o)
	}
	if !found {
		out = append(out, option)
	}
	return out
}
