package quiz

import (
	"strings"

	"github.com/abhisek/casefile/internal/i18n"
)

// Unit is the evaluation of one answerable unit.
type Unit struct {
	// Sub is the sub-question index for ordering questions, 0 otherwise.
	Sub int

	// Key is the blank id (fill-in) or position (ordering), 0 for select.
	Key int

	Correct bool
}

// Result is the outcome of evaluating one answer against one question.
type Result struct {
	// Correct is true only when every unit is correct and the answer is
	// structurally complete.
	Correct bool

	Units []Unit
}

// CorrectUnits returns the number of correct units.
func (r Result) CorrectUnits() int {
	n := 0
	for _, u := range r.Units {
		if u.Correct {
			n++
		}
	}
	return n
}

// Evaluate scores ans against q for the given display language.
//
// Evaluate never panics: a nil answer or one whose shape does not match the
// question evaluates as incorrect with every unit incorrect.
func Evaluate(q Question, ans Answer, lang i18n.Language) Result {
	switch q := q.(type) {
	case *SelectQuestion:
		sel, _ := ans.(SelectAnswer)
		ok := SelectCorrect(q, sel)
		return Result{Correct: ok, Units: []Unit{{Correct: ok}}}
	case *FillInQuestion:
		entries, _ := ans.(FillInAnswer)
		return evaluateFillIn(q, entries, lang)
	case *OrderingQuestion:
		orders, _ := ans.(OrderingAnswer)
		return evaluateOrdering(q, orders)
	default:
		return Result{}
	}
}

// SelectCorrect reports whether the selected indices, taken as a set, equal
// the question's correct set. There is no partial credit.
func SelectCorrect(q *SelectQuestion, selected SelectAnswer) bool {
	if len(selected) == 0 {
		return false
	}
	want := toSet(q.Correct)
	got := toSet(selected)
	if len(want) != len(got) {
		return false
	}
	for i := range got {
		if !want[i] {
			return false
		}
	}
	return true
}

// BlankCorrect reports whether entry matches the blank's expected text for
// lang, ignoring case and surrounding whitespace. A blank with no text for
// lang never matches.
func BlankCorrect(b Blank, entry string, lang i18n.Language) bool {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return false
	}
	want, ok := b.Correct[lang]
	if !ok {
		return false
	}
	return strings.EqualFold(entry, strings.TrimSpace(want))
}

// StepCorrect reports whether the step at position in order is correctly
// placed, i.e. its id equals the position.
func StepCorrect(order []int, position int) bool {
	if position < 0 || position >= len(order) {
		return false
	}
	return order[position] == position
}

func evaluateFillIn(q *FillInQuestion, entries FillInAnswer, lang i18n.Language) Result {
	res := Result{Correct: len(q.Blanks) > 0}
	for _, b := range q.Blanks {
		entry, ok := entries[b.ID]
		correct := ok && BlankCorrect(b, entry, lang)
		res.Units = append(res.Units, Unit{Key: b.ID, Correct: correct})
		if !correct {
			res.Correct = false
		}
	}
	return res
}

func evaluateOrdering(q *OrderingQuestion, orders OrderingAnswer) Result {
	res := Result{Correct: len(q.Subs) > 0}
	for si, sub := range q.Subs {
		order, answered := orders[si]
		if !answered || len(order) != len(sub.Steps) {
			res.Correct = false
		}
		for pos := range sub.Steps {
			correct := answered && StepCorrect(order, pos)
			res.Units = append(res.Units, Unit{Sub: si, Key: pos, Correct: correct})
			if !correct {
				res.Correct = false
			}
		}
	}
	return res
}

func toSet(xs []int) map[int]bool {
	m := make(map[int]bool, len(xs))
	for _, x := range xs {
		m[x] = true
	}
	return m
}
