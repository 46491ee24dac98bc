package quiz

import "github.com/abhisek/casefile/internal/i18n"

// Kind identifies the shape of a question.
type Kind string

const (
	KindSingleSelect Kind = "single-select"
	KindMultiSelect  Kind = "multi-select"
	KindFillIn       Kind = "fill-in"
	KindOrdering     Kind = "ordering"
)

// Base holds the fields shared by every question variant.
type Base struct {
	// ID is unique across the question set and keys the answer map.
	ID string

	// Part groups questions for display (e.g. "part1").
	Part string

	Prompt      i18n.Text
	Explanation i18n.Text
}

// Question is implemented by *SelectQuestion, *FillInQuestion and
// *OrderingQuestion. The set is closed; callers switch on the concrete type.
type Question interface {
	Info() Base
	Kind() Kind
	isQuestion()
}

// SelectQuestion is a single- or multi-select question over indexed options.
type SelectQuestion struct {
	Base

	// Multiple is true for multi-select questions.
	Multiple bool

	Options []i18n.Text

	// Correct holds the indices of the correct options. Exactly one for
	// single-select questions.
	Correct []int
}

func (q *SelectQuestion) Info() Base { return q.Base }

func (q *SelectQuestion) Kind() Kind {
	if q.Multiple {
		return KindMultiSelect
	}
	return KindSingleSelect
}

func (*SelectQuestion) isQuestion() {}

// IsCorrectOption reports whether index is one of the correct options.
func (q *SelectQuestion) IsCorrectOption(index int) bool {
	for _, c := range q.Correct {
		if c == index {
			return true
		}
	}
	return false
}

// Blank is a single labeled fill-in slot.
type Blank struct {
	// ID is unique within the question.
	ID int

	Label i18n.Text

	// Correct is the expected entry per language.
	Correct i18n.Text
}

// FillInQuestion asks the learner to type one entry per blank.
type FillInQuestion struct {
	Base
	Blanks []Blank
}

func (q *FillInQuestion) Info() Base { return q.Base }
func (q *FillInQuestion) Kind() Kind { return KindFillIn }
func (*FillInQuestion) isQuestion()  {}

// Blank returns the blank with the given id.
func (q *FillInQuestion) Blank(id int) (Blank, bool) {
	for _, b := range q.Blanks {
		if b.ID == id {
			return b, true
		}
	}
	return Blank{}, false
}

// Step is one item of an ordering sub-question. Its ID is also its correct
// zero-based position.
type Step struct {
	ID   int
	Text i18n.Text
}

// SubQuestion is a titled list of steps to be put in order. Steps are stored
// in presentation order, which need not be the correct order.
type SubQuestion struct {
	Title i18n.Text
	Steps []Step
}

// Step returns the step with the given id.
func (s SubQuestion) Step(id int) (Step, bool) {
	for _, st := range s.Steps {
		if st.ID == id {
			return st, true
		}
	}
	return Step{}, false
}

// InitialOrder returns the step ids in presentation order. This is the
// order shown before the learner rearranges anything.
func (s SubQuestion) InitialOrder() []int {
	order := make([]int, len(s.Steps))
	for i, st := range s.Steps {
		order[i] = st.ID
	}
	return order
}

// OrderingQuestion asks the learner to order the steps of each sub-question.
type OrderingQuestion struct {
	Base
	Subs []SubQuestion
}

func (q *OrderingQuestion) Info() Base { return q.Base }
func (q *OrderingQuestion) Kind() Kind { return KindOrdering }
func (*OrderingQuestion) isQuestion()  {}

// Units returns the number of answerable units in q: one for a select
// question, one per blank for fill-in, one per step for ordering.
func Units(q Question) int {
	switch q := q.(type) {
	case *SelectQuestion:
		return 1
	case *FillInQuestion:
		return len(q.Blanks)
	case *OrderingQuestion:
		n := 0
		for _, sub := range q.Subs {
			n += len(sub.Steps)
		}
		return n
	default:
		return 0
	}
}

// TotalUnits sums Units over questions.
func TotalUnits(questions []Question) int {
	total := 0
	for _, q := range questions {
		total += Units(q)
	}
	return total
}

// ProgressPerUnit is the case progress awarded for each correctly answered
// unit in a graded test, so that a perfect test reaches 100.
func ProgressPerUnit(questions []Question) float64 {
	total := TotalUnits(questions)
	if total == 0 {
		return 0
	}
	return 100 / float64(total)
}
