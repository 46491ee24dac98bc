package quiz

import "strings"

// Answer is a learner submission for one question. The concrete type must
// match the question variant: SelectAnswer, FillInAnswer or OrderingAnswer.
type Answer interface {
	isAnswer()
}

// SelectAnswer is the set of selected option indices.
type SelectAnswer []int

// FillInAnswer maps blank id to the typed entry.
type FillInAnswer map[int]string

// OrderingAnswer maps sub-question index to a permutation of step ids.
type OrderingAnswer map[int][]int

func (SelectAnswer) isAnswer()   {}
func (FillInAnswer) isAnswer()   {}
func (OrderingAnswer) isAnswer() {}

// Answers maps question id to submission. A missing key means unanswered.
type Answers map[string]Answer

// IsAnswered reports whether a contains any learner input.
func IsAnswered(a Answer) bool {
	switch a := a.(type) {
	case SelectAnswer:
		return len(a) > 0
	case FillInAnswer:
		for _, v := range a {
			if strings.TrimSpace(v) != "" {
				return true
			}
		}
		return false
	case OrderingAnswer:
		return len(a) > 0
	default:
		return false
	}
}

// Clone returns a deep copy of a so callers can mutate it freely.
func Clone(a Answer) Answer {
	switch a := a.(type) {
	case SelectAnswer:
		return append(SelectAnswer(nil), a...)
	case FillInAnswer:
		out := make(FillInAnswer, len(a))
		for k, v := range a {
			out[k] = v
		}
		return out
	case OrderingAnswer:
		out := make(OrderingAnswer, len(a))
		for k, v := range a {
			out[k] = append([]int(nil), v...)
		}
		return out
	default:
		return nil
	}
}
