package session

import "github.com/abhisek/casefile/internal/quiz"

// Delta is the change in a moved step's own placement.
type Delta int

const (
	DeltaNone Delta = iota
	DeltaGained
	DeltaLost
)

// Move returns a copy of order with stepID removed and reinserted at
// position. It returns false if stepID is absent or position is out of range.
func Move(order []int, stepID, position int) ([]int, bool) {
	from := indexOf(order, stepID)
	if from < 0 || position < 0 || position >= len(order) {
		return nil, false
	}
	out := make([]int, 0, len(order))
	out = append(out, order[:from]...)
	out = append(out, order[from+1:]...)
	out = append(out, 0)
	copy(out[position+1:], out[position:])
	out[position] = stepID
	return out, true
}

// OrderDelta compares the placement of stepID before and after a move.
// Only the moved step is considered; steps shifted as a side effect do not
// count.
func OrderDelta(before, after []int, stepID int) Delta {
	was := quiz.StepCorrect(before, indexOf(before, stepID))
	now := quiz.StepCorrect(after, indexOf(after, stepID))
	switch {
	case now && !was:
		return DeltaGained
	case was && !now:
		return DeltaLost
	default:
		return DeltaNone
	}
}

func indexOf(order []int, id int) int {
	for i, v := range order {
		if v == id {
			return i
		}
	}
	return -1
}
