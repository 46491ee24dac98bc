package quiz

import "fmt"

// AuthoringError describes a structural problem in a question.
type AuthoringError struct {
	QuestionID string
	Reason     string
}

func (e *AuthoringError) Error() string {
	return fmt.Sprintf("question %q: %s", e.QuestionID, e.Reason)
}

// Validate checks q for authoring errors. The evaluator tolerates every
// problem reported here; Validate exists so content can be checked before
// it is played.
func Validate(q Question) []error {
	id := q.Info().ID
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, &AuthoringError{QuestionID: id, Reason: fmt.Sprintf(format, args...)})
	}

	if id == "" {
		add("missing id")
	}

	switch q := q.(type) {
	case *SelectQuestion:
		if len(q.Options) == 0 {
			add("no options")
		}
		if len(q.Correct) == 0 {
			add("no correct answers")
		}
		if !q.Multiple && len(q.Correct) > 1 {
			add("single-select has %d correct answers", len(q.Correct))
		}
		seen := make(map[int]bool)
		for _, c := range q.Correct {
			if c < 0 || c >= len(q.Options) {
				add("correct answer %d out of range", c)
			}
			if seen[c] {
				add("correct answer %d listed twice", c)
			}
			seen[c] = true
		}

	case *FillInQuestion:
		if len(q.Blanks) == 0 {
			add("no blanks")
		}
		seen := make(map[int]bool)
		for _, b := range q.Blanks {
			if seen[b.ID] {
				add("duplicate blank id %d", b.ID)
			}
			seen[b.ID] = true
			if len(b.Correct) == 0 {
				add("blank %d has no correct text", b.ID)
			}
		}

	case *OrderingQuestion:
		if len(q.Subs) == 0 {
			add("no sub-questions")
		}
		for si, sub := range q.Subs {
			seen := make(map[int]bool)
			for _, st := range sub.Steps {
				if seen[st.ID] {
					add("sub-question %d: duplicate step id %d", si, st.ID)
				}
				seen[st.ID] = true
				if st.ID < 0 || st.ID >= len(sub.Steps) {
					add("sub-question %d: step id %d outside 0..%d", si, st.ID, len(sub.Steps)-1)
				}
			}
		}
	}

	return errs
}
