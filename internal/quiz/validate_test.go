package quiz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/casefile/internal/i18n"
)

func TestValidate_Clean(t *testing.T) {
	for _, q := range allQuestions() {
		assert.Empty(t, Validate(q), q.Info().ID)
	}
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want int
	}{
		{
			"single select with two answers",
			&SelectQuestion{Base: Base{ID: "x"}, Options: []i18n.Text{{}, {}}, Correct: []int{0, 1}},
			1,
		},
		{
			"correct index out of range",
			&SelectQuestion{Base: Base{ID: "x"}, Options: []i18n.Text{{}}, Correct: []int{3}},
			1,
		},
		{
			"duplicate blank ids",
			&FillInQuestion{Base: Base{ID: "x"}, Blanks: []Blank{
				{ID: 1, Correct: txt("a", "a")},
				{ID: 1, Correct: txt("b", "b")},
			}},
			1,
		},
		{
			"step ids with a gap",
			&OrderingQuestion{Base: Base{ID: "x"}, Subs: []SubQuestion{{Steps: []Step{{ID: 0}, {ID: 2}}}}},
			1,
		},
		{
			"duplicate step ids",
			&OrderingQuestion{Base: Base{ID: "x"}, Subs: []SubQuestion{{Steps: []Step{{ID: 0}, {ID: 0}}}}},
			1,
		},
		{
			"missing id",
			&FillInQuestion{Blanks: []Blank{{ID: 0, Correct: txt("a", "a")}}},
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.q)
			assert.Len(t, errs, tt.want)
			for _, err := range errs {
				var ae *AuthoringError
				assert.True(t, errors.As(err, &ae))
			}
		})
	}
}

func TestEvaluate_ToleratesAuthoringErrors(t *testing.T) {
	q := &OrderingQuestion{Base: Base{ID: "x"}, Subs: []SubQuestion{{Steps: []Step{{ID: 0}, {ID: 0}, {ID: 5}}}}}
	res := Evaluate(q, OrderingAnswer{0: {0, 0, 5}}, i18n.English)
	assert.False(t, res.Correct)
	assert.Equal(t, 1, res.CorrectUnits())
}
