package quiz

import (
	"math"

	"github.com/abhisek/casefile/internal/i18n"
)

// QuestionReport is the per-question part of a Report.
type QuestionReport struct {
	Question Question
	Answer   Answer
	Result   Result
}

// Answered reports whether the learner submitted anything for the question.
func (r QuestionReport) Answered() bool {
	return IsAnswered(r.Answer)
}

// Report is the scored outcome of a whole question set.
type Report struct {
	Score     int
	Total     int
	Questions []QuestionReport
}

// Percent returns the score as a rounded percentage. An empty question set
// scores 0.
func (r Report) Percent() int {
	if r.Total == 0 {
		return 0
	}
	return int(math.Round(float64(r.Score) / float64(r.Total) * 100))
}

// Perfect reports whether every unit was answered correctly.
func (r Report) Perfect() bool {
	return r.Score > 0 && r.Score == r.Total
}

// Score evaluates every question against answers. Total is the number of
// answerable units and Score the number answered correctly.
func Score(questions []Question, answers Answers, lang i18n.Language) Report {
	var rep Report
	for _, q := range questions {
		ans := answers[q.Info().ID]
		res := Evaluate(q, ans, lang)
		rep.Total += Units(q)
		rep.Score += res.CorrectUnits()
		rep.Questions = append(rep.Questions, QuestionReport{
			Question: q,
			Answer:   ans,
			Result:   res,
		})
	}
	return rep
}
