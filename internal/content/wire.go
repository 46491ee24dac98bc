package content

import (
	"fmt"

	"github.com/abhisek/casefile/internal/game"
	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/quiz"
	"github.com/abhisek/casefile/internal/story"
)

// catalogJSON is the on-disk catalog layout.
type catalogJSON struct {
	Format     string          `json:"format"`
	Parts      []partJSON      `json:"parts"`
	Characters []characterJSON `json:"characters"`
	Speakers   []speakerJSON   `json:"speakers"`
	Questions  []questionJSON  `json:"questions"`
	Chapters   []chapterJSON   `json:"chapters"`
}

type partJSON struct {
	ID    string    `json:"id"`
	Title i18n.Text `json:"title"`
}

type characterJSON struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description i18n.Text `json:"description"`
}

type speakerJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// questionJSON carries the fields of every variant; Type selects which
// are read.
type questionJSON struct {
	ID          string    `json:"id"`
	Part        string    `json:"part"`
	Type        quiz.Kind `json:"type"`
	Question    i18n.Text `json:"question"`
	Explanation i18n.Text `json:"explanation,omitempty"`

	Options        []i18n.Text `json:"options,omitempty"`
	CorrectAnswers []int       `json:"correctAnswers,omitempty"`

	Labels []labelJSON `json:"labels,omitempty"`

	SubQuestions []subQuestionJSON `json:"subQuestions,omitempty"`
}

type labelJSON struct {
	ID      int       `json:"id"`
	Label   i18n.Text `json:"label,omitempty"`
	Correct i18n.Text `json:"correct"`
}

type subQuestionJSON struct {
	Title i18n.Text  `json:"title"`
	Steps []stepJSON `json:"steps"`
}

type stepJSON struct {
	ID   int       `json:"id"`
	Text i18n.Text `json:"text"`
}

type chapterJSON struct {
	ID          string      `json:"id"`
	Title       i18n.Text   `json:"title"`
	Description i18n.Text   `json:"description"`
	Scenes      []sceneJSON `json:"scenes"`
}

type sceneJSON struct {
	Type story.SceneKind `json:"type"`

	Speaker  string    `json:"speaker,omitempty"`
	Dialogue i18n.Text `json:"dialogue,omitempty"`

	QuestionID string    `json:"questionId,omitempty"`
	Prompt     i18n.Text `json:"prompt,omitempty"`

	Title   i18n.Text `json:"title,omitempty"`
	Summary i18n.Text `json:"summary,omitempty"`
}

func (w questionJSON) toQuestion() (quiz.Question, error) {
	base := quiz.Base{ID: w.ID, Part: w.Part, Prompt: w.Question, Explanation: w.Explanation}
	switch w.Type {
	case quiz.KindSingleSelect, quiz.KindMultiSelect:
		return &quiz.SelectQuestion{
			Base:     base,
			Multiple: w.Type == quiz.KindMultiSelect,
			Options:  w.Options,
			Correct:  w.CorrectAnswers,
		}, nil
	case quiz.KindFillIn:
		q := &quiz.FillInQuestion{Base: base}
		for _, l := range w.Labels {
			q.Blanks = append(q.Blanks, quiz.Blank{ID: l.ID, Label: l.Label, Correct: l.Correct})
		}
		return q, nil
	case quiz.KindOrdering:
		q := &quiz.OrderingQuestion{Base: base}
		for _, sq := range w.SubQuestions {
			sub := quiz.SubQuestion{Title: sq.Title}
			for _, st := range sq.Steps {
				sub.Steps = append(sub.Steps, quiz.Step{ID: st.ID, Text: st.Text})
			}
			q.Subs = append(q.Subs, sub)
		}
		return q, nil
	default:
		return nil, fmt.Errorf("question %q: unknown type %q", w.ID, w.Type)
	}
}

func (w chapterJSON) toChapter() (story.Chapter, error) {
	ch := story.Chapter{ID: w.ID, Title: w.Title, Description: w.Description}
	for i, s := range w.Scenes {
		switch s.Type {
		case story.KindNarrative:
			ch.Scenes = append(ch.Scenes, &story.NarrativeScene{Speaker: s.Speaker, Dialogue: s.Dialogue})
		case story.KindQuestion:
			ch.Scenes = append(ch.Scenes, &story.QuestionScene{QuestionID: s.QuestionID, Prompt: s.Prompt})
		case story.KindConclusion:
			ch.Scenes = append(ch.Scenes, &story.ConclusionScene{Title: s.Title, Summary: s.Summary})
		default:
			return story.Chapter{}, fmt.Errorf("chapter %q scene %d: unknown type %q", w.ID, i, s.Type)
		}
	}
	return ch, nil
}

func (w characterJSON) toCharacter() game.Character {
	return game.Character{ID: w.ID, Name: w.Name, Description: w.Description}
}
