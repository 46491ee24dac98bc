package story

import "github.com/abhisek/casefile/internal/i18n"

// SceneKind names a scene variant.
type SceneKind string

const (
	KindNarrative  SceneKind = "narrative"
	KindQuestion   SceneKind = "question"
	KindConclusion SceneKind = "conclusion"
)

// Scene is one step of a chapter. Implemented by *NarrativeScene,
// *QuestionScene and *ConclusionScene.
type Scene interface {
	Kind() SceneKind
	isScene()
}

// NarrativeScene is a line of dialogue. It never gates progress.
type NarrativeScene struct {
	Speaker  string
	Dialogue i18n.Text
}

// QuestionScene blocks the chapter until the referenced question is
// answered correctly.
type QuestionScene struct {
	QuestionID string
	Prompt     i18n.Text
}

// ConclusionScene ends a chapter.
type ConclusionScene struct {
	Title   i18n.Text
	Summary i18n.Text
}

func (*NarrativeScene) Kind() SceneKind  { return KindNarrative }
func (*QuestionScene) Kind() SceneKind   { return KindQuestion }
func (*ConclusionScene) Kind() SceneKind { return KindConclusion }

func (*NarrativeScene) isScene()  {}
func (*QuestionScene) isScene()   {}
func (*ConclusionScene) isScene() {}

// Chapter is a linear sequence of scenes.
type Chapter struct {
	ID          string
	Title       i18n.Text
	Description i18n.Text
	Scenes      []Scene
}

// QuestionIDs lists the questions the chapter's question scenes reference.
func (c Chapter) QuestionIDs() []string {
	var ids []string
	for _, s := range c.Scenes {
		if qs, ok := s.(*QuestionScene); ok {
			ids = append(ids, qs.QuestionID)
		}
	}
	return ids
}

// Speaker is someone who appears in dialogue.
type Speaker struct {
	ID   string
	Name string
}

// UnknownSpeaker is shown for dialogue by an id nobody has registered.
var UnknownSpeaker = Speaker{ID: "unknown", Name: "Unknown"}

// Cast is the set of known speakers.
type Cast []Speaker

// Lookup returns the speaker with id, or UnknownSpeaker.
func (c Cast) Lookup(id string) Speaker {
	for _, s := range c {
		if s.ID == id {
			return s
		}
	}
	return UnknownSpeaker
}
