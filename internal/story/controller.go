package story

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/casefile/internal/game"
	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/quiz"
)

// DefaultAdvanceDelay is how long a correct answer stays on screen before
// the story moves on.
const DefaultAdvanceDelay = 1500 * time.Millisecond

// Signal tells the host what to do after a story operation.
type Signal int

const (
	// SignalNone means stay on the current scene and re-render.
	SignalNone Signal = iota

	// SignalNeedsAnswer rejects a confirmation with no answer.
	SignalNeedsAnswer

	// SignalTryAgain rejects an incorrect answer.
	SignalTryAgain

	// SignalCorrect accepts the answer. The host calls Advance after the
	// verdict's delay.
	SignalCorrect

	// SignalReturnToChapters means the cursor points outside the content.
	SignalReturnToChapters

	// SignalFinished means the chapter's conclusion was dismissed.
	SignalFinished
)

func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalNeedsAnswer:
		return "needs_answer"
	case SignalTryAgain:
		return "try_again"
	case SignalCorrect:
		return "correct"
	case SignalReturnToChapters:
		return "return_to_chapters"
	case SignalFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of confirming an answer on a question scene.
type Verdict struct {
	Signal Signal

	// Delay is set with SignalCorrect.
	Delay time.Duration

	// Penalized is true when this confirmation cost HP.
	Penalized bool

	Result quiz.Result
}

// QuestionLookup resolves question ids referenced by scenes.
type QuestionLookup interface {
	Question(id string) (quiz.Question, bool)
}

// Progress is the part of the game store the story drives.
type Progress interface {
	State() game.State
	StartChapter(index int)
	AdvanceStory()
	ApplyAnswerEffect(correct bool, progressGain float64)
}

// Options configures a Controller.
type Options struct {
	// Delay before advancing past a correct answer. Zero means
	// DefaultAdvanceDelay.
	Delay  time.Duration
	Logger zerolog.Logger
}

type cursor struct {
	chapter, scene int
}

// Controller sequences the scenes of a chapter. The scene cursor lives in
// the game state; the controller only moves it forward.
type Controller struct {
	chapters  []Chapter
	questions QuestionLookup
	game      Progress
	delay     time.Duration
	logger    zerolog.Logger

	// verdictAt is the scene the flags below describe. They reset whenever
	// the cursor moves.
	verdictAt cursor
	incorrect bool
	pending   bool
}

// NewController creates a controller over chapters.
func NewController(chapters []Chapter, questions QuestionLookup, g Progress, opts Options) *Controller {
	delay := opts.Delay
	if delay <= 0 {
		delay = DefaultAdvanceDelay
	}
	return &Controller{
		chapters:  chapters,
		questions: questions,
		game:      g,
		delay:     delay,
		logger:    opts.Logger,
		verdictAt: cursor{-1, -1},
	}
}

// Chapters returns the chapter list.
func (c *Controller) Chapters() []Chapter { return c.chapters }

// Delay returns the advance delay.
func (c *Controller) Delay() time.Duration { return c.delay }

// Start moves the cursor to the first scene of chapter index and refills HP.
func (c *Controller) Start(index int) Signal {
	if index < 0 || index >= len(c.chapters) {
		c.logger.Warn().Int("chapter", index).Msg("start unknown chapter")
		return SignalReturnToChapters
	}
	c.game.StartChapter(index)
	c.clear()
	c.logger.Info().Str("chapter", c.chapters[index].ID).Msg("chapter started")
	return SignalNone
}

// Current returns the chapter and scene under the cursor. ok is false when
// the cursor is out of bounds.
func (c *Controller) Current() (ch Chapter, scene Scene, ok bool) {
	st := c.game.State()
	if st.CurrentChapterIndex < 0 || st.CurrentChapterIndex >= len(c.chapters) {
		return Chapter{}, nil, false
	}
	ch = c.chapters[st.CurrentChapterIndex]
	if st.CurrentSceneIndex < 0 || st.CurrentSceneIndex >= len(ch.Scenes) {
		return ch, nil, false
	}
	return ch, ch.Scenes[st.CurrentSceneIndex], true
}

// Question returns the question for the current question scene.
func (c *Controller) Question() (quiz.Question, bool) {
	_, scene, ok := c.Current()
	if !ok {
		return nil, false
	}
	qs, ok := scene.(*QuestionScene)
	if !ok {
		return nil, false
	}
	return c.questions.Question(qs.QuestionID)
}

// Solved reports whether the current scene was answered correctly and is
// waiting to advance.
func (c *Controller) Solved() bool {
	return c.pending && c.verdictAt == c.here()
}

// Next handles "continue" on a non-question scene. Narrative scenes advance
// unless they are the last scene; a conclusion finishes the chapter.
// Question scenes must go through Confirm.
func (c *Controller) Next() Signal {
	ch, scene, ok := c.Current()
	if !ok {
		c.outOfBounds()
		return SignalReturnToChapters
	}
	switch scene.(type) {
	case *QuestionScene:
		return SignalNone
	case *ConclusionScene:
		return SignalFinished
	}
	if c.game.State().CurrentSceneIndex >= len(ch.Scenes)-1 {
		return SignalReturnToChapters
	}
	c.game.AdvanceStory()
	return SignalNone
}

// Confirm judges answer against the current question scene.
//
// An empty answer is rejected without effect. An incorrect answer costs HP
// only when the scene was not already marked incorrect, so confirming the
// same wrong answer twice is charged once. A correct answer never changes
// case progress in story mode.
func (c *Controller) Confirm(answer quiz.Answer, lang i18n.Language) Verdict {
	_, scene, ok := c.Current()
	if !ok {
		c.outOfBounds()
		return Verdict{Signal: SignalReturnToChapters}
	}
	qs, isQuestion := scene.(*QuestionScene)
	if !isQuestion {
		return Verdict{Signal: SignalNone}
	}
	q, found := c.questions.Question(qs.QuestionID)
	if !found {
		c.logger.Warn().Str("question", qs.QuestionID).Msg("scene references unknown question")
		return Verdict{Signal: SignalReturnToChapters}
	}

	here := c.here()
	if c.verdictAt != here {
		c.verdictAt = here
		c.incorrect = false
		c.pending = false
	}
	if c.pending {
		return Verdict{Signal: SignalCorrect, Delay: c.delay, Result: quiz.Evaluate(q, answer, lang)}
	}

	if !quiz.IsAnswered(answer) {
		return Verdict{Signal: SignalNeedsAnswer}
	}

	res := quiz.Evaluate(q, answer, lang)
	if res.Correct {
		c.game.ApplyAnswerEffect(true, 0)
		c.incorrect = false
		c.pending = true
		return Verdict{Signal: SignalCorrect, Delay: c.delay, Result: res}
	}

	v := Verdict{Signal: SignalTryAgain, Result: res}
	if !c.incorrect {
		c.game.ApplyAnswerEffect(false, 0)
		c.incorrect = true
		v.Penalized = true
	}
	return v
}

// Advance moves past a correctly answered question scene. It does nothing
// unless Confirm accepted the current scene, so a late timer cannot skip
// a scene.
func (c *Controller) Advance() Signal {
	if !c.Solved() {
		return SignalNone
	}
	c.game.AdvanceStory()
	c.clear()
	if _, _, ok := c.Current(); !ok {
		c.outOfBounds()
		return SignalReturnToChapters
	}
	return SignalNone
}

func (c *Controller) here() cursor {
	st := c.game.State()
	return cursor{st.CurrentChapterIndex, st.CurrentSceneIndex}
}

func (c *Controller) clear() {
	c.verdictAt = cursor{-1, -1}
	c.incorrect = false
	c.pending = false
}

func (c *Controller) outOfBounds() {
	st := c.game.State()
	c.logger.Warn().
		Int("chapter", st.CurrentChapterIndex).
		Int("scene", st.CurrentSceneIndex).
		Msg("story cursor out of bounds")
}
