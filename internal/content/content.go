// Package content loads the authored question and story catalog.
package content

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/mod/semver"

	"github.com/abhisek/casefile/internal/game"
	"github.com/abhisek/casefile/internal/i18n"
	"github.com/abhisek/casefile/internal/quiz"
	"github.com/abhisek/casefile/internal/story"
)

//go:embed catalog.json
var embeddedCatalog []byte

// MinFormat is the oldest catalog format this build reads. Catalogs must
// share its major version.
const MinFormat = "v1.0.0"

var (
	// ErrUnknownQuestion is returned when an id does not name a question.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrUnsupportedFormat is returned for catalogs of another major format.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// Part is a titled group of questions.
type Part struct {
	ID    string
	Title i18n.Text
}

// PartQuestions is one part with its questions in authored order.
type PartQuestions struct {
	Part      Part
	Questions []quiz.Question
}

// Provider serves an immutable, validated catalog.
type Provider struct {
	format     string
	parts      []Part
	questions  []quiz.Question
	byID       map[string]quiz.Question
	chapters   []story.Chapter
	characters game.Roster
	cast       story.Cast
}

// Default returns the catalog compiled into the binary.
func Default() (*Provider, error) {
	return Parse(embeddedCatalog)
}

// LoadFile reads and parses a catalog from path.
func LoadFile(path string) (*Provider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(raw)
}

// Load returns the catalog at path, or the embedded one if path is empty.
func Load(path string) (*Provider, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse validates raw catalog JSON and builds a Provider. Authoring problems
// in questions and chapters are collected and returned together.
func Parse(raw []byte) (*Provider, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var cat catalogJSON
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := checkFormat(cat.Format); err != nil {
		return nil, err
	}

	p := &Provider{
		format: cat.Format,
		byID:   make(map[string]quiz.Question, len(cat.Questions)),
	}
	var errs []error

	for _, w := range cat.Parts {
		p.parts = append(p.parts, Part{ID: w.ID, Title: w.Title})
	}
	for _, w := range cat.Characters {
		p.characters = append(p.characters, w.toCharacter())
		p.cast = append(p.cast, story.Speaker{ID: w.ID, Name: w.Name})
	}
	for _, w := range cat.Speakers {
		p.cast = append(p.cast, story.Speaker{ID: w.ID, Name: w.Name})
	}

	for _, w := range cat.Questions {
		q, err := w.toQuestion()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := p.byID[w.ID]; dup {
			errs = append(errs, &quiz.AuthoringError{QuestionID: w.ID, Reason: "duplicate question id"})
			continue
		}
		errs = append(errs, quiz.Validate(q)...)
		p.questions = append(p.questions, q)
		p.byID[w.ID] = q
	}

	for _, w := range cat.Chapters {
		ch, err := w.toChapter()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, id := range ch.QuestionIDs() {
			if _, ok := p.byID[id]; !ok {
				errs = append(errs, fmt.Errorf("chapter %q: %w %q", ch.ID, ErrUnknownQuestion, id))
			}
		}
		p.chapters = append(p.chapters, ch)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return p, nil
}

func checkFormat(format string) error {
	if !semver.IsValid(format) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedFormat, format)
	}
	if semver.Major(format) != semver.Major(MinFormat) || semver.Compare(format, MinFormat) < 0 {
		return fmt.Errorf("%w: %s (want %s.x at or after %s)", ErrUnsupportedFormat,
			format, semver.Major(MinFormat), MinFormat)
	}
	return nil
}

// Format returns the catalog format version.
func (p *Provider) Format() string { return p.format }

// Questions returns every question in authored order.
func (p *Provider) Questions() []quiz.Question { return p.questions }

// Question looks up a question by id.
func (p *Provider) Question(id string) (quiz.Question, bool) {
	q, ok := p.byID[id]
	return q, ok
}

// QuestionsByPart groups questions by part, in the order parts are
// declared. Questions whose part is not declared follow, grouped by first
// appearance.
func (p *Provider) QuestionsByPart() []PartQuestions {
	var out []PartQuestions
	index := make(map[string]int)
	for _, part := range p.parts {
		index[part.ID] = len(out)
		out = append(out, PartQuestions{Part: part})
	}
	for _, q := range p.questions {
		id := q.Info().Part
		i, ok := index[id]
		if !ok {
			i = len(out)
			index[id] = i
			out = append(out, PartQuestions{Part: Part{ID: id, Title: i18n.Text{i18n.Default: id}}})
		}
		out[i].Questions = append(out[i].Questions, q)
	}

	nonEmpty := out[:0]
	for _, pq := range out {
		if len(pq.Questions) > 0 {
			nonEmpty = append(nonEmpty, pq)
		}
	}
	return nonEmpty
}

// PartTitle returns the display title of a part, falling back to its id.
func (p *Provider) PartTitle(part string, lang i18n.Language) string {
	for _, pt := range p.parts {
		if pt.ID == part {
			return pt.Title.Get(lang)
		}
	}
	return part
}

// Chapters returns the story chapters.
func (p *Provider) Chapters() []story.Chapter { return p.chapters }

// Characters returns the playable detectives.
func (p *Provider) Characters() game.Roster { return p.characters }

// Cast returns everyone who can speak in a story.
func (p *Provider) Cast() story.Cast { return p.cast }

// Speaker resolves a dialogue speaker id. Unknown ids yield
// story.UnknownSpeaker.
func (p *Provider) Speaker(id string) story.Speaker { return p.cast.Lookup(id) }
