package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/abhisek/casefile/internal/quiz"
)

// ParseAnswers decodes an answer sheet keyed by question id. The shape of
// each value follows the question it answers:
//
//	{"p1q1": [2], "p2q2": {"0": "single-phase"}, "p3q1": {"0": [0, 1, 2, 3]}}
func (p *Provider) ParseAnswers(raw []byte) (quiz.Answers, error) {
	var sheet map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sheet); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}

	ids := make([]string, 0, len(sheet))
	for id := range sheet {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make(quiz.Answers, len(sheet))
	var errs []error
	for _, id := range ids {
		q, ok := p.Question(id)
		if !ok {
			errs = append(errs, fmt.Errorf("%w %q", ErrUnknownQuestion, id))
			continue
		}
		a, err := decodeAnswer(q, sheet[id])
		if err != nil {
			errs = append(errs, fmt.Errorf("answer %q: %w", id, err))
			continue
		}
		out[id] = a
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeAnswer(q quiz.Question, raw json.RawMessage) (quiz.Answer, error) {
	switch q.(type) {
	case *quiz.SelectQuestion:
		var sel []int
		if err := json.Unmarshal(raw, &sel); err != nil {
			return nil, err
		}
		return quiz.SelectAnswer(sel), nil
	case *quiz.FillInQuestion:
		var entries map[string]string
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, err
		}
		out := make(quiz.FillInAnswer, len(entries))
		for k, v := range entries {
			id, err := strconv.Atoi(k)
			if err != nil {
				return nil, fmt.Errorf("blank id %q: %w", k, err)
			}
			out[id] = v
		}
		return out, nil
	case *quiz.OrderingQuestion:
		var orders map[string][]int
		if err := json.Unmarshal(raw, &orders); err != nil {
			return nil, err
		}
		out := make(quiz.OrderingAnswer, len(orders))
		for k, v := range orders {
			sub, err := strconv.Atoi(k)
			if err != nil {
				return nil, fmt.Errorf("sub-question %q: %w", k, err)
			}
			out[sub] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported question type %T", q)
	}
}
