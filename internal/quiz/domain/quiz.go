package domain

import (
	"errors"
	"fmt"
	"sort"

	catalogdomain "github.com/stylecrate/stylecrate-services/api/internal/catalog/domain"
)

// ErrInvalidAnswers marks an answer set that fails structural validation:
// wrong count, unknown question or option, or a duplicated question.
var ErrInvalidAnswers = errors.New("invalid answers")

// AestheticWeight is one vote an option casts toward an archetype. Weights
// are kept as an ordered list rather than a map so that accumulation order,
// and with it tie-breaking, stays deterministic.
type AestheticWeight struct {
	Slug   string
	Weight int
}

// Option is one selectable quiz choice with its weight votes.
type Option struct {
	ID      string
	Text    string
	Weights []AestheticWeight
}

// Question is a single quiz question with its ordered options.
type Question struct {
	ID      string
	Text    string
	Options []Option
}

// Answer pairs a question with the option the user picked.
type Answer struct {
	QuestionID string
	OptionID   string
}

// RankedAesthetic is one row of a quiz scoring result.
type RankedAesthetic struct {
	Slug       string
	Score      int
	Percentage float64
}

// StyleQuiz is the fixed question bank plus the weighted-vote aggregation.
// It holds no per-user state and is safe for concurrent use.
type StyleQuiz struct {
	id        string
	questions []Question
}

// NewStyleQuiz validates the question bank: every option weight must point
// at a known archetype slug and must not be negative. A bad weight table is
// a programming error in the static data and fails construction outright.
func NewStyleQuiz(id string, questions []Question) (*StyleQuiz, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("quiz must have at least one question")
	}
	for _, question := range questions {
		if len(question.Options) == 0 {
			return nil, fmt.Errorf("question %s has no options", question.ID)
		}
		for _, option := range question.Options {
			for _, weight := range option.Weights {
				if !catalogdomain.IsKnownSlug(weight.Slug) {
					return nil, fmt.Errorf("question %s option %s references unknown aesthetic %q", question.ID, option.ID, weight.Slug)
				}
				if weight.Weight < 0 {
					return nil, fmt.Errorf("question %s option %s has negative weight for %q", question.ID, option.ID, weight.Slug)
				}
			}
		}
	}
	return &StyleQuiz{id: id, questions: questions}, nil
}

// ID returns the quiz identifier.
func (q *StyleQuiz) ID() string {
	return q.id
}

// Questions returns a copy of the question bank.
func (q *StyleQuiz) Questions() []Question {
	return append([]Question{}, q.questions...)
}

// CalculateResults validates the answer set and aggregates option weights
// into a ranking. The sort is stable and descending by score; archetypes
// that tie keep the order in which they first accumulated a vote.
func (q *StyleQuiz) CalculateResults(answers []Answer) ([]RankedAesthetic, error) {
	if len(answers) != len(q.questions) {
		return nil, fmt.Errorf("%w: expected %d answers, got %d", ErrInvalidAnswers, len(q.questions), len(answers))
	}

	questionsByID := make(map[string]Question, len(q.questions))
	for _, question := range q.questions {
		questionsByID[question.ID] = question
	}

	totals := make(map[string]int)
	order := make([]string, 0, 16)
	answered := make(map[string]struct{}, len(answers))

	for _, answer := range answers {
		question, ok := questionsByID[answer.QuestionID]
		if !ok {
			return nil, fmt.Errorf("%w: unknown question %q", ErrInvalidAnswers, answer.QuestionID)
		}
		if _, dup := answered[answer.QuestionID]; dup {
			return nil, fmt.Errorf("%w: question %q answered more than once", ErrInvalidAnswers, answer.QuestionID)
		}
		answered[answer.QuestionID] = struct{}{}

		option, ok := findOption(question, answer.OptionID)
		if !ok {
			return nil, fmt.Errorf("%w: question %q has no option %q", ErrInvalidAnswers, answer.QuestionID, answer.OptionID)
		}

		for _, weight := range option.Weights {
			if _, seen := totals[weight.Slug]; !seen {
				order = append(order, weight.Slug)
			}
			totals[weight.Slug] += weight.Weight
		}
	}

	grandTotal := 0
	for _, score := range totals {
		grandTotal += score
	}

	results := make([]RankedAesthetic, 0, len(order))
	for _, slug := range order {
		percentage := 0.0
		if grandTotal > 0 {
			percentage = float64(totals[slug]) / float64(grandTotal) * 100
		}
		results = append(results, RankedAesthetic{
			Slug:       slug,
			Score:      totals[slug],
			Percentage: percentage,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results, nil
}

func findOption(question Question, optionID string) (Option, bool) {
	for _, option := range question.Options {
		if option.ID == optionID {
			return option, true
		}
	}
	return Option{}, false
}
