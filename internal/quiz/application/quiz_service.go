package application

import (
	"context"
	"errors"
	"math"

	"golang.org/x/sync/errgroup"

	catalogapp "github.com/stylecrate/stylecrate-services/api/internal/catalog/application"
	catalogdomain "github.com/stylecrate/stylecrate-services/api/internal/catalog/domain"
	quizdomain "github.com/stylecrate/stylecrate-services/api/internal/quiz/domain"
)

// resolveLimit caps how many ranked slugs are looked up in the catalog.
const resolveLimit = 5

// alternativesLimit caps how many runner-up aesthetics a submission returns.
const alternativesLimit = 3

type quizService struct {
	quiz    *quizdomain.StyleQuiz
	catalog catalogapp.AestheticRepository
}

// NewQuizService wires the static quiz against the aesthetic catalog.
func NewQuizService(quiz *quizdomain.StyleQuiz, catalog catalogapp.AestheticRepository) QuizService {
	return &quizService{quiz: quiz, catalog: catalog}
}

func (s *quizService) QuizID() string {
	return s.quiz.ID()
}

func (s *quizService) Questions() []quizdomain.Question {
	return s.quiz.Questions()
}

// DetailedResults scores the answers and resolves the top ranked slugs
// against the catalog. Lookups run concurrently; results are merged back in
// rank order, and slugs missing from the catalog are dropped.
func (s *quizService) DetailedResults(ctx context.Context, answers []quizdomain.Answer) ([]ResolvedAesthetic, error) {
	ranked, err := s.quiz.CalculateResults(answers)
	if err != nil {
		return nil, err
	}

	if len(ranked) > resolveLimit {
		ranked = ranked[:resolveLimit]
	}

	found := make([]*catalogdomain.Aesthetic, len(ranked))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, entry := range ranked {
		i, entry := i, entry
		group.Go(func() error {
			aesthetic, err := s.catalog.FindBySlug(groupCtx, entry.Slug)
			if errors.Is(err, catalogapp.ErrAestheticNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			found[i] = aesthetic
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	resolved := make([]ResolvedAesthetic, 0, len(ranked))
	for i, entry := range ranked {
		if found[i] == nil {
			continue
		}
		resolved = append(resolved, ResolvedAesthetic{
			Aesthetic:  found[i],
			Score:      entry.Score,
			Percentage: roundToOneDecimal(entry.Percentage),
		})
	}
	return resolved, nil
}

func (s *quizService) Submit(ctx context.Context, answers []quizdomain.Answer) (*SubmissionResult, error) {
	resolved, err := s.DetailedResults(ctx, answers)
	if err != nil {
		return nil, err
	}
	if len(resolved) == 0 {
		return nil, ErrEmptyResultSet
	}

	alternatives := resolved[1:]
	if len(alternatives) > alternativesLimit {
		alternatives = alternatives[:alternativesLimit]
	}

	return &SubmissionResult{
		Top:          resolved[0],
		Alternatives: alternatives,
	}, nil
}

func roundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}
