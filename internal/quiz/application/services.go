package application

import (
	"context"
	"errors"

	catalogdomain "github.com/stylecrate/stylecrate-services/api/internal/catalog/domain"
	quizdomain "github.com/stylecrate/stylecrate-services/api/internal/quiz/domain"
)

// ErrEmptyResultSet signals that quiz scoring produced winners but none of
// them exist in the persisted catalog. That is a configuration mismatch
// between the static weight tables and the stored aesthetics, not a
// transient condition.
var ErrEmptyResultSet = errors.New("no aesthetics resolved for quiz result")

// ResolvedAesthetic pairs a quiz ranking row with its catalog record.
type ResolvedAesthetic struct {
	Aesthetic  *catalogdomain.Aesthetic
	Score      int
	Percentage float64
}

// SubmissionResult is the outcome of a quiz submission: the winning
// aesthetic plus up to three alternatives.
type SubmissionResult struct {
	Top          ResolvedAesthetic
	Alternatives []ResolvedAesthetic
}

// QuizService exposes the style-quiz use-cases.
type QuizService interface {
	QuizID() string
	Questions() []quizdomain.Question
	Submit(ctx context.Context, answers []quizdomain.Answer) (*SubmissionResult, error)
	DetailedResults(ctx context.Context, answers []quizdomain.Answer) ([]ResolvedAesthetic, error)
}
