package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	catalogapp "github.com/stylecrate/stylecrate-services/api/internal/catalog/application"
	catalogdomain "github.com/stylecrate/stylecrate-services/api/internal/catalog/domain"
	quizdomain "github.com/stylecrate/stylecrate-services/api/internal/quiz/domain"
)

// fakeCatalog is an in-memory AestheticRepository keyed by slug.
type fakeCatalog struct {
	bySlug map[string]*catalogdomain.Aesthetic
	err    error
}

func (f *fakeCatalog) FindAll(ctx context.Context) ([]*catalogdomain.Aesthetic, error) {
	aesthetics := make([]*catalogdomain.Aesthetic, 0, len(f.bySlug))
	for _, aesthetic := range f.bySlug {
		aesthetics = append(aesthetics, aesthetic)
	}
	return aesthetics, nil
}

func (f *fakeCatalog) FindByID(ctx context.Context, id string) (*catalogdomain.Aesthetic, error) {
	for _, aesthetic := range f.bySlug {
		if aesthetic.ID() == id {
			return aesthetic, nil
		}
	}
	return nil, catalogapp.ErrAestheticNotFound
}

func (f *fakeCatalog) FindBySlug(ctx context.Context, slug string) (*catalogdomain.Aesthetic, error) {
	if f.err != nil {
		return nil, f.err
	}
	aesthetic, ok := f.bySlug[slug]
	if !ok {
		return nil, catalogapp.ErrAestheticNotFound
	}
	return aesthetic, nil
}

func (f *fakeCatalog) Create(ctx context.Context, aesthetic *catalogdomain.Aesthetic) error {
	f.bySlug[aesthetic.Slug()] = aesthetic
	return nil
}

func (f *fakeCatalog) Update(ctx context.Context, aesthetic *catalogdomain.Aesthetic) error {
	f.bySlug[aesthetic.Slug()] = aesthetic
	return nil
}

func newFakeCatalog(t *testing.T, names ...string) *fakeCatalog {
	t.Helper()
	catalog := &fakeCatalog{bySlug: make(map[string]*catalogdomain.Aesthetic)}
	for i, name := range names {
		theme, err := catalogdomain.NewThemeProperties(catalogdomain.ThemePropertiesInput{
			Colors: []string{"#000000"},
			Style:  "minimal",
		})
		if err != nil {
			t.Fatalf("building theme: %v", err)
		}
		aesthetic, err := catalogdomain.NewAesthetic(fmt.Sprintf("id-%d", i), name, "A style archetype.", theme, "")
		if err != nil {
			t.Fatalf("building aesthetic %q: %v", name, err)
		}
		catalog.bySlug[aesthetic.Slug()] = aesthetic
	}
	return catalog
}

func minimalistAnswers(t *testing.T, quiz *quizdomain.StyleQuiz) []quizdomain.Answer {
	t.Helper()
	answers := make([]quizdomain.Answer, 0, 8)
	for _, question := range quiz.Questions() {
		answers = append(answers, quizdomain.Answer{
			QuestionID: question.ID,
			OptionID:   question.ID + "a",
		})
	}
	return answers
}

func newTestService(t *testing.T, catalog catalogapp.AestheticRepository) (QuizService, *quizdomain.StyleQuiz) {
	t.Helper()
	quiz, err := quizdomain.DefaultStyleQuiz()
	if err != nil {
		t.Fatalf("default quiz: %v", err)
	}
	return NewQuizService(quiz, catalog), quiz
}

func TestSubmitResolvesTopAndAlternatives(t *testing.T) {
	catalog := newFakeCatalog(t, "Minimalist", "Normcore", "Old Money", "Parisian Chic", "Avant-Garde")
	service, quiz := newTestService(t, catalog)

	result, err := service.Submit(context.Background(), minimalistAnswers(t, quiz))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if got := result.Top.Aesthetic.Slug(); got != "minimalist" {
		t.Fatalf("expected minimalist top, got %q", got)
	}
	if result.Top.Score != 73 {
		t.Fatalf("expected top score 73, got %d", result.Top.Score)
	}
	if result.Top.Percentage != 50.7 {
		t.Fatalf("expected percentage rounded to 50.7, got %v", result.Top.Percentage)
	}

	if len(result.Alternatives) != 3 {
		t.Fatalf("expected 3 alternatives, got %d", len(result.Alternatives))
	}
	wantOrder := []string{"normcore", "old-money", "parisian-chic"}
	for i, want := range wantOrder {
		if got := result.Alternatives[i].Aesthetic.Slug(); got != want {
			t.Fatalf("alternative %d: got %q, want %q", i, got, want)
		}
	}
}

func TestDetailedResultsDropsMissingSlugs(t *testing.T) {
	catalog := newFakeCatalog(t, "Minimalist", "Old Money", "Parisian Chic", "Avant-Garde")
	service, quiz := newTestService(t, catalog)

	resolved, err := service.DetailedResults(context.Background(), minimalistAnswers(t, quiz))
	if err != nil {
		t.Fatalf("DetailedResults: %v", err)
	}

	wantOrder := []string{"minimalist", "old-money", "parisian-chic", "avant-garde"}
	if len(resolved) != len(wantOrder) {
		t.Fatalf("expected %d resolved aesthetics, got %d", len(wantOrder), len(resolved))
	}
	for i, want := range wantOrder {
		if got := resolved[i].Aesthetic.Slug(); got != want {
			t.Fatalf("resolved %d: got %q, want %q", i, got, want)
		}
	}
}

func TestSubmitEmptyCatalog(t *testing.T) {
	service, quiz := newTestService(t, newFakeCatalog(t))

	_, err := service.Submit(context.Background(), minimalistAnswers(t, quiz))
	if !errors.Is(err, ErrEmptyResultSet) {
		t.Fatalf("expected ErrEmptyResultSet, got %v", err)
	}
}

func TestSubmitPropagatesInvalidAnswers(t *testing.T) {
	service, _ := newTestService(t, newFakeCatalog(t, "Minimalist"))

	_, err := service.Submit(context.Background(), nil)
	if !errors.Is(err, quizdomain.ErrInvalidAnswers) {
		t.Fatalf("expected ErrInvalidAnswers, got %v", err)
	}
}

func TestDetailedResultsPropagatesRepositoryErrors(t *testing.T) {
	repoErr := errors.New("connection reset")
	catalog := newFakeCatalog(t, "Minimalist")
	catalog.err = repoErr
	service, quiz := newTestService(t, catalog)

	_, err := service.DetailedResults(context.Background(), minimalistAnswers(t, quiz))
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error to propagate, got %v", err)
	}
}
