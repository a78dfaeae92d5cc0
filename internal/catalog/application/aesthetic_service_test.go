package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stylecrate/stylecrate-services/api/internal/catalog/domain"
)

type memoryRepository struct {
	byID   map[string]*domain.Aesthetic
	nextID int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{byID: make(map[string]*domain.Aesthetic)}
}

func (m *memoryRepository) FindAll(ctx context.Context) ([]*domain.Aesthetic, error) {
	aesthetics := make([]*domain.Aesthetic, 0, len(m.byID))
	for _, aesthetic := range m.byID {
		aesthetics = append(aesthetics, aesthetic)
	}
	return aesthetics, nil
}

func (m *memoryRepository) FindByID(ctx context.Context, id string) (*domain.Aesthetic, error) {
	aesthetic, ok := m.byID[id]
	if !ok {
		return nil, ErrAestheticNotFound
	}
	return aesthetic, nil
}

func (m *memoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Aesthetic, error) {
	for _, aesthetic := range m.byID {
		if aesthetic.Slug() == slug {
			return aesthetic, nil
		}
	}
	return nil, ErrAestheticNotFound
}

func (m *memoryRepository) Create(ctx context.Context, aesthetic *domain.Aesthetic) error {
	m.nextID++
	id := fmt.Sprintf("id-%d", m.nextID)
	*aesthetic = *domain.ReconstituteAesthetic(
		id,
		aesthetic.Name(),
		aesthetic.Description(),
		aesthetic.ThemeProperties(),
		aesthetic.ImageURL(),
		aesthetic.CreatedAt(),
		aesthetic.UpdatedAt(),
	)
	m.byID[id] = aesthetic
	return nil
}

func (m *memoryRepository) Update(ctx context.Context, aesthetic *domain.Aesthetic) error {
	if _, ok := m.byID[aesthetic.ID()]; !ok {
		return ErrAestheticNotFound
	}
	m.byID[aesthetic.ID()] = aesthetic
	return nil
}

func TestCommandServiceCreate(t *testing.T) {
	repo := newMemoryRepository()
	commands := NewAestheticCommandService(repo)

	aesthetic, err := commands.Create(context.Background(), CreateAestheticCommand{
		Name:        "Minimalist",
		Description: "Pared-back staples.",
		Theme:       domain.ThemePropertiesInput{Colors: []string{"#000000"}, Style: "minimal"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if aesthetic.ID() == "" {
		t.Fatalf("repository should assign an id on create")
	}

	_, err = commands.Create(context.Background(), CreateAestheticCommand{
		Name:        "Broken",
		Description: "No colors.",
		Theme:       domain.ThemePropertiesInput{Style: "minimal"},
	})
	if err == nil {
		t.Fatalf("invalid theme should fail creation")
	}
}

func TestCommandServicePartialUpdate(t *testing.T) {
	repo := newMemoryRepository()
	commands := NewAestheticCommandService(repo)

	created, err := commands.Create(context.Background(), CreateAestheticCommand{
		Name:        "Minimalist",
		Description: "Pared-back staples.",
		Theme:       domain.ThemePropertiesInput{Colors: []string{"#000000"}, Style: "minimal"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newName := "Normcore"
	updated, err := commands.Update(context.Background(), created.ID(), UpdateAestheticCommand{Name: &newName})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name() != "Normcore" {
		t.Fatalf("name not updated, got %q", updated.Name())
	}
	if updated.Description() != "Pared-back staples." {
		t.Fatalf("nil fields must stay untouched, description changed to %q", updated.Description())
	}

	_, err = commands.Update(context.Background(), "ghost", UpdateAestheticCommand{Name: &newName})
	if !errors.Is(err, ErrAestheticNotFound) {
		t.Fatalf("expected ErrAestheticNotFound, got %v", err)
	}
}
