package application

import (
	"context"
	"errors"

	"github.com/stylecrate/stylecrate-services/api/internal/catalog/domain"
)

// ErrAestheticNotFound is returned by repositories when a lookup matches
// nothing. Callers that treat absence as normal check it with errors.Is.
var ErrAestheticNotFound = errors.New("aesthetic not found")

// AestheticRepository abstracts the persisted aesthetic catalog.
type AestheticRepository interface {
	FindAll(ctx context.Context) ([]*domain.Aesthetic, error)
	FindByID(ctx context.Context, id string) (*domain.Aesthetic, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Aesthetic, error)
	Create(ctx context.Context, aesthetic *domain.Aesthetic) error
	Update(ctx context.Context, aesthetic *domain.Aesthetic) error
}

// AestheticQueryService describes read use-cases over the catalog.
type AestheticQueryService interface {
	List(ctx context.Context) ([]*domain.Aesthetic, error)
	Detail(ctx context.Context, id string) (*domain.Aesthetic, error)
	BySlug(ctx context.Context, slug string) (*domain.Aesthetic, error)
}

// AestheticCommandService describes admin write use-cases.
type AestheticCommandService interface {
	Create(ctx context.Context, cmd CreateAestheticCommand) (*domain.Aesthetic, error)
	Update(ctx context.Context, id string, cmd UpdateAestheticCommand) (*domain.Aesthetic, error)
}

// CreateAestheticCommand contains inputs for creating an aesthetic.
type CreateAestheticCommand struct {
	Name        string
	Description string
	ImageURL    string
	Theme       domain.ThemePropertiesInput
}

// UpdateAestheticCommand contains partial inputs for updating an aesthetic.
// Nil fields are left untouched.
type UpdateAestheticCommand struct {
	Name        *string
	Description *string
	ImageURL    *string
	Theme       *domain.ThemePropertiesInput
}
