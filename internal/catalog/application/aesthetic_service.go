package application

import (
	"context"

	"github.com/stylecrate/stylecrate-services/api/internal/catalog/domain"
)

// aestheticQueryService is the concrete implementation of AestheticQueryService.
type aestheticQueryService struct {
	repo AestheticRepository
}

// NewAestheticQueryService creates a catalog read service.
func NewAestheticQueryService(repo AestheticRepository) AestheticQueryService {
	return &aestheticQueryService{repo: repo}
}

func (s *aestheticQueryService) List(ctx context.Context) ([]*domain.Aesthetic, error) {
	return s.repo.FindAll(ctx)
}

func (s *aestheticQueryService) Detail(ctx context.Context, id string) (*domain.Aesthetic, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *aestheticQueryService) BySlug(ctx context.Context, slug string) (*domain.Aesthetic, error) {
	return s.repo.FindBySlug(ctx, slug)
}

type aestheticCommandService struct {
	repo AestheticRepository
}

// NewAestheticCommandService creates the admin write service.
func NewAestheticCommandService(repo AestheticRepository) AestheticCommandService {
	return &aestheticCommandService{repo: repo}
}

func (s *aestheticCommandService) Create(ctx context.Context, cmd CreateAestheticCommand) (*domain.Aesthetic, error) {
	theme, err := domain.NewThemeProperties(cmd.Theme)
	if err != nil {
		return nil, err
	}

	// The repository assigns the identifier on insert.
	aesthetic, err := domain.NewAesthetic("", cmd.Name, cmd.Description, theme, cmd.ImageURL)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, aesthetic); err != nil {
		return nil, err
	}
	return aesthetic, nil
}

func (s *aestheticCommandService) Update(ctx context.Context, id string, cmd UpdateAestheticCommand) (*domain.Aesthetic, error) {
	aesthetic, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if err := aesthetic.UpdateName(*cmd.Name); err != nil {
			return nil, err
		}
	}
	if cmd.Description != nil {
		if err := aesthetic.UpdateDescription(*cmd.Description); err != nil {
			return nil, err
		}
	}
	if cmd.ImageURL != nil {
		if err := aesthetic.UpdateImageURL(*cmd.ImageURL); err != nil {
			return nil, err
		}
	}
	if cmd.Theme != nil {
		theme, err := domain.NewThemeProperties(*cmd.Theme)
		if err != nil {
			return nil, err
		}
		if err := aesthetic.UpdateThemeProperties(theme); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, aesthetic); err != nil {
		return nil, err
	}
	return aesthetic, nil
}
