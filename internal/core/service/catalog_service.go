package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shuvo-art/Sheba-Task/internal/core/domain"
	"github.com/shuvo-art/Sheba-Task/internal/core/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// CatalogService manages the bookable service catalog.
type CatalogService struct {
	repo   ports.ServiceRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ServiceRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// ListServices returns one page of services, newest first.
func (s *CatalogService) ListServices(ctx context.Context, page, limit int) (*ports.ServicePage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	services, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &ports.ServicePage{
		Services: services,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

func (s *CatalogService) CreateService(ctx context.Context, input ports.ServiceInput) (*domain.Service, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Service{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create service")
		return nil, err
	}

	s.logger.Info().Int64("service_id", created.ID).Str("name", created.Name).Msg("service created")
	return created, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, id int64, input ports.ServiceInput) (*domain.Service, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Category = input.Category
	existing.Price = input.Price
	existing.Description = input.Description
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("service_id", id).Msg("service updated")
	return updated, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("service_id", id).Msg("service deleted")
	return nil
}
