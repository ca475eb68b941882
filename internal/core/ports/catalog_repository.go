package ports

import (
	"context"

	"github.com/shuvo-art/Sheba-Task/internal/core/domain"
)

// ServiceRepository defines persistence operations for catalog services.
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	FindByID(ctx context.Context, id int64) (*domain.Service, error)
	// List returns a page of services ordered newest first plus the total count.
	List(ctx context.Context, page, limit int) ([]*domain.Service, int64, error)
	Update(ctx context.Context, s *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
}
