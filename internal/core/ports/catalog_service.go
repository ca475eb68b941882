package ports

import (
	"context"

	"github.com/shuvo-art/Sheba-Task/internal/core/domain"
)

// ServiceInput carries the data for creating or updating a catalog service.
type ServiceInput struct {
	Name        string
	Category    string
	Price       float64
	Description string
}

// ServicePage is one page of catalog listing results.
type ServicePage struct {
	Services []*domain.Service
	Total    int64
	Page     int
	Limit    int
}

// CatalogService defines use-case operations for the service catalog.
// Create, Update and Delete are admin-only; enforcement happens at the route
// level.
type CatalogService interface {
	ListServices(ctx context.Context, page, limit int) (*ServicePage, error)
	CreateService(ctx context.Context, input ServiceInput) (*domain.Service, error)
	UpdateService(ctx context.Context, id int64, input ServiceInput) (*domain.Service, error)
	DeleteService(ctx context.Context, id int64) error
}
