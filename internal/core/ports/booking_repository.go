package ports

import (
	"context"

	"github.com/shuvo-art/Sheba-Task/internal/core/domain"
)

// ServiceSummary is the catalog projection attached to booking reads.
type ServiceSummary struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// BookingDetail is a booking with its service projection attached.
type BookingDetail struct {
	Booking domain.Booking `json:"booking"`
	Service ServiceSummary `json:"service"`
}

// BookingOverview is the admin listing view: booking plus service and owner
// projections.
type BookingOverview struct {
	Booking   domain.Booking `json:"booking"`
	Service   ServiceSummary `json:"service"`
	UserEmail string         `json:"user_email"`
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	// Insert persists a new booking, assigning its identifier and the
	// created/updated timestamps.
	Insert(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	// FindByIDAndOwner returns the booking only when it belongs to userID.
	// Both a missing id and a foreign owner yield domain.ErrBookingNotFound.
	FindByIDAndOwner(ctx context.Context, id, userID int64) (*BookingDetail, error)
	// ListAll returns every booking with service and user projections.
	ListAll(ctx context.Context) ([]*BookingOverview, error)
}
