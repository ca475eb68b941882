package ports

import (
	"context"
	"time"

	"github.com/shuvo-art/Sheba-Task/internal/core/domain"
)

// CreateBookingInput carries all data needed to create a booking. The shape
// (non-empty name, valid email, phone length, positive service id, parseable
// date) is checked at the transport boundary before the service sees it.
type CreateBookingInput struct {
	CustomerName     string
	Email            string
	PhoneNumber      string
	ServiceID        int64
	ScheduleDateTime time.Time
}

// BookingService defines the booking use cases.
type BookingService interface {
	// CreateBooking runs the booking workflow: verify the referenced service
	// and acting user exist, enforce the future-schedule rule, persist with
	// status "pending", then send the confirmation notification.
	CreateBooking(ctx context.Context, input CreateBookingInput, userID int64) (*domain.Booking, error)
	// GetBookingStatus returns the booking only when it belongs to userID.
	GetBookingStatus(ctx context.Context, id, userID int64) (*BookingDetail, error)
	// GetAllBookings returns every booking with its projections (admin only,
	// enforced at the route level).
	GetAllBookings(ctx context.Context) ([]*BookingOverview, error)
}

// BookingNotifier sends a confirmation message for a created booking.
// Implementations decide whether delivery failures propagate (strict mode)
// or are absorbed (relaxed mode); they must never fail for reasons other
// than their own configuration or dispatch.
type BookingNotifier interface {
	SendBookingConfirmation(ctx context.Context, booking *domain.Booking, service *domain.Service) error
}
