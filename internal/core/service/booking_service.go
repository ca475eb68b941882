package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shuvo-art/Sheba-Task/internal/api/metrics"
	"github.com/shuvo-art/Sheba-Task/internal/core/domain"
	"github.com/shuvo-art/Sheba-Task/internal/core/ports"
)

// BookingService implements the booking workflow. Every step runs in order
// because each outcome gates the next; the existence checks and the insert
// are not wrapped in one transaction, so a service or user deleted in
// between would not be caught. That race is accepted.
type BookingService struct {
	bookings ports.BookingRepository
	services ports.ServiceRepository
	users    ports.UserRepository
	notifier ports.BookingNotifier
	logger   zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	services ports.ServiceRepository,
	users ports.UserRepository,
	notifier ports.BookingNotifier,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		services: services,
		users:    users,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateBooking validates the request against the referenced entities,
// persists the booking with status "pending" and sends the confirmation
// notification. All failures are wrapped with the operation prefix; the
// underlying cause stays reachable through errors.Is for status mapping.
func (s *BookingService) CreateBooking(ctx context.Context, input ports.CreateBookingInput, userID int64) (*domain.Booking, error) {
	booking, err := s.createBooking(ctx, input, userID)
	if err != nil {
		metrics.BookingsFailedTotal.WithLabelValues(failureReason(err)).Inc()
		return nil, fmt.Errorf("Failed to create booking: %w", err)
	}

	metrics.BookingsCreatedTotal.Inc()
	return booking, nil
}

func (s *BookingService) createBooking(ctx context.Context, input ports.CreateBookingInput, userID int64) (*domain.Booking, error) {
	svc, err := s.services.FindByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !input.ScheduleDateTime.After(time.Now()) {
		return nil, domain.ErrScheduleNotFuture
	}

	if !domain.ValidPhoneNumber(input.PhoneNumber) {
		return nil, domain.ErrInvalidPhoneNumber
	}

	booking, err := s.bookings.Insert(ctx, &domain.Booking{
		CustomerName:     input.CustomerName,
		Email:            input.Email,
		PhoneNumber:      input.PhoneNumber,
		ServiceID:        svc.ID,
		UserID:           user.ID,
		Status:           domain.BookingPending,
		ScheduleDateTime: input.ScheduleDateTime.UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to persist booking")
		return nil, err
	}

	// Best effort in relaxed mode; the notifier only reports an error when
	// strict delivery is enabled.
	if err := s.notifier.SendBookingConfirmation(ctx, booking, svc); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("booking_id", booking.ID).
		Int64("service_id", svc.ID).
		Int64("user_id", user.ID).
		Msg("booking created")

	return booking, nil
}

// GetBookingStatus returns the booking with the given id only if it belongs
// to userID. A missing id and a foreign owner yield the same outcome so
// non-owners learn nothing about which ids exist.
func (s *BookingService) GetBookingStatus(ctx context.Context, id, userID int64) (*ports.BookingDetail, error) {
	detail, err := s.bookings.FindByIDAndOwner(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("Failed to retrieve booking: %w", err)
	}
	return detail, nil
}

// GetAllBookings returns every booking with service and user projections.
// No pagination; admin access is enforced at the route level.
func (s *BookingService) GetAllBookings(ctx context.Context) ([]*ports.BookingOverview, error) {
	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("Failed to retrieve bookings: %w", err)
	}
	return bookings, nil
}

// failureReason labels a create-booking failure for metrics.
func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrServiceNotFound):
		return "service_not_found"
	case errors.Is(err, domain.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, domain.ErrScheduleNotFuture):
		return "schedule_in_past"
	case errors.Is(err, domain.ErrInvalidPhoneNumber):
		return "invalid_phone"
	case errors.Is(err, domain.ErrEmailConfigMissing):
		return "email_config"
	default:
		return "internal"
	}
}
