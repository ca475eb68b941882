// Package notification renders and dispatches booking confirmation emails.
//
// Delivery policy is explicit: with StrictDelivery enabled (automated
// testing), missing credentials and dispatch failures are hard errors; with
// it disabled (production), both are logged and absorbed so a booking never
// fails because its confirmation did.
package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/shuvo-art/Sheba-Task/internal/api/metrics"
	"github.com/shuvo-art/Sheba-Task/internal/core/domain"
)

// SendGuard suppresses duplicate confirmations for the same booking.
// Guard failures are never fatal; the message is sent anyway.
type SendGuard interface {
	AlreadySent(ctx context.Context, bookingID int64) (bool, error)
	MarkSent(ctx context.Context, bookingID int64) error
}

// Notifier implements ports.BookingNotifier over a lazily constructed,
// process-wide Transport.
type Notifier struct {
	cfg    TransportConfig
	strict bool
	guard  SendGuard
	logger zerolog.Logger

	mu        sync.Mutex
	transport Transport
}

// Options configures a Notifier.
type Options struct {
	Transport TransportConfig
	// StrictDelivery makes missing credentials and dispatch failures
	// propagate to the caller instead of being logged and absorbed.
	StrictDelivery bool
	// Guard is optional; nil disables duplicate suppression.
	Guard  SendGuard
	Logger zerolog.Logger
}

func New(opts Options) *Notifier {
	return &Notifier{
		cfg:    opts.Transport,
		strict: opts.StrictDelivery,
		guard:  opts.Guard,
		logger: opts.Logger,
	}
}

// getTransport returns the shared transport, constructing it on first use.
// Construction is idempotent and retried while the transport is still nil,
// so a later call can succeed once credentials appear.
func (n *Notifier) getTransport() (Transport, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.transport != nil {
		return n.transport, nil
	}
	if !n.cfg.Configured() {
		return nil, domain.ErrEmailConfigMissing
	}
	n.transport = newTransport(n.cfg)
	return n.transport, nil
}

// SendBookingConfirmation renders and dispatches the confirmation for a
// created booking.
func (n *Notifier) SendBookingConfirmation(ctx context.Context, booking *domain.Booking, service *domain.Service) error {
	transport, err := n.getTransport()
	if err != nil {
		if n.strict {
			return err
		}
		metrics.NotificationsTotal.WithLabelValues("skipped").Inc()
		n.logger.Warn().
			Int64("booking_id", booking.ID).
			Msg("email credentials not configured, skipping booking confirmation")
		return nil
	}

	if n.guard != nil {
		if dup, guardErr := n.guard.AlreadySent(ctx, booking.ID); guardErr != nil {
			n.logger.Warn().Err(guardErr).Int64("booking_id", booking.ID).Msg("send guard check failed, sending anyway")
		} else if dup {
			metrics.NotificationsTotal.WithLabelValues("deduped").Inc()
			n.logger.Debug().Int64("booking_id", booking.ID).Msg("confirmation already sent, skipping")
			return nil
		}
	}

	subject, text, html := renderConfirmation(booking, service)

	if err := transport.Send(ctx, booking.Email, subject, text, html); err != nil {
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		n.logger.Warn().Err(err).
			Int64("booking_id", booking.ID).
			Str("to", booking.Email).
			Msg("failed to send booking confirmation")
		if n.strict {
			return fmt.Errorf("Failed to send booking confirmation: %w", err)
		}
		return nil
	}

	if n.guard != nil {
		if err := n.guard.MarkSent(ctx, booking.ID); err != nil {
			n.logger.Warn().Err(err).Int64("booking_id", booking.ID).Msg("failed to mark confirmation as sent")
		}
	}

	metrics.NotificationsTotal.WithLabelValues("sent").Inc()
	n.logger.Info().
		Int64("booking_id", booking.ID).
		Str("to", booking.Email).
		Msg("booking confirmation sent")
	return nil
}

func renderConfirmation(booking *domain.Booking, service *domain.Service) (subject, text, html string) {
	schedule := booking.ScheduleDateTime.UTC().Format(time.RFC3339)

	subject = "Booking Confirmation"

	text = fmt.Sprintf(
		"Dear %s,\n\nYour booking for %s has been confirmed.\nDetails:\n"+
			"- Booking ID: %d\n- Date/Time: %s\n- Price: $%.2f\n\n"+
			"Thank you for choosing Sheba Platform!",
		booking.CustomerName, service.Name, booking.ID, schedule, service.Price)

	html = fmt.Sprintf(
		"<h2>Booking Confirmation</h2>"+
			"<p>Dear %s,</p>"+
			"<p>Your booking for <strong>%s</strong> has been confirmed.</p>"+
			"<h3>Details:</h3>"+
			"<ul>"+
			"<li><strong>Booking ID:</strong> %d</li>"+
			"<li><strong>Date/Time:</strong> %s</li>"+
			"<li><strong>Price:</strong> $%.2f</li>"+
			"</ul>"+
			"<p>Thank you for choosing Sheba Platform!</p>",
		booking.CustomerName, service.Name, booking.ID, schedule, service.Price)

	return subject, text, html
}
