package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/shuvo-art/Sheba-Task/internal/core/domain"
	"github.com/shuvo-art/Sheba-Task/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubServiceRepo struct {
	services map[int64]*domain.Service
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{services: make(map[int64]*domain.Service)}
}

func (r *stubServiceRepo) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	clone := *s
	if clone.ID == 0 {
		clone.ID = int64(len(r.services)) + 1
	}
	r.services[clone.ID] = &clone
	return &clone, nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id int64) (*domain.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubServiceRepo) List(_ context.Context, page, limit int) ([]*domain.Service, int64, error) {
	var out []*domain.Service
	for _, s := range r.services {
		clone := *s
		out = append(out, &clone)
	}
	return out, int64(len(r.services)), nil
}

func (r *stubServiceRepo) Update(_ context.Context, s *domain.Service) (*domain.Service, error) {
	if _, ok := r.services[s.ID]; !ok {
		return nil, domain.ErrServiceNotFound
	}
	clone := *s
	r.services[s.ID] = &clone
	return &clone, nil
}

func (r *stubServiceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.services[id]; !ok {
		return domain.ErrServiceNotFound
	}
	delete(r.services, id)
	return nil
}

type stubUserRepo struct {
	users map[int64]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	clone := *u
	if clone.ID == 0 {
		clone.ID = int64(len(r.users)) + 1
	}
	for _, existing := range r.users {
		if existing.Email == clone.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.users[clone.ID] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type stubBookingRepo struct {
	bookings  map[int64]*domain.Booking
	services  *stubServiceRepo
	users     *stubUserRepo
	nextID    int64
	insertErr error
}

func newStubBookingRepo(services *stubServiceRepo, users *stubUserRepo) *stubBookingRepo {
	return &stubBookingRepo{
		bookings: make(map[int64]*domain.Booking),
		services: services,
		users:    users,
	}
}

func (r *stubBookingRepo) Insert(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	r.nextID++
	now := time.Now().UTC()
	clone := *b
	clone.ID = r.nextID
	clone.CreatedAt = now
	clone.UpdatedAt = now
	r.bookings[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *stubBookingRepo) FindByIDAndOwner(_ context.Context, id, userID int64) (*ports.BookingDetail, error) {
	b, ok := r.bookings[id]
	if !ok || b.UserID != userID {
		return nil, domain.ErrBookingNotFound
	}
	detail := &ports.BookingDetail{Booking: *b}
	if svc, ok := r.services.services[b.ServiceID]; ok {
		detail.Service = ports.ServiceSummary{Name: svc.Name, Price: svc.Price}
	}
	return detail, nil
}

func (r *stubBookingRepo) ListAll(_ context.Context) ([]*ports.BookingOverview, error) {
	var out []*ports.BookingOverview
	for _, b := range r.bookings {
		view := &ports.BookingOverview{Booking: *b}
		if svc, ok := r.services.services[b.ServiceID]; ok {
			view.Service = ports.ServiceSummary{Name: svc.Name, Price: svc.Price}
		}
		if u, ok := r.users.users[b.UserID]; ok {
			view.UserEmail = u.Email
		}
		out = append(out, view)
	}
	return out, nil
}

// stubNotifier records whether it was invoked and can simulate a strict-mode
// delivery failure.
type stubNotifier struct {
	sent    int
	lastTo  string
	sendErr error
}

func (n *stubNotifier) SendBookingConfirmation(_ context.Context, booking *domain.Booking, _ *domain.Service) error {
	if n.sendErr != nil {
		return n.sendErr
	}
	n.sent++
	n.lastTo = booking.Email
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type bookingFixture struct {
	svc      *BookingService
	services *stubServiceRepo
	users    *stubUserRepo
	bookings *stubBookingRepo
	notifier *stubNotifier
	userID   int64
	serviceID int64
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	services := newStubServiceRepo()
	users := newStubUserRepo()
	bookings := newStubBookingRepo(services, users)
	notifier := &stubNotifier{}

	svc, err := services.Create(context.Background(), &domain.Service{Name: "Test Service", Category: "cleaning", Price: 100})
	if err != nil {
		t.Fatalf("seed service: %v", err)
	}
	user, err := users.Create(context.Background(), &domain.User{Email: "owner@example.com", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return &bookingFixture{
		svc:       NewBookingService(bookings, services, users, notifier, discardLogger),
		services:  services,
		users:     users,
		bookings:  bookings,
		notifier:  notifier,
		userID:    user.ID,
		serviceID: svc.ID,
	}
}

func validInput(serviceID int64) ports.CreateBookingInput {
	return ports.CreateBookingInput{
		CustomerName:     "John Doe",
		Email:            "john.doe@example.com",
		PhoneNumber:      "1234567890",
		ServiceID:        serviceID,
		ScheduleDateTime: time.Date(2099, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

// ---------------------------------------------------------------------------
// CreateBooking tests
// ---------------------------------------------------------------------------

func TestBookingService_Create_Success(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.svc.CreateBooking(context.Background(), validInput(f.serviceID), f.userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if booking.Status != domain.BookingPending {
		t.Errorf("expected status %q, got %q", domain.BookingPending, booking.Status)
	}
	if booking.UserID != f.userID {
		t.Errorf("expected user_id %d, got %d", f.userID, booking.UserID)
	}
	if booking.ServiceID != f.serviceID {
		t.Errorf("expected service_id %d, got %d", f.serviceID, booking.ServiceID)
	}
	if booking.ID == 0 {
		t.Error("expected an assigned booking id")
	}
	if booking.CreatedAt.IsZero() {
		t.Error("CreatedAt must not be zero")
	}
}

func TestBookingService_Create_SendsConfirmation(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.CreateBooking(context.Background(), validInput(f.serviceID), f.userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.notifier.sent != 1 {
		t.Fatalf("expected 1 confirmation, got %d", f.notifier.sent)
	}
	if f.notifier.lastTo != "john.doe@example.com" {
		t.Errorf("confirmation addressed to %q", f.notifier.lastTo)
	}
}

func TestBookingService_Create_ServiceNotFound(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.CreateBooking(context.Background(), validInput(9999), f.userID)
	if err == nil {
		t.Fatal("expected error for missing service")
	}
	if got, want := err.Error(), "Failed to create booking: Service not found"; got != want {
		t.Errorf("message: got %q, want %q", got, want)
	}
	if !errors.Is(err, domain.ErrServiceNotFound) {
		t.Error("cause must stay reachable via errors.Is")
	}
}

func TestBookingService_Create_UserNotFound(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.CreateBooking(context.Background(), validInput(f.serviceID), 9999)
	if err == nil {
		t.Fatal("expected error for missing user")
	}
	if got, want := err.Error(), "Failed to create booking: User not found"; got != want {
		t.Errorf("message: got %q, want %q", got, want)
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Error("cause must stay reachable via errors.Is")
	}
}

func TestBookingService_Create_PastSchedule(t *testing.T) {
	f := newBookingFixture(t)

	input := validInput(f.serviceID)
	input.ScheduleDateTime = time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC)

	_, err := f.svc.CreateBooking(context.Background(), input, f.userID)
	if err == nil {
		t.Fatal("expected error for past schedule")
	}
	if got, want := err.Error(), "Failed to create booking: Schedule date/time must be in the future"; got != want {
		t.Errorf("message: got %q, want %q", got, want)
	}
	if !errors.Is(err, domain.ErrScheduleNotFuture) {
		t.Error("cause must stay reachable via errors.Is")
	}
	if len(f.bookings.bookings) != 0 {
		t.Error("nothing must be persisted on failure")
	}
}

func TestBookingService_Create_ScheduleExactlyNow(t *testing.T) {
	f := newBookingFixture(t)

	input := validInput(f.serviceID)
	input.ScheduleDateTime = time.Now()

	_, err := f.svc.CreateBooking(context.Background(), input, f.userID)
	if !errors.Is(err, domain.ErrScheduleNotFuture) {
		t.Fatalf("schedule equal to now must be rejected, got %v", err)
	}
}

func TestBookingService_Create_InvalidPhone(t *testing.T) {
	f := newBookingFixture(t)

	cases := []string{"12345", "123-456-7890", "12345678a0", "+12345678901"}
	for _, phone := range cases {
		input := validInput(f.serviceID)
		input.PhoneNumber = phone

		_, err := f.svc.CreateBooking(context.Background(), input, f.userID)
		if err == nil {
			t.Errorf("phone %q: expected error", phone)
			continue
		}
		if got, want := err.Error(), "Failed to create booking: Invalid phone number format"; got != want {
			t.Errorf("phone %q: got %q, want %q", phone, got, want)
		}
	}
}

func TestBookingService_Create_NotifierFailurePropagates(t *testing.T) {
	f := newBookingFixture(t)
	f.notifier.sendErr = errors.New("Failed to send booking confirmation: smtp unreachable")

	_, err := f.svc.CreateBooking(context.Background(), validInput(f.serviceID), f.userID)
	if err == nil {
		t.Fatal("strict-mode notifier failure must fail the creation")
	}

	// The booking was persisted before the notification step; the relaxed
	// notifier (returning nil) keeps it reachable, and so does the strict
	// failure path.
	if len(f.bookings.bookings) != 1 {
		t.Errorf("expected persisted booking, got %d", len(f.bookings.bookings))
	}
}

func TestBookingService_Create_RelaxedNotifierKeepsBookingQueryable(t *testing.T) {
	f := newBookingFixture(t)
	// A relaxed notifier absorbs delivery failures and reports success.

	booking, err := f.svc.CreateBooking(context.Background(), validInput(f.serviceID), f.userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	detail, err := f.svc.GetBookingStatus(context.Background(), booking.ID, f.userID)
	if err != nil {
		t.Fatalf("booking must be queryable after creation: %v", err)
	}
	if detail.Booking.ID != booking.ID {
		t.Errorf("expected booking %d, got %d", booking.ID, detail.Booking.ID)
	}
}

func TestBookingService_Create_RepoError(t *testing.T) {
	f := newBookingFixture(t)
	f.bookings.insertErr = errors.New("db unavailable")

	_, err := f.svc.CreateBooking(context.Background(), validInput(f.serviceID), f.userID)
	if err == nil {
		t.Fatal("expected error when repo fails")
	}
	if f.notifier.sent != 0 {
		t.Error("no confirmation must be sent when persistence fails")
	}
}

// ---------------------------------------------------------------------------
// GetBookingStatus tests
// ---------------------------------------------------------------------------

func TestBookingService_GetStatus_OwnerOnly(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.svc.CreateBooking(context.Background(), validInput(f.serviceID), f.userID)
	if err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	other, err := f.users.Create(context.Background(), &domain.User{Email: "other@example.com", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	// Foreign owner and missing id must be indistinguishable.
	_, foreignErr := f.svc.GetBookingStatus(context.Background(), booking.ID, other.ID)
	_, missingErr := f.svc.GetBookingStatus(context.Background(), 9999, f.userID)

	for _, err := range []error{foreignErr, missingErr} {
		if err == nil {
			t.Fatal("expected error")
		}
		if got, want := err.Error(), "Failed to retrieve booking: Booking not found or unauthorized"; got != want {
			t.Errorf("message: got %q, want %q", got, want)
		}
		if !errors.Is(err, domain.ErrBookingNotFound) {
			t.Error("cause must stay reachable via errors.Is")
		}
	}
}

func TestBookingService_GetStatus_IncludesServiceProjection(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.svc.CreateBooking(context.Background(), validInput(f.serviceID), f.userID)
	if err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	detail, err := f.svc.GetBookingStatus(context.Background(), booking.ID, f.userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Service.Name != "Test Service" {
		t.Errorf("service name: got %q", detail.Service.Name)
	}
	if detail.Service.Price != 100 {
		t.Errorf("service price: got %v", detail.Service.Price)
	}
}

// ---------------------------------------------------------------------------
// GetAllBookings tests
// ---------------------------------------------------------------------------

func TestBookingService_GetAll_AttachesProjections(t *testing.T) {
	f := newBookingFixture(t)

	if _, err := f.svc.CreateBooking(context.Background(), validInput(f.serviceID), f.userID); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	if _, err := f.svc.CreateBooking(context.Background(), validInput(f.serviceID), f.userID); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	all, err := f.svc.GetAllBookings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(all))
	}
	for _, view := range all {
		if view.Service.Name != "Test Service" || view.Service.Price != 100 {
			t.Errorf("service projection missing: %+v", view.Service)
		}
		if view.UserEmail != "owner@example.com" {
			t.Errorf("user projection missing: %q", view.UserEmail)
		}
	}
}
