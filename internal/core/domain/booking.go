package domain

import (
	"errors"
	"regexp"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking retrieval deliberately conflates "does not exist" and "exists but
// belongs to someone else" so non-owners cannot probe for booking ids.
var ErrBookingNotFound = errors.New("Booking not found or unauthorized")

var ErrScheduleNotFuture = errors.New("Schedule date/time must be in the future")
var ErrInvalidPhoneNumber = errors.New("Invalid phone number format")

// phonePattern requires the entire value to be 10 or more digits.
var phonePattern = regexp.MustCompile(`^\d{10,}$`)

// ValidPhoneNumber reports whether s is an acceptable contact phone number.
func ValidPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}

// Booking is a customer's request for a scheduled service, owned by one user.
// It always references an existing Service and User at the instant of
// creation; the workflow enforces this with explicit existence checks.
type Booking struct {
	ID               int64         `json:"id" bson:"_id"`
	CustomerName     string        `json:"customer_name" bson:"customer_name"`
	Email            string        `json:"email" bson:"email"`
	PhoneNumber      string        `json:"phone_number" bson:"phone_number"`
	ServiceID        int64         `json:"service_id" bson:"service_id"`
	UserID           int64         `json:"user_id" bson:"user_id"`
	Status           BookingStatus `json:"status" bson:"status"`
	ScheduleDateTime time.Time     `json:"schedule_date_time" bson:"schedule_date_time"`
	CreatedAt        time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" bson:"updated_at"`
}
