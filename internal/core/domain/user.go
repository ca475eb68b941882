package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrUserNotFound = errors.New("User not found")
var ErrUserExists = errors.New("Email already exists")
var ErrInvalidCredentials = errors.New("Invalid email or password")

// User models an authenticated actor. Role is fixed at creation and defaults
// to RoleUser.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the accepted account roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
