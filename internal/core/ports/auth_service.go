package ports

import (
	"context"

	"github.com/shuvo-art/Sheba-Task/internal/core/domain"
)

// AuthService implements account registration and credential verification.
type AuthService interface {
	// Register creates a new account. An empty role defaults to domain.RoleUser.
	Register(ctx context.Context, email, password, role string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, error)
}
