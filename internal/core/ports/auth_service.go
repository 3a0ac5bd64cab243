package ports

import (
	"context"

	"github.com/brightpixel/website-api/internal/core/domain"
)

// SignupInput carries the fields needed to create an admin account.
type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// AuthService implements admin signup and login.
type AuthService interface {
	// Signup creates an admin and returns a bearer token for the new account.
	Signup(ctx context.Context, input SignupInput) (string, *domain.Admin, error)
	// Login verifies credentials and returns a bearer token. Unknown email
	// and wrong password fail with the same domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.Admin, error)
}
