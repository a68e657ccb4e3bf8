package ports

import (
	"context"

	"github.com/kazimashinani/jobboard/internal/core/domain"
)

// RegisterInput is the registration payload after transport decoding.
type RegisterInput struct {
	Name     string
	Phone    string
	Email    string
	Password string
	Role     string
	Location string
}

// AuthResult is returned by a successful register or login.
type AuthResult struct {
	Token    string
	Identity *domain.Identity
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, phone, password string) (*AuthResult, error)
}
