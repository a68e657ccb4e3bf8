package ports

import (
	"context"
	"time"

	"github.com/kazimashinani/jobboard/internal/core/domain"
)

// IdentityRepository defines persistence for registered accounts.
// Implementations enforce phone uniqueness themselves and report a conflicting
// insert as domain.ErrDuplicateIdentity.
type IdentityRepository interface {
	// FindByPhoneOrEmail returns the first identity holding phone or, when
	// email is non-empty, email.
	FindByPhoneOrEmail(ctx context.Context, phone, email string) (*domain.Identity, error)
	FindByPhone(ctx context.Context, phone string) (*domain.Identity, error)
	FindByID(ctx context.Context, id string) (*domain.Identity, error)
	// Insert stores identity and returns the generated id.
	Insert(ctx context.Context, identity *domain.Identity) (string, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
