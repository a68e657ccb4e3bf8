package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kazimashinani/jobboard/internal/core/auth"
	"github.com/kazimashinani/jobboard/internal/core/domain"
	"github.com/kazimashinani/jobboard/internal/core/ports"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 72
)

// PasswordHasher is satisfied by auth.CredentialStore.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) (bool, error)
	VerifyMissing(plaintext string) bool
}

// TokenIssuer is satisfied by auth.TokenService.
type TokenIssuer interface {
	Issue(identityID string) (string, error)
}

// AuthService implements registration and login.
type AuthService struct {
	repo        ports.IdentityRepository
	credentials PasswordHasher
	tokens      TokenIssuer
	log         zerolog.Logger
	now         func() time.Time
}

func NewAuthService(repo ports.IdentityRepository, credentials PasswordHasher, tokens TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{
		repo:        repo,
		credentials: credentials,
		tokens:      tokens,
		log:         log,
		now:         time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	location := strings.TrimSpace(in.Location)
	role := strings.TrimSpace(in.Role)

	if name == "" || in.Phone == "" || in.Password == "" || role == "" || location == "" {
		return nil, domain.NewValidationError("All fields are required: name, phone, password, role, location")
	}
	if !domain.ValidRole(role) {
		return nil, domain.NewValidationError("role must be one of: employer, employee")
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	phone := auth.NormalizePhone(in.Phone)
	if phone == "" {
		return nil, domain.NewValidationError("phone number is invalid")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.repo.FindByPhoneOrEmail(ctx, phone, email)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrDuplicateIdentity
	case err != nil && !errors.Is(err, domain.ErrIdentityNotFound):
		return nil, fmt.Errorf("register: lookup: %w", err)
	}

	hash, err := s.credentials.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	identity := &domain.Identity{
		Name:         name,
		Phone:        phone,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Location:     location,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastLogin:    now,
	}

	// The unique index on phone settles races the lookup above cannot.
	id, err := s.repo.Insert(ctx, identity)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateIdentity) {
			return nil, err
		}
		return nil, fmt.Errorf("register: insert: %w", err)
	}
	identity.ID = id

	token, err := s.tokens.Issue(id)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("identity_id", id).Str("role", role).Msg("identity registered")
	return &ports.AuthResult{Token: token, Identity: identity}, nil
}

// Login verifies phone and password. Unknown phones and wrong passwords both
// yield domain.ErrInvalidCredentials after one bcrypt comparison.
func (s *AuthService) Login(ctx context.Context, phone, password string) (*ports.AuthResult, error) {
	if phone == "" || password == "" {
		return nil, domain.NewValidationError("Phone number and password are required")
	}

	identity, err := s.findForLogin(ctx, auth.NormalizePhone(phone))
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			s.credentials.VerifyMissing(password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: lookup: %w", err)
	}

	ok, err := s.credentials.Verify(password, identity.PasswordHash)
	if err != nil {
		s.log.Error().Err(err).Str("identity_id", identity.ID).Msg("stored password hash is unreadable")
		return nil, fmt.Errorf("login: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	now := s.now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, identity.ID, now); err != nil {
		return nil, fmt.Errorf("login: update last login: %w", err)
	}
	identity.LastLogin = now

	token, err := s.tokens.Issue(identity.ID)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Str("identity_id", identity.ID).Msg("identity logged in")
	return &ports.AuthResult{Token: token, Identity: identity}, nil
}

func (s *AuthService) findForLogin(ctx context.Context, phone string) (*domain.Identity, error) {
	if phone == "" {
		return nil, domain.ErrIdentityNotFound
	}
	return s.repo.FindByPhone(ctx, phone)
}

func validatePassword(p string) error {
	if len(p) < minPasswordLength {
		return domain.NewValidationError(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if len(p) > maxPasswordLength {
		return domain.NewValidationError(fmt.Sprintf("password must be at most %d bytes", maxPasswordLength))
	}
	return nil
}
