package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kazimashinani/jobboard/internal/core/domain"
)

// errUnknownIdentity marks a valid token whose identity no longer exists.
var errUnknownIdentity = errors.New("token identity not found")

// TokenVerifier resolves a raw token into the identity id it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// IdentityFinder looks an identity up by id.
type IdentityFinder interface {
	FindByID(ctx context.Context, id string) (*domain.Identity, error)
}

// Gate authenticates requests from their Authorization header.
//
// Rejections are domain.ErrNoToken or errors wrapping domain.ErrInvalidToken;
// RejectionReason recovers the precise cause for logging. The gate never
// writes to the identity store.
type Gate struct {
	tokens     TokenVerifier
	identities IdentityFinder
}

func NewGate(tokens TokenVerifier, identities IdentityFinder) *Gate {
	return &Gate{tokens: tokens, identities: identities}
}

// Authenticate runs header through extraction, verification and identity
// resolution, stopping at the first failure.
func (g *Gate) Authenticate(ctx context.Context, header string) (*domain.Identity, error) {
	raw, err := BearerToken(header)
	if err != nil {
		return nil, err
	}

	id, err := g.tokens.Verify(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}

	identity, err := g.identities.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, errUnknownIdentity)
		}
		return nil, fmt.Errorf("resolve identity: %w", err)
	}
	return identity, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", domain.ErrNoToken
	}

	scheme, token, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, "bearer") {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidToken, domain.ErrMalformedToken)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", domain.ErrNoToken
	}
	return token, nil
}

// RejectionReason names the cause of a gate rejection for logs and metrics.
// It returns "" for errors the gate did not produce as rejections.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoToken):
		return "no_token"
	case !errors.Is(err, domain.ErrInvalidToken):
		return ""
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrBadSignature):
		return "bad_signature"
	case errors.Is(err, errUnknownIdentity):
		return "unknown_identity"
	default:
		return "malformed"
	}
}
