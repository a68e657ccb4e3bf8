package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/kazimashinani/jobboard/internal/core/domain"
)

// DefaultCost is the bcrypt work factor used for new hashes.
const DefaultCost = 12

// dummyPassword is hashed once so that a login for an unknown phone costs
// the same as a login with a wrong password.
const dummyPassword = "kazi-mashinani-placeholder"

// CredentialStore hashes and verifies passwords with bcrypt.
type CredentialStore struct {
	cost  int
	dummy []byte
}

// NewCredentialStore returns a store hashing at cost. Zero selects DefaultCost.
func NewCredentialStore(cost int) (*CredentialStore, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCrypto, err)
	}
	return &CredentialStore{cost: cost, dummy: dummy}, nil
}

// Hash returns a salted bcrypt hash of plaintext.
func (s *CredentialStore) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domain.NewValidationError("password must be at most 72 bytes")
		}
		return "", fmt.Errorf("%w: %v", domain.ErrCrypto, err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. The hash carries its own
// cost, so hashes produced at any earlier cost keep verifying. An error is
// returned only when hash is not a bcrypt hash.
func (s *CredentialStore) Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", domain.ErrCrypto, err)
	}
}

// VerifyMissing burns one comparison against the placeholder hash. It always
// reports false.
func (s *CredentialStore) VerifyMissing(plaintext string) bool {
	_ = bcrypt.CompareHashAndPassword(s.dummy, []byte(plaintext))
	return false
}
