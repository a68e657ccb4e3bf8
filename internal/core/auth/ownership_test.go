package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kazimashinani/jobboard/internal/core/domain"
)

func TestAuthorize(t *testing.T) {
	const a = "65f1c0a1b2c3d4e5f6a7b8c9"
	const b = "65f1c0a1b2c3d4e5f6a7b8ca"

	assert.NoError(t, Authorize(a, a))
	assert.ErrorIs(t, Authorize(a, b), domain.ErrForbidden)
	assert.ErrorIs(t, Authorize("", ""), domain.ErrForbidden)
	assert.ErrorIs(t, Authorize(a, ""), domain.ErrForbidden)
}

func TestOwns_CanonicalForm(t *testing.T) {
	assert.True(t, Owns("65F1C0A1B2C3D4E5F6A7B8C9", " 65f1c0a1b2c3d4e5f6a7b8c9 "))

	// Distinct string values with the same content compare equal.
	owner := string([]byte("65f1c0a1b2c3d4e5f6a7b8c9"))
	actor := string([]byte("65f1c0a1b2c3d4e5f6a7b8c9"))
	assert.True(t, Owns(owner, actor))
}
