package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazimashinani/jobboard/internal/core/domain"
)

type stubFinder struct {
	identities map[string]*domain.Identity
	err        error
	calls      int
}

func (f *stubFinder) FindByID(_ context.Context, id string) (*domain.Identity, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	identity, ok := f.identities[id]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	clone := *identity
	return &clone, nil
}

func newGateFixture(t *testing.T) (*Gate, *TokenService, *stubFinder) {
	t.Helper()
	tokens := newTestTokens(t, "secret")
	finder := &stubFinder{identities: map[string]*domain.Identity{
		testIdentityID: {ID: testIdentityID, Name: "Asha", Role: domain.RoleEmployee},
	}}
	return NewGate(tokens, finder), tokens, finder
}

func TestGate_Authenticate_Success(t *testing.T) {
	gate, tokens, _ := newGateFixture(t)
	token, err := tokens.Issue(testIdentityID)
	require.NoError(t, err)

	identity, err := gate.Authenticate(context.Background(), "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, testIdentityID, identity.ID)
	assert.Equal(t, "Asha", identity.Name)
}

func TestGate_Authenticate_NoTokenSkipsStore(t *testing.T) {
	gate, _, finder := newGateFixture(t)

	for _, header := range []string{"", "   ", "Bearer", "bearer", "Bearer ", "Bearer    ", "  Bearer\t"} {
		_, err := gate.Authenticate(context.Background(), header)
		assert.ErrorIs(t, err, domain.ErrNoToken, "header %q", header)
		assert.Equal(t, "no_token", RejectionReason(err))
	}
	assert.Zero(t, finder.calls)
}

func TestGate_Authenticate_WrongScheme(t *testing.T) {
	gate, tokens, finder := newGateFixture(t)
	token, err := tokens.Issue(testIdentityID)
	require.NoError(t, err)

	_, err = gate.Authenticate(context.Background(), "Token "+token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	assert.Equal(t, "malformed", RejectionReason(err))
	assert.Zero(t, finder.calls)
}

func TestGate_Authenticate_SchemeIsCaseInsensitive(t *testing.T) {
	gate, tokens, _ := newGateFixture(t)
	token, err := tokens.Issue(testIdentityID)
	require.NoError(t, err)

	_, err = gate.Authenticate(context.Background(), "bearer "+token)
	assert.NoError(t, err)
}

func TestGate_Authenticate_BadSignature(t *testing.T) {
	gate, _, finder := newGateFixture(t)
	token, err := newTestTokens(t, "other-secret").Issue(testIdentityID)
	require.NoError(t, err)

	_, err = gate.Authenticate(context.Background(), "Bearer "+token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	assert.Equal(t, "bad_signature", RejectionReason(err))
	assert.Zero(t, finder.calls)
}

func TestGate_Authenticate_UnknownIdentity(t *testing.T) {
	gate, tokens, _ := newGateFixture(t)
	token, err := tokens.Issue("65f1c0a1b2c3d4e5f6a7b8ff")
	require.NoError(t, err)

	_, err = gate.Authenticate(context.Background(), "Bearer "+token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	assert.NotErrorIs(t, err, domain.ErrIdentityNotFound)
	assert.Equal(t, "unknown_identity", RejectionReason(err))
}

func TestGate_Authenticate_StoreFailure(t *testing.T) {
	gate, tokens, finder := newGateFixture(t)
	finder.err = errors.New("connection reset")
	token, err := tokens.Issue(testIdentityID)
	require.NoError(t, err)

	_, err = gate.Authenticate(context.Background(), "Bearer "+token)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidToken)
	assert.Empty(t, RejectionReason(err))
}

func TestRejectionReason_Expired(t *testing.T) {
	err := errors.Join(domain.ErrInvalidToken, domain.ErrTokenExpired)
	assert.Equal(t, "expired", RejectionReason(err))
}

func TestIdentityContext(t *testing.T) {
	_, ok := IdentityFrom(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), &domain.Identity{ID: testIdentityID})
	identity, ok := IdentityFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, testIdentityID, identity.ID)
}
