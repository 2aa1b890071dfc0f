package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func TestIssueAndVerify(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	m := NewManager("test-secret", 0).WithClock(clock.Now)

	token, expiresAt, err := m.Issue("c3c2a3a4-6f0e-4a53-9a55-3d0f3b0c8f11")
	require.NoError(t, err)
	assert.Equal(t, clock.t.Add(7*24*time.Hour), expiresAt)

	subject, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "c3c2a3a4-6f0e-4a53-9a55-3d0f3b0c8f11", subject)
}

func TestVerifyExpiryBoundary(t *testing.T) {
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: issued}
	m := NewManager("test-secret", DefaultTTL).WithClock(clock.Now)

	token, _, err := m.Issue("admin-id")
	require.NoError(t, err)

	clock.t = issued.Add(6*24*time.Hour + 23*time.Hour)
	_, err = m.Verify(token)
	assert.NoError(t, err)

	clock.t = issued.Add(7*24*time.Hour + time.Hour)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyMissing(t *testing.T) {
	m := NewManager("test-secret", 0)

	_, err := m.Verify("   ")
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	issuer := NewManager("secret-a", 0)
	verifier := NewManager("secret-b", 0)

	token, _, err := issuer.Issue("admin-id")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", 0)

	_, err := m.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsTokenWithoutExpiry(t *testing.T) {
	m := NewManager("test-secret", 0)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:           "admin-id",
		Type:             "access",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "admin-id"},
	})
	token, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
