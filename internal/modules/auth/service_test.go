package auth

import (
	"testing"
	"time"

	"github.com/amadeudias/blog-core/internal/config"
	jwtpkg "github.com/amadeudias/blog-core/internal/pkg/jwt"
	sessionpkg "github.com/amadeudias/blog-core/internal/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestStaticVerifierPlaintext(t *testing.T) {
	v := NewStaticVerifier(config.AdminConfig{Email: "admin@example.com", Password: "s3cret"})

	id, err := v.Verify("admin@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", id.Email)

	// Email matching is case-insensitive; password matching is not.
	_, err = v.Verify("ADMIN@example.com", "s3cret")
	assert.NoError(t, err)

	_, err = v.Verify("admin@example.com", "wrong")
	assert.ErrorIs(t, err, errWrongPassword)

	_, err = v.Verify("other@example.com", "s3cret")
	assert.ErrorIs(t, err, errUnknownEmail)
}

func TestStaticVerifierBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	v := NewStaticVerifier(config.AdminConfig{Email: "admin@example.com", Password: string(hash)})

	_, err = v.Verify("admin@example.com", "s3cret")
	assert.NoError(t, err)

	_, err = v.Verify("admin@example.com", "wrong")
	assert.ErrorIs(t, err, errWrongPassword)
}

func TestLoginIssuesRevocableSession(t *testing.T) {
	sessions := sessionpkg.NewRegistry()
	svc := NewService(NewStaticVerifier(config.AdminConfig{
		Email: "admin@example.com", Password: "s3cret",
	}), sessions)

	token, err := svc.Login("admin@example.com", "s3cret", "127.0.0.1", "test-agent")
	require.NoError(t, err)

	claims, err := jwtpkg.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.True(t, sessions.IsActive(claims.SessionID))

	s := svc.Session(claims.SessionID)
	require.NotNil(t, s)
	assert.Equal(t, "127.0.0.1", s.IP)

	svc.Logout(claims.SessionID)
	assert.False(t, sessions.IsActive(claims.SessionID))
	assert.Nil(t, svc.Session(claims.SessionID))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewService(NewStaticVerifier(config.AdminConfig{
		Email: "admin@example.com", Password: "s3cret",
	}), sessionpkg.NewRegistry())

	_, err := svc.Login("admin@example.com", "wrong", "", "")
	assert.Error(t, err)
}

func TestSessionExpiry(t *testing.T) {
	sessions := sessionpkg.NewRegistry()

	_, s, err := sessions.Issue("admin@example.com", "", "", time.Millisecond)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	assert.False(t, sessions.IsActive(s.ID))
	assert.Nil(t, sessions.Get(s.ID))
}

func TestDevLoginUsesMockedIdentity(t *testing.T) {
	sessions := sessionpkg.NewRegistry()
	svc := NewService(NewStaticVerifier(config.AdminConfig{
		Email: "real@example.com", Password: "s3cret",
	}), sessions)

	token, err := svc.DevLogin("", "")
	require.NoError(t, err)

	claims, err := jwtpkg.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, devIdentityEmail, claims.Email)

	s := svc.Session(claims.SessionID)
	require.NotNil(t, s)
	assert.WithinDuration(t, time.Now().Add(sessionpkg.DevTTL), s.ExpiresAt, time.Minute)
}
