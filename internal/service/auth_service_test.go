package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/coffeehouse-cms/internal/auth"
	"github.com/spec-kit/coffeehouse-cms/internal/domain"
)

func newAuthService(t *testing.T) (*AuthService, *fakeUserRepo, *auth.TokenManager) {
	t.Helper()
	tokens, err := auth.NewTokenManager("test-secret")
	require.NoError(t, err)
	repo := newFakeUserRepo()
	return NewAuthService(repo, tokens), repo, tokens
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string, role domain.Role) *domain.AdminUser {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.AdminUser{Username: username, PasswordHash: hash, Role: role}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestLoginSuccess(t *testing.T) {
	svc, repo, tokens := newAuthService(t)
	seeded := seedUser(t, repo, "admin", "admin123", domain.RoleAdmin)

	user, token, expiresAt, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, user.ID)
	assert.WithinDuration(t, time.Now().Add(auth.SessionTTL), expiresAt, 5*time.Second)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, claims.Subject)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestLoginMissingFields(t *testing.T) {
	svc, repo, _ := newAuthService(t)
	seedUser(t, repo, "admin", "admin123", domain.RoleAdmin)

	_, _, _, err := svc.Login(context.Background(), "", "admin123")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, _, _, err = svc.Login(context.Background(), "admin", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestLoginIndistinctFailures(t *testing.T) {
	svc, repo, _ := newAuthService(t)
	seedUser(t, repo, "admin", "admin123", domain.RoleAdmin)

	// Unknown username and wrong password yield the same error.
	_, _, _, unknownErr := svc.Login(context.Background(), "nobody", "admin123")
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)

	_, _, _, badPassErr := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, badPassErr, ErrInvalidCredentials)
}
