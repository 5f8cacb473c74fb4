package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/coffeehouse-cms/internal/auth"
	"github.com/spec-kit/coffeehouse-cms/internal/domain"
)

func TestSeedCreatesDefaultAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	seeder := NewSeeder(repo, bcrypt.MinCost)

	created, err := seeder.SeedAdminUser(context.Background())
	require.NoError(t, err)
	assert.True(t, created)

	user, err := repo.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.NoError(t, auth.ComparePassword(user.PasswordHash, "admin123"))
}

func TestSeedIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	seeder := NewSeeder(repo, bcrypt.MinCost)

	created, err := seeder.SeedAdminUser(context.Background())
	require.NoError(t, err)
	assert.True(t, created)

	created, err = seeder.SeedAdminUser(context.Background())
	require.NoError(t, err)
	assert.False(t, created)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestSeedSkipsWhenAdminExists(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "boss", "secret1", domain.RoleAdmin)
	seeder := NewSeeder(repo, bcrypt.MinCost)

	created, err := seeder.SeedAdminUser(context.Background())
	require.NoError(t, err)
	assert.False(t, created)
}
