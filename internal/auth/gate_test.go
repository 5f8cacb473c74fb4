package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/coffeehouse-cms/internal/domain"
	"github.com/spec-kit/coffeehouse-cms/internal/repository"
)

type fakeLookup struct {
	users map[string]*domain.AdminUser
}

func (f *fakeLookup) GetByID(_ context.Context, id string) (*domain.AdminUser, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func newTestGate(t *testing.T, users ...*domain.AdminUser) (*Gate, *TokenManager) {
	t.Helper()
	tm := newTestManager(t)
	lookup := &fakeLookup{users: map[string]*domain.AdminUser{}}
	for _, user := range users {
		lookup.users[user.ID] = user
	}
	return NewGate(tm, lookup), tm
}

func TestCurrentUserMissingToken(t *testing.T) {
	gate, _ := newTestGate(t)
	_, err := gate.CurrentUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCurrentUserInvalidToken(t *testing.T) {
	gate, _ := newTestGate(t)
	_, err := gate.CurrentUser(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCurrentUserDeletedUser(t *testing.T) {
	gate, tm := newTestGate(t)
	token, _, err := tm.Issue("ghost", "ghost", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = gate.CurrentUser(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCurrentUserReflectsDirectoryRole(t *testing.T) {
	// Token carries staff but the record was promoted to admin mid-session.
	gate, tm := newTestGate(t, &domain.AdminUser{ID: "u1", Username: "casey", Role: domain.RoleAdmin})
	token, _, err := tm.Issue("u1", "casey", domain.RoleStaff)
	require.NoError(t, err)

	identity, err := gate.CurrentUser(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, identity.Role)

	// The claims-only path still sees the stale role.
	tokenIdentity, err := gate.TokenUser(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, tokenIdentity.Role)
}

func TestAuthorizeRoleGate(t *testing.T) {
	staff := &domain.AdminUser{ID: "u2", Username: "sam", Role: domain.RoleStaff}
	admin := &domain.AdminUser{ID: "u3", Username: "alex", Role: domain.RoleAdmin}
	gate, tm := newTestGate(t, staff, admin)

	staffToken, _, err := tm.Issue(staff.ID, staff.Username, staff.Role)
	require.NoError(t, err)
	adminToken, _, err := tm.Issue(admin.ID, admin.Username, admin.Role)
	require.NoError(t, err)

	ctx := context.Background()

	// Staff lacking the admin requirement is forbidden, not unauthenticated.
	_, err = gate.Authorize(ctx, staffToken, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrForbidden)

	// Staff passes a staff requirement and the no-requirement case.
	_, err = gate.Authorize(ctx, staffToken, domain.RoleStaff)
	assert.NoError(t, err)
	_, err = gate.Authorize(ctx, staffToken, "")
	assert.NoError(t, err)

	// Admin satisfies every requirement.
	_, err = gate.Authorize(ctx, adminToken, domain.RoleAdmin)
	assert.NoError(t, err)
	_, err = gate.Authorize(ctx, adminToken, domain.RoleStaff)
	assert.NoError(t, err)
}

func TestAuthorizeTokenSkipsDirectory(t *testing.T) {
	// No backing record: the claims-only path still authorizes.
	gate, tm := newTestGate(t)
	token, _, err := tm.Issue("u9", "drew", domain.RoleAdmin)
	require.NoError(t, err)

	identity, err := gate.AuthorizeToken(token, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "u9", identity.ID)
	assert.Equal(t, "drew", identity.Username)
}
