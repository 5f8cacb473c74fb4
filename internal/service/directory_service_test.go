package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/coffeehouse-cms/internal/auth"
	"github.com/spec-kit/coffeehouse-cms/internal/domain"
	"github.com/spec-kit/coffeehouse-cms/internal/repository"
)

func newDirectory(t *testing.T) (*DirectoryService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	return NewDirectoryService(repo, nil, bcrypt.MinCost), repo
}

func adminIdentity(id string) *auth.Identity {
	return &auth.Identity{ID: id, Username: "root", Role: domain.RoleAdmin}
}

func mustCreate(t *testing.T, dir *DirectoryService, caller *auth.Identity, username, password string, role domain.Role) *domain.AdminUser {
	t.Helper()
	user, err := dir.Create(context.Background(), caller, username, password, role)
	require.NoError(t, err)
	return user
}

func TestCreateHashesPassword(t *testing.T) {
	dir, _ := newDirectory(t)
	user := mustCreate(t, dir, adminIdentity("root-1"), "casey", "secret1", domain.RoleStaff)

	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.NoError(t, auth.ComparePassword(user.PasswordHash, "secret1"))
}

func TestCreateDuplicateUsername(t *testing.T) {
	dir, _ := newDirectory(t)
	caller := adminIdentity("root-1")
	mustCreate(t, dir, caller, "casey", "secret1", domain.RoleStaff)

	_, err := dir.Create(context.Background(), caller, "casey", "secret2", domain.RoleStaff)
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)
}

func TestCreateDifferentCaseIsDistinct(t *testing.T) {
	// Uniqueness is case-sensitive; "Casey" and "casey" coexist.
	dir, _ := newDirectory(t)
	caller := adminIdentity("root-1")
	mustCreate(t, dir, caller, "casey", "secret1", domain.RoleStaff)

	_, err := dir.Create(context.Background(), caller, "Casey", "secret2", domain.RoleStaff)
	assert.NoError(t, err)
}

func TestCreateRequiresAdmin(t *testing.T) {
	dir, _ := newDirectory(t)
	staffCaller := &auth.Identity{ID: "s1", Username: "sam", Role: domain.RoleStaff}

	_, err := dir.Create(context.Background(), staffCaller, "casey", "secret1", domain.RoleStaff)
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestCreateValidation(t *testing.T) {
	dir, _ := newDirectory(t)
	caller := adminIdentity("root-1")

	_, err := dir.Create(context.Background(), caller, "", "secret1", domain.RoleStaff)
	assert.ErrorIs(t, err, ErrMissingUserFields)

	_, err = dir.Create(context.Background(), caller, "casey", "", domain.RoleStaff)
	assert.ErrorIs(t, err, ErrMissingUserFields)

	_, err = dir.Create(context.Background(), caller, "casey", "secret1", domain.Role("owner"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestListNewestFirstWithoutPasswordLeak(t *testing.T) {
	dir, _ := newDirectory(t)
	caller := adminIdentity("root-1")
	mustCreate(t, dir, caller, "first", "secret1", domain.RoleAdmin)
	mustCreate(t, dir, caller, "second", "secret2", domain.RoleStaff)

	users, err := dir.List(context.Background(), caller)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "second", users[0].Username)
	assert.Equal(t, "first", users[1].Username)
}

func TestUpdatePreservesHashWhenPasswordEmpty(t *testing.T) {
	dir, _ := newDirectory(t)
	caller := adminIdentity("root-1")
	user := mustCreate(t, dir, caller, "casey", "secret1", domain.RoleStaff)

	updated, err := dir.Update(context.Background(), caller, user.ID, "casey", domain.RoleAdmin, "")
	require.NoError(t, err)
	assert.Equal(t, user.PasswordHash, updated.PasswordHash)
	assert.Equal(t, domain.RoleAdmin, updated.Role)
}

func TestUpdateRehashesNewPassword(t *testing.T) {
	dir, _ := newDirectory(t)
	caller := adminIdentity("root-1")
	user := mustCreate(t, dir, caller, "casey", "secret1", domain.RoleStaff)

	updated, err := dir.Update(context.Background(), caller, user.ID, "casey", domain.RoleStaff, "secret2")
	require.NoError(t, err)
	assert.NotEqual(t, user.PasswordHash, updated.PasswordHash)
	assert.NoError(t, auth.ComparePassword(updated.PasswordHash, "secret2"))
}

func TestUpdateDuplicateUsernameExcludesSelf(t *testing.T) {
	dir, _ := newDirectory(t)
	caller := adminIdentity("root-1")
	mustCreate(t, dir, caller, "casey", "secret1", domain.RoleStaff)
	other := mustCreate(t, dir, caller, "sam", "secret2", domain.RoleStaff)

	// Taking another record's username fails.
	_, err := dir.Update(context.Background(), caller, other.ID, "casey", domain.RoleStaff, "")
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)

	// Keeping one's own username is not a duplicate.
	_, err = dir.Update(context.Background(), caller, other.ID, "sam", domain.RoleStaff, "")
	assert.NoError(t, err)
}

func TestDeleteLastAdminProtected(t *testing.T) {
	dir, _ := newDirectory(t)
	caller := adminIdentity("root-1")
	soleAdmin := mustCreate(t, dir, caller, "alex", "secret1", domain.RoleAdmin)

	err := dir.Delete(context.Background(), caller, soleAdmin.ID)
	assert.ErrorIs(t, err, ErrLastAdminProtected)
}

func TestDeleteSecondAdminAllowed(t *testing.T) {
	dir, repo := newDirectory(t)
	caller := adminIdentity("root-1")
	first := mustCreate(t, dir, caller, "alex", "secret1", domain.RoleAdmin)
	mustCreate(t, dir, caller, "drew", "secret2", domain.RoleAdmin)

	require.NoError(t, dir.Delete(context.Background(), caller, first.ID))

	// At least one admin remains after every successful delete.
	count, err := repo.CountByRole(context.Background(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 1)
}

func TestDeleteStaffWithSingleAdmin(t *testing.T) {
	dir, _ := newDirectory(t)
	caller := adminIdentity("root-1")
	mustCreate(t, dir, caller, "alex", "secret1", domain.RoleAdmin)
	staff := mustCreate(t, dir, caller, "sam", "secret2", domain.RoleStaff)

	assert.NoError(t, dir.Delete(context.Background(), caller, staff.ID))
}

func TestDeleteSelfForbidden(t *testing.T) {
	dir, _ := newDirectory(t)
	caller := adminIdentity("root-1")
	// Two admins, so the last-admin rule does not apply; one of them is the caller.
	self := mustCreate(t, dir, caller, "alex", "secret1", domain.RoleAdmin)
	mustCreate(t, dir, caller, "drew", "secret2", domain.RoleAdmin)

	err := dir.Delete(context.Background(), &auth.Identity{ID: self.ID, Username: "alex", Role: domain.RoleAdmin}, self.ID)
	assert.ErrorIs(t, err, ErrSelfDeleteForbidden)
}

func TestDeleteLastAdminCheckedBeforeSelfDelete(t *testing.T) {
	dir, _ := newDirectory(t)
	caller := adminIdentity("root-1")
	soleAdmin := mustCreate(t, dir, caller, "alex", "secret1", domain.RoleAdmin)

	// Sole admin deleting themselves: the last-admin message wins.
	err := dir.Delete(context.Background(), &auth.Identity{ID: soleAdmin.ID, Username: "alex", Role: domain.RoleAdmin}, soleAdmin.ID)
	assert.ErrorIs(t, err, ErrLastAdminProtected)
}
