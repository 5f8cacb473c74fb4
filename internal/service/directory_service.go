package service

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/coffeehouse-cms/internal/auth"
	"github.com/spec-kit/coffeehouse-cms/internal/domain"
	"github.com/spec-kit/coffeehouse-cms/internal/events"
	"github.com/spec-kit/coffeehouse-cms/internal/repository"
)

// Directory invariant sentinels.
var (
	ErrLastAdminProtected   = errors.New("cannot delete the last admin user")
	ErrSelfDeleteForbidden  = errors.New("you cannot delete your own account")
	ErrInvalidRole          = errors.New("role must be admin or staff")
	ErrMissingUserFields    = errors.New("username and password are required")
	ErrMissingUsernameField = errors.New("username is required")
)

// DirectoryService owns the admin-user record lifecycle. Every operation
// requires the caller to hold the admin role; the role is re-checked here
// even though routes are already gated, matching the double check at the
// action layer.
type DirectoryService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewDirectoryService builds the service.
func NewDirectoryService(users repository.UserRepository, dispatcher events.Dispatcher, bcryptCost int) *DirectoryService {
	return &DirectoryService{users: users, dispatcher: dispatcher, bcryptCost: bcryptCost}
}

func (s *DirectoryService) requireAdmin(caller *auth.Identity) error {
	if caller == nil || caller.Role != domain.RoleAdmin {
		return auth.ErrForbidden
	}
	return nil
}

// List returns all users, newest first. Password hashes stay on the domain
// record; the transport layer never serializes them.
func (s *DirectoryService) List(ctx context.Context, caller *auth.Identity) ([]domain.AdminUser, error) {
	if err := s.requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

// Get returns a single user by id.
func (s *DirectoryService) Get(ctx context.Context, caller *auth.Identity, id string) (*domain.AdminUser, error) {
	if err := s.requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, id)
}

// Create adds a new dashboard account. Usernames are unique, compared
// case-sensitively; the store's unique index backstops the pre-check.
func (s *DirectoryService) Create(ctx context.Context, caller *auth.Identity, username, password string, role domain.Role) (*domain.AdminUser, error) {
	if err := s.requireAdmin(caller); err != nil {
		return nil, err
	}
	if username == "" || password == "" {
		return nil, ErrMissingUserFields
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, repository.ErrDuplicateUsername
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.AdminUser{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.publish(ctx, events.ChangeCreated, user.ID, caller)
	return user, nil
}

// Update edits username and role, and re-hashes the password only when a
// non-empty new one is supplied; otherwise the existing hash is preserved.
func (s *DirectoryService) Update(ctx context.Context, caller *auth.Identity, id, username string, role domain.Role, password string) (*domain.AdminUser, error) {
	if err := s.requireAdmin(caller); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, ErrMissingUsernameField
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.users.GetByUsername(ctx, username); err == nil {
		if existing.ID != id {
			return nil, repository.ErrDuplicateUsername
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user.Username = username
	user.Role = role
	if password != "" {
		hash, err := auth.HashPassword(password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	s.publish(ctx, events.ChangeUpdated, user.ID, caller)
	return user, nil
}

// Delete removes a user. The admin tally is counted fresh for each call;
// the last-admin check runs before the self-delete check so the error the
// caller sees matches the stronger invariant. The window between count and
// delete is an accepted race: the store offers no conditional delete here.
func (s *DirectoryService) Delete(ctx context.Context, caller *auth.Identity, id string) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}

	adminCount, err := s.users.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if adminCount <= 1 {
		target, err := s.users.GetByID(ctx, id)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if err == nil && target.Role == domain.RoleAdmin {
			return ErrLastAdminProtected
		}
	}

	if id == caller.ID {
		return ErrSelfDeleteForbidden
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.ChangeDeleted, id, caller)
	return nil
}

func (s *DirectoryService) publish(ctx context.Context, change events.ChangeKind, recordID string, caller *auth.Identity) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      events.EventUserChanged,
		Change:    change,
		RecordID:  recordID,
		ActorID:   caller.ID,
		Timestamp: time.Now(),
	})
}
