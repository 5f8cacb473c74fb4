package service

import (
	"context"
	"errors"

	"github.com/spec-kit/coffeehouse-cms/internal/auth"
	"github.com/spec-kit/coffeehouse-cms/internal/domain"
	"github.com/spec-kit/coffeehouse-cms/internal/repository"
)

// Default bootstrap credentials; rotate them after first login.
const (
	seedUsername = "admin"
	seedPassword = "admin123"
)

// Seeder performs first-run bootstrap of the directory.
type Seeder struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewSeeder builds the seeder.
func NewSeeder(users repository.UserRepository, bcryptCost int) *Seeder {
	return &Seeder{users: users, bcryptCost: bcryptCost}
}

// SeedAdminUser creates the default admin account when no admin-role user
// exists. Idempotent: returns created=false when an admin is already
// present.
func (s *Seeder) SeedAdminUser(ctx context.Context) (bool, error) {
	count, err := s.users.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hash, err := auth.HashPassword(seedPassword, s.bcryptCost)
	if err != nil {
		return false, err
	}

	user := &domain.AdminUser{
		Username:     seedUsername,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent seed call can win the race; treat that as seeded.
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
