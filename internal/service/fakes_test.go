package service

import (
	"context"
	"fmt"
	"time"

	"github.com/spec-kit/coffeehouse-cms/internal/domain"
	"github.com/spec-kit/coffeehouse-cms/internal/repository"
)

// fakeUserRepo is an in-memory UserRepository preserving insertion order.
type fakeUserRepo struct {
	users []*domain.AdminUser
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.AdminUser) error {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	f.seq++
	user.ID = fmt.Sprintf("user-%d", f.seq)
	user.CreatedAt = time.Now().Add(time.Duration(f.seq) * time.Millisecond)
	user.UpdatedAt = user.CreatedAt
	clone := *user
	f.users = append(f.users, &clone)
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.AdminUser) error {
	for _, existing := range f.users {
		if existing.Username == user.Username && existing.ID != user.ID {
			return repository.ErrDuplicateUsername
		}
	}
	for i, existing := range f.users {
		if existing.ID == user.ID {
			user.UpdatedAt = time.Now()
			clone := *user
			f.users[i] = &clone
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	for i, existing := range f.users {
		if existing.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.AdminUser, error) {
	for _, existing := range f.users {
		if existing.ID == id {
			clone := *existing
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.AdminUser, error) {
	// Case-sensitive, like the store's unique index.
	for _, existing := range f.users {
		if existing.Username == username {
			clone := *existing
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.AdminUser, error) {
	out := make([]domain.AdminUser, 0, len(f.users))
	for i := len(f.users) - 1; i >= 0; i-- {
		out = append(out, *f.users[i])
	}
	return out, nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role domain.Role) (int, error) {
	count := 0
	for _, existing := range f.users {
		if existing.Role == role {
			count++
		}
	}
	return count, nil
}
