package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/coffeehouse-cms/internal/domain"
)

// StaffProfileRepository defines persistence access for the public staff
// listing.
type StaffProfileRepository interface {
	Create(ctx context.Context, profile *domain.StaffProfile) error
	Update(ctx context.Context, profile *domain.StaffProfile) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.StaffProfile, error)
	List(ctx context.Context, onlyActive bool) ([]domain.StaffProfile, error)
}

type staffProfileRepository struct {
	pool *pgxpool.Pool
}

// NewStaffProfileRepository returns a Postgres-backed implementation.
func NewStaffProfileRepository(pool *pgxpool.Pool) StaffProfileRepository {
	return &staffProfileRepository{pool: pool}
}

func (r *staffProfileRepository) Create(ctx context.Context, profile *domain.StaffProfile) error {
	const query = `
        INSERT INTO staff_profiles (name, role, bio, image, active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		profile.Name,
		profile.Role,
		profile.Bio,
		profile.Image,
		profile.Active,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *staffProfileRepository) Update(ctx context.Context, profile *domain.StaffProfile) error {
	const query = `
        UPDATE staff_profiles
        SET name=$1, role=$2, bio=$3, image=$4, active=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		profile.Name,
		profile.Role,
		profile.Bio,
		profile.Image,
		profile.Active,
		profile.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *staffProfileRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM staff_profiles WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *staffProfileRepository) GetByID(ctx context.Context, id string) (*domain.StaffProfile, error) {
	const query = `
        SELECT id, name, role, bio, image, active, created_at, updated_at
        FROM staff_profiles WHERE id=$1`

	var profile domain.StaffProfile
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Role,
		&profile.Bio,
		&profile.Image,
		&profile.Active,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *staffProfileRepository) List(ctx context.Context, onlyActive bool) ([]domain.StaffProfile, error) {
	query := `
        SELECT id, name, role, bio, image, active, created_at, updated_at
        FROM staff_profiles ORDER BY created_at DESC`
	if onlyActive {
		query = `
        SELECT id, name, role, bio, image, active, created_at, updated_at
        FROM staff_profiles WHERE active ORDER BY created_at DESC`
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.StaffProfile
	for rows.Next() {
		var profile domain.StaffProfile
		if err := rows.Scan(
			&profile.ID,
			&profile.Name,
			&profile.Role,
			&profile.Bio,
			&profile.Image,
			&profile.Active,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}
