package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/coffeehouse-cms/internal/domain"
)

// OfferRepository defines persistence access for promotional offers.
type OfferRepository interface {
	Create(ctx context.Context, offer *domain.Offer) error
	Update(ctx context.Context, offer *domain.Offer) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Offer, error)
	List(ctx context.Context, onlyActive bool) ([]domain.Offer, error)
}

type offerRepository struct {
	pool *pgxpool.Pool
}

// NewOfferRepository returns a Postgres-backed implementation.
func NewOfferRepository(pool *pgxpool.Pool) OfferRepository {
	return &offerRepository{pool: pool}
}

func (r *offerRepository) Create(ctx context.Context, offer *domain.Offer) error {
	const query = `
        INSERT INTO offers (title, description, valid_until, image, badge, active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		offer.Title,
		offer.Description,
		offer.ValidUntil,
		offer.Image,
		offer.Badge,
		offer.Active,
	).Scan(&offer.ID, &offer.CreatedAt, &offer.UpdatedAt)
}

func (r *offerRepository) Update(ctx context.Context, offer *domain.Offer) error {
	const query = `
        UPDATE offers
        SET title=$1, description=$2, valid_until=$3, image=$4, badge=$5, active=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		offer.Title,
		offer.Description,
		offer.ValidUntil,
		offer.Image,
		offer.Badge,
		offer.Active,
		offer.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *offerRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM offers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *offerRepository) GetByID(ctx context.Context, id string) (*domain.Offer, error) {
	const query = `
        SELECT id, title, description, valid_until, image, badge, active, created_at, updated_at
        FROM offers WHERE id=$1`

	var offer domain.Offer
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&offer.ID,
		&offer.Title,
		&offer.Description,
		&offer.ValidUntil,
		&offer.Image,
		&offer.Badge,
		&offer.Active,
		&offer.CreatedAt,
		&offer.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &offer, nil
}

func (r *offerRepository) List(ctx context.Context, onlyActive bool) ([]domain.Offer, error) {
	query := `
        SELECT id, title, description, valid_until, image, badge, active, created_at, updated_at
        FROM offers ORDER BY created_at DESC`
	if onlyActive {
		query = `
        SELECT id, title, description, valid_until, image, badge, active, created_at, updated_at
        FROM offers WHERE active ORDER BY created_at DESC`
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		var offer domain.Offer
		if err := rows.Scan(
			&offer.ID,
			&offer.Title,
			&offer.Description,
			&offer.ValidUntil,
			&offer.Image,
			&offer.Badge,
			&offer.Active,
			&offer.CreatedAt,
			&offer.UpdatedAt,
		); err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}
