package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

// Repository handles service database operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new service repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new service
func (r *Repository) Create(ctx context.Context, s *Service) error {
	query := `
		INSERT INTO services (name, duration_minutes, price_cents, quick_booking, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	return r.db.QueryRowContext(ctx, query,
		s.Name, s.DurationMinutes, s.PriceCents, s.QuickBooking, s.Active, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

// GetByID returns a service by ID, nil if not found or soft-deleted
func (r *Repository) GetByID(ctx context.Context, id int64) (*Service, error) {
	query := `SELECT * FROM services WHERE id = $1 AND deleted = false`
	var s Service
	err := r.db.GetContext(ctx, &s, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return &s, err
}

// List returns all non-deleted services
func (r *Repository) List(ctx context.Context) ([]*Service, error) {
	query := `SELECT * FROM services WHERE deleted = false ORDER BY name ASC, id ASC`
	var services []*Service
	err := r.db.SelectContext(ctx, &services, query)
	return services, err
}

// ListActive returns active, non-deleted services ordered by name
func (r *Repository) ListActive(ctx context.Context) ([]*Service, error) {
	query := `SELECT * FROM services WHERE active = true AND deleted = false ORDER BY name ASC, id ASC`
	var services []*Service
	err := r.db.SelectContext(ctx, &services, query)
	return services, err
}

// ListQuickBooking returns services flagged for one-click booking, capped at limit
func (r *Repository) ListQuickBooking(ctx context.Context, limit int) ([]*Service, error) {
	query := `
		SELECT * FROM services
		WHERE quick_booking = true AND active = true AND deleted = false
		ORDER BY name ASC, id ASC
		LIMIT $1
	`
	var services []*Service
	err := r.db.SelectContext(ctx, &services, query, limit)
	return services, err
}

// Update modifies service fields
func (r *Repository) Update(ctx context.Context, s *Service) error {
	query := `
		UPDATE services
		SET name = $1, duration_minutes = $2, price_cents = $3, quick_booking = $4, active = $5, updated_at = $6
		WHERE id = $7 AND deleted = false
	`
	s.UpdatedAt = time.Now()
	res, err := r.db.ExecContext(ctx, query,
		s.Name, s.DurationMinutes, s.PriceCents, s.QuickBooking, s.Active, s.UpdatedAt, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrServiceNotFound
	}
	return nil
}

// SoftDelete marks a service as deleted
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE services SET deleted = true, active = false, updated_at = $1 WHERE id = $2 AND deleted = false
	`, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrServiceNotFound
	}
	return nil
}
