package therapist

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

// Repository handles therapist database operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new therapist repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new therapist
func (r *Repository) Create(ctx context.Context, t *Therapist) error {
	query := `
		INSERT INTO therapists (name, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	return r.db.QueryRowContext(ctx, query, t.Name, t.Active, t.CreatedAt, t.UpdatedAt).Scan(&t.ID)
}

// GetByID returns a therapist by ID, nil if not found or soft-deleted
func (r *Repository) GetByID(ctx context.Context, id int64) (*Therapist, error) {
	query := `SELECT * FROM therapists WHERE id = $1 AND deleted = false`
	var t Therapist
	err := r.db.GetContext(ctx, &t, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return &t, err
}

// List returns all non-deleted therapists
func (r *Repository) List(ctx context.Context) ([]*Therapist, error) {
	query := `SELECT * FROM therapists WHERE deleted = false ORDER BY name ASC, id ASC`
	var therapists []*Therapist
	err := r.db.SelectContext(ctx, &therapists, query)
	return therapists, err
}

// ListActive returns active, non-deleted therapists ordered by name
func (r *Repository) ListActive(ctx context.Context) ([]*Therapist, error) {
	query := `SELECT * FROM therapists WHERE active = true AND deleted = false ORDER BY name ASC, id ASC`
	var therapists []*Therapist
	err := r.db.SelectContext(ctx, &therapists, query)
	return therapists, err
}

// Update modifies therapist fields
func (r *Repository) Update(ctx context.Context, t *Therapist) error {
	query := `
		UPDATE therapists SET name = $1, active = $2, updated_at = $3
		WHERE id = $4 AND deleted = false
	`
	t.UpdatedAt = time.Now()
	res, err := r.db.ExecContext(ctx, query, t.Name, t.Active, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTherapistNotFound
	}
	return nil
}

// SoftDelete marks a therapist as deleted
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE therapists SET deleted = true, active = false, updated_at = $1 WHERE id = $2 AND deleted = false
	`, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTherapistNotFound
	}
	return nil
}
