package guest

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

// Repository handles guest database operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new guest repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new guest
func (r *Repository) Create(ctx context.Context, g *Guest) error {
	query := `
		INSERT INTO guests (name, phone, email, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now
	return r.db.QueryRowContext(ctx, query,
		g.Name, g.Phone, g.Email, g.Notes, g.CreatedAt, g.UpdatedAt,
	).Scan(&g.ID)
}

// GetByID returns a guest by ID, nil if not found or soft-deleted
func (r *Repository) GetByID(ctx context.Context, id int64) (*Guest, error) {
	query := `SELECT * FROM guests WHERE id = $1 AND deleted = false`
	var g Guest
	err := r.db.GetContext(ctx, &g, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return &g, err
}

// List returns non-deleted guests, optionally filtered by a name search
func (r *Repository) List(ctx context.Context, search string, limit, offset int) ([]Guest, int, error) {
	var guests []Guest
	var total int

	if search != "" {
		pattern := "%" + search + "%"
		err := r.db.SelectContext(ctx, &guests, `
			SELECT * FROM guests
			WHERE deleted = false AND name ILIKE $1
			ORDER BY name ASC, id ASC
			LIMIT $2 OFFSET $3
		`, pattern, limit, offset)
		if err != nil {
			return nil, 0, err
		}
		err = r.db.GetContext(ctx, &total, `
			SELECT COUNT(*) FROM guests WHERE deleted = false AND name ILIKE $1
		`, pattern)
		return guests, total, err
	}

	err := r.db.SelectContext(ctx, &guests, `
		SELECT * FROM guests
		WHERE deleted = false
		ORDER BY name ASC, id ASC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	err = r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM guests WHERE deleted = false`)
	return guests, total, err
}

// Update modifies guest fields
func (r *Repository) Update(ctx context.Context, g *Guest) error {
	query := `
		UPDATE guests
		SET name = $1, phone = $2, email = $3, notes = $4, updated_at = $5
		WHERE id = $6 AND deleted = false
	`
	g.UpdatedAt = time.Now()
	res, err := r.db.ExecContext(ctx, query, g.Name, g.Phone, g.Email, g.Notes, g.UpdatedAt, g.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrGuestNotFound
	}
	return nil
}

// SoftDelete marks a guest as deleted, keeping the row for existing bookings
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE guests SET deleted = true, updated_at = $1 WHERE id = $2 AND deleted = false
	`, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrGuestNotFound
	}
	return nil
}
