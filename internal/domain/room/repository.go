package room

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

// Repository handles room database operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new room repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new room
func (r *Repository) Create(ctx context.Context, room *Room) error {
	query := `
		INSERT INTO rooms (name, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now
	return r.db.QueryRowContext(ctx, query, room.Name, room.Active, room.CreatedAt, room.UpdatedAt).Scan(&room.ID)
}

// GetByID returns a room by ID, nil if not found or soft-deleted
func (r *Repository) GetByID(ctx context.Context, id int64) (*Room, error) {
	query := `SELECT * FROM rooms WHERE id = $1 AND deleted = false`
	var room Room
	err := r.db.GetContext(ctx, &room, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return &room, err
}

// List returns all non-deleted rooms
func (r *Repository) List(ctx context.Context) ([]*Room, error) {
	query := `SELECT * FROM rooms WHERE deleted = false ORDER BY name ASC, id ASC`
	var rooms []*Room
	err := r.db.SelectContext(ctx, &rooms, query)
	return rooms, err
}

// ListActive returns active, non-deleted rooms ordered by name
func (r *Repository) ListActive(ctx context.Context) ([]*Room, error) {
	query := `SELECT * FROM rooms WHERE active = true AND deleted = false ORDER BY name ASC, id ASC`
	var rooms []*Room
	err := r.db.SelectContext(ctx, &rooms, query)
	return rooms, err
}

// Update modifies room fields
func (r *Repository) Update(ctx context.Context, room *Room) error {
	query := `
		UPDATE rooms SET name = $1, active = $2, updated_at = $3
		WHERE id = $4 AND deleted = false
	`
	room.UpdatedAt = time.Now()
	res, err := r.db.ExecContext(ctx, query, room.Name, room.Active, room.UpdatedAt, room.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// SoftDelete marks a room as deleted
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE rooms SET deleted = true, active = false, updated_at = $1 WHERE id = $2 AND deleted = false
	`, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRoomNotFound
	}
	return nil
}
