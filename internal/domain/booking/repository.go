package booking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// FindQuery narrows the booking list. From/To bound the calendar day
// inclusively; the ID filters are exact matches when set.
type FindQuery struct {
	From        time.Time
	To          time.Time
	RoomID      *int64
	TherapistID *int64
	ServiceID   *int64
}

// Repository defines booking data access
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	Find(ctx context.Context, q FindQuery) ([]*Booking, error)
	Update(ctx context.Context, b *Booking) error
	SetConfirmed(ctx context.Context, id int64, confirmed bool) error
	SetCancelled(ctx context.Context, id int64, cancelled bool) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates a new booking repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const bookingSelectColumns = `
	b.id, b.day, b.time_of_day, b.duration_minutes, b.price_cents,
	b.room_id, b.service_id, b.guest_id, b.therapist_id,
	b.confirmed, b.cancelled, b.comment, b.created_at, b.updated_at,
	r.name AS room_name, s.name AS service_name, g.name AS guest_name,
	t.name AS therapist_name
`

const bookingJoins = `
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id
	JOIN services s ON s.id = b.service_id
	JOIN guests g ON g.id = b.guest_id
	LEFT JOIN therapists t ON t.id = b.therapist_id
`

// Create inserts a new booking
func (r *repository) Create(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings (day, time_of_day, duration_minutes, price_cents,
			room_id, service_id, guest_id, therapist_id, confirmed, cancelled,
			comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	return r.db.QueryRowContext(ctx, query,
		b.Day, b.TimeOfDay, b.DurationMinutes, b.PriceCents,
		b.RoomID, b.ServiceID, b.GuestID, b.TherapistID,
		b.Confirmed, b.Cancelled, b.Comment, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
}

// GetByID returns a booking with its directory projections, nil if not found
func (r *repository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	query := `SELECT ` + bookingSelectColumns + bookingJoins + ` WHERE b.id = $1`
	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return &b, err
}

// Find returns bookings whose day falls inside the inclusive [From, To]
// bound, narrowed by the optional ID filters. Results are ordered by
// (day, time_of_day) ascending; every downstream grouping and slot
// computation depends on that ordering.
func (r *repository) Find(ctx context.Context, q FindQuery) ([]*Booking, error) {
	var conditions []string
	var args []interface{}

	conditions = append(conditions, fmt.Sprintf("b.day >= $%d", len(args)+1))
	args = append(args, q.From)
	conditions = append(conditions, fmt.Sprintf("b.day <= $%d", len(args)+1))
	args = append(args, q.To)

	if q.RoomID != nil {
		conditions = append(conditions, fmt.Sprintf("b.room_id = $%d", len(args)+1))
		args = append(args, *q.RoomID)
	}
	if q.TherapistID != nil {
		conditions = append(conditions, fmt.Sprintf("b.therapist_id = $%d", len(args)+1))
		args = append(args, *q.TherapistID)
	}
	if q.ServiceID != nil {
		conditions = append(conditions, fmt.Sprintf("b.service_id = $%d", len(args)+1))
		args = append(args, *q.ServiceID)
	}

	query := `SELECT ` + bookingSelectColumns + bookingJoins +
		` WHERE ` + strings.Join(conditions, " AND ") +
		` ORDER BY b.day ASC, b.time_of_day ASC`

	var bookings []*Booking
	err := r.db.SelectContext(ctx, &bookings, query, args...)
	return bookings, err
}

// Update modifies booking fields
func (r *repository) Update(ctx context.Context, b *Booking) error {
	query := `
		UPDATE bookings
		SET day = $1, time_of_day = $2, duration_minutes = $3, price_cents = $4,
			room_id = $5, service_id = $6, guest_id = $7, therapist_id = $8,
			confirmed = $9, cancelled = $10, comment = $11, updated_at = $12
		WHERE id = $13
	`
	b.UpdatedAt = time.Now()
	res, err := r.db.ExecContext(ctx, query,
		b.Day, b.TimeOfDay, b.DurationMinutes, b.PriceCents,
		b.RoomID, b.ServiceID, b.GuestID, b.TherapistID,
		b.Confirmed, b.Cancelled, b.Comment, b.UpdatedAt, b.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// SetConfirmed updates the confirmed flag
func (r *repository) SetConfirmed(ctx context.Context, id int64, confirmed bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bookings SET confirmed = $1, updated_at = $2 WHERE id = $3
	`, confirmed, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// SetCancelled updates the cancelled flag. Cancelled bookings stay in
// storage; views decide whether to show them.
func (r *repository) SetCancelled(ctx context.Context, id int64, cancelled bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bookings SET cancelled = $1, updated_at = $2 WHERE id = $3
	`, cancelled, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Delete removes a booking
func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookingNotFound
	}
	return nil
}
