package booking

import (
	"database/sql"
	"time"
)

// Booking represents a reservation of a room (and optionally a therapist)
// for a guest at a specific time of a calendar day.
type Booking struct {
	ID              int64          `db:"id"`
	Day             time.Time      `db:"day"`           // calendar day, no time component
	TimeOfDay       int            `db:"time_of_day"`   // seconds from midnight of Day
	DurationMinutes int            `db:"duration_minutes"`
	PriceCents      int64          `db:"price_cents"`
	RoomID          int64          `db:"room_id"`
	ServiceID       int64          `db:"service_id"`
	GuestID         int64          `db:"guest_id"`
	TherapistID     sql.NullInt64  `db:"therapist_id"`
	Confirmed       bool           `db:"confirmed"`
	Cancelled       bool           `db:"cancelled"`
	Comment         sql.NullString `db:"comment"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`

	// Embedded directory projections (joined on read)
	RoomName      string         `db:"room_name"`
	ServiceName   string         `db:"service_name"`
	GuestName     string         `db:"guest_name"`
	TherapistName sql.NullString `db:"therapist_name"`
}

// StartsAt returns the absolute start of the booking's effective interval.
func (b *Booking) StartsAt() time.Time {
	y, m, d := b.Day.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, b.Day.Location())
	return midnight.Add(time.Duration(b.TimeOfDay) * time.Second)
}

// EndsAt returns the exclusive end of the booking's effective interval.
func (b *Booking) EndsAt() time.Time {
	return b.StartsAt().Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// Overlaps reports whether the booking's effective interval overlaps
// [start, end). Touching endpoints do not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartsAt().Before(end) && b.EndsAt().After(start)
}
