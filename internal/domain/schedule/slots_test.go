package schedule

import (
	"database/sql"
	"testing"
	"time"

	"github.com/serenita/spa-api/internal/domain/booking"
)

func mkBooking(id int64, day time.Time, timeOfDay, durationMinutes int, roomID int64) *booking.Booking {
	return &booking.Booking{
		ID:              id,
		Day:             day,
		TimeOfDay:       timeOfDay,
		DurationMinutes: durationMinutes,
		RoomID:          roomID,
	}
}

const (
	secondsPerHour = 60 * 60
)

func TestDefaultGridSlots(t *testing.T) {
	slots := DefaultGrid().Slots()

	if len(slots) != 28 {
		t.Fatalf("slot count = %d, want 28", len(slots))
	}
	if slots[0].Start != 8*time.Hour || slots[0].End != 8*time.Hour+30*time.Minute {
		t.Errorf("first slot = [%v, %v), want [8h, 8h30m)", slots[0].Start, slots[0].End)
	}
	last := slots[len(slots)-1]
	if last.Start != 21*time.Hour+30*time.Minute || last.End != 22*time.Hour {
		t.Errorf("last slot = [%v, %v), want [21h30m, 22h)", last.Start, last.End)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].Start != slots[i-1].End {
			t.Errorf("gap between slot %d and %d", i-1, i)
		}
	}
}

func TestNewGridFallsBackOnBadBounds(t *testing.T) {
	tests := []struct {
		open, close, slot int
	}{
		{-1, 22, 30},
		{8, 25, 30},
		{22, 8, 30},
		{8, 22, 0},
	}
	for _, tt := range tests {
		g := NewGrid(tt.open, tt.close, tt.slot)
		if len(g.Slots()) != 28 {
			t.Errorf("NewGrid(%d, %d, %d) did not fall back to the default grid", tt.open, tt.close, tt.slot)
		}
	}
}

func TestOccupancyStrictOverlap(t *testing.T) {
	day := date(2024, time.June, 10)
	slots := DefaultGrid().Slots()

	// 10:00 for 60 minutes
	b := mkBooking(1, day, 10*secondsPerHour, 60, 1)
	occupied := DefaultGrid().Occupancy(day, slots, []*booking.Booking{b})

	// Slots are indexed from 08:00; [09:30,10:00) is index 3, [10:00,10:30)
	// index 4, [10:30,11:00) index 5, [11:00,11:30) index 6.
	if _, ok := occupied[3]; ok {
		t.Error("booking starting at 10:00 must not occupy the [09:30,10:00) slot")
	}
	if got := occupied[4]; got != b {
		t.Error("booking must occupy the [10:00,10:30) slot")
	}
	if got := occupied[5]; got != b {
		t.Error("booking must occupy the [10:30,11:00) slot")
	}
	if _, ok := occupied[6]; ok {
		t.Error("booking ending at 11:00 must not occupy the [11:00,11:30) slot")
	}
	if len(occupied) != 2 {
		t.Errorf("occupied slot count = %d, want 2", len(occupied))
	}
}

func TestOccupancyFirstMatchWins(t *testing.T) {
	day := date(2024, time.June, 10)
	slots := DefaultGrid().Slots()

	early := mkBooking(1, day, 9*secondsPerHour, 90, 1)         // 09:00-10:30
	late := mkBooking(2, day, 10*secondsPerHour, 60, 1)         // 10:00-11:00
	occupied := DefaultGrid().Occupancy(day, slots, []*booking.Booking{late, early})

	// The shared [10:00,10:30) slot reports the earlier booking
	if got := occupied[4]; got != early {
		t.Errorf("shared slot booking ID = %d, want %d", got.ID, early.ID)
	}
	// The later booking still holds the slots past the overlap
	if got := occupied[5]; got != late {
		t.Errorf("slot [10:30,11:00) booking ID = %d, want %d", got.ID, late.ID)
	}
}

func TestOccupancyOrderInsensitive(t *testing.T) {
	day := date(2024, time.June, 10)
	slots := DefaultGrid().Slots()

	a := mkBooking(1, day, 9*secondsPerHour, 120, 1)
	b := mkBooking(2, day, 10*secondsPerHour, 60, 1)
	c := mkBooking(3, day, 14*secondsPerHour, 30, 1)

	forward := DefaultGrid().Occupancy(day, slots, []*booking.Booking{a, b, c})
	backward := DefaultGrid().Occupancy(day, slots, []*booking.Booking{c, b, a})

	if len(forward) != len(backward) {
		t.Fatalf("occupancy size differs: %d vs %d", len(forward), len(backward))
	}
	for i, got := range forward {
		if backward[i] != got {
			t.Errorf("slot %d differs between input orders", i)
		}
	}
}

func TestOccupancySkipsCancelled(t *testing.T) {
	day := date(2024, time.June, 10)
	slots := DefaultGrid().Slots()

	cancelled := mkBooking(1, day, 10*secondsPerHour, 60, 1)
	cancelled.Cancelled = true
	live := mkBooking(2, day, 10*secondsPerHour+1800, 30, 1) // 10:30-11:00

	occupied := DefaultGrid().Occupancy(day, slots, []*booking.Booking{cancelled, live})

	if _, ok := occupied[4]; ok {
		t.Error("cancelled booking must not occupy slots")
	}
	if got := occupied[5]; got != live {
		t.Error("live booking must occupy its slot")
	}
}

func TestOccupancyEmpty(t *testing.T) {
	day := date(2024, time.June, 10)
	occupied := DefaultGrid().Occupancy(day, DefaultGrid().Slots(), nil)
	if len(occupied) != 0 {
		t.Errorf("occupancy of no bookings = %d entries, want 0", len(occupied))
	}
}

// Guards against bookings carrying a therapist reference interfering with
// room occupancy; the grid only looks at time and cancellation.
func TestOccupancyIgnoresTherapist(t *testing.T) {
	day := date(2024, time.June, 10)
	b := mkBooking(1, day, 12*secondsPerHour, 30, 1)
	b.TherapistID = sql.NullInt64{Int64: 7, Valid: true}

	occupied := DefaultGrid().Occupancy(day, DefaultGrid().Slots(), []*booking.Booking{b})
	if got := occupied[8]; got != b { // [12:00,12:30) is index 8
		t.Error("booking with therapist must occupy its slot")
	}
}
