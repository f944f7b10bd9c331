package schedule

import (
	"sort"
	"time"

	"github.com/serenita/spa-api/internal/domain/booking"
)

// Slot is a half-open [Start, End) interval expressed as offsets from
// midnight of the business day.
type Slot struct {
	Start time.Duration
	End   time.Duration
}

// Grid generates the fixed slot sequence of a business day.
type Grid struct {
	open time.Duration
	clos time.Duration
	slot time.Duration
}

// NewGrid builds a grid from operating hours. Out-of-range values fall
// back to the standard 08:00-22:00 day with 30-minute slots.
func NewGrid(openHour, closeHour, slotMinutes int) Grid {
	if openHour < 0 || closeHour > 24 || openHour >= closeHour || slotMinutes <= 0 {
		return DefaultGrid()
	}
	return Grid{
		open: time.Duration(openHour) * time.Hour,
		clos: time.Duration(closeHour) * time.Hour,
		slot: time.Duration(slotMinutes) * time.Minute,
	}
}

// DefaultGrid returns the standard 28-slot day: 08:00-22:00, 30 minutes each.
func DefaultGrid() Grid {
	return Grid{open: 8 * time.Hour, clos: 22 * time.Hour, slot: 30 * time.Minute}
}

// Slots returns the ordered slot sequence for one business day.
func (g Grid) Slots() []Slot {
	var slots []Slot
	for start := g.open; start+g.slot <= g.clos; start += g.slot {
		slots = append(slots, Slot{Start: start, End: start + g.slot})
	}
	return slots
}

// Occupancy maps each slot index to the booking occupying it on the given
// day, for bookings already filtered to a single room. A booking occupies a
// slot when the intervals strictly overlap: a booking ending exactly at a
// slot's start, or starting exactly at its end, does not count. When
// several bookings overlap one slot only the earliest is reported; the grid
// is a display aid, not conflict detection. Cancelled bookings never occupy
// slots.
func (g Grid) Occupancy(day time.Time, slots []Slot, bookings []*booking.Booking) map[int]*booking.Booking {
	y, m, d := day.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, day.Location())

	// Sort ascending so first-match-wins is insensitive to input order
	ordered := make([]*booking.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Cancelled {
			continue
		}
		ordered = append(ordered, b)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		si, sj := ordered[i].StartsAt(), ordered[j].StartsAt()
		if si.Equal(sj) {
			return ordered[i].ID < ordered[j].ID
		}
		return si.Before(sj)
	})

	occupied := make(map[int]*booking.Booking)
	for i, s := range slots {
		slotStart := midnight.Add(s.Start)
		slotEnd := midnight.Add(s.End)
		for _, b := range ordered {
			if b.Overlaps(slotStart, slotEnd) {
				occupied[i] = b
				break
			}
		}
	}
	return occupied
}
