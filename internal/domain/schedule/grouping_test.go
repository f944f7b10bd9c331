package schedule

import (
	"database/sql"
	"testing"
	"time"

	"github.com/serenita/spa-api/internal/domain/booking"
)

func namedRoomBooking(id int64, roomID int64, roomName string, confirmed, cancelled bool) *booking.Booking {
	return &booking.Booking{
		ID:        id,
		Day:       date(2024, time.June, 10),
		RoomID:    roomID,
		RoomName:  roomName,
		Confirmed: confirmed,
		Cancelled: cancelled,
	}
}

func namedTherapistBooking(id int64, therapistID int64, therapistName string) *booking.Booking {
	b := &booking.Booking{
		ID:  id,
		Day: date(2024, time.June, 10),
	}
	if therapistID > 0 {
		b.TherapistID = sql.NullInt64{Int64: therapistID, Valid: true}
		b.TherapistName = sql.NullString{String: therapistName, Valid: true}
	}
	return b
}

func TestGroupByRoomOrdering(t *testing.T) {
	bookings := []*booking.Booking{
		namedRoomBooking(1, 3, "Sauna", false, false),
		namedRoomBooking(2, 1, "Lotus", false, false),
		namedRoomBooking(3, 2, "Bamboo", false, false),
		namedRoomBooking(4, 1, "Lotus", true, false),
	}

	groups := GroupByRoom(bookings)

	if len(groups) != 3 {
		t.Fatalf("group count = %d, want 3", len(groups))
	}
	wantOrder := []string{"Bamboo", "Lotus", "Sauna"}
	for i, name := range wantOrder {
		if groups[i].RoomName != name {
			t.Errorf("group %d = %q, want %q", i, groups[i].RoomName, name)
		}
	}
	if len(groups[1].Bookings) != 2 {
		t.Errorf("Lotus booking count = %d, want 2", len(groups[1].Bookings))
	}
	// Within-group order follows the input order
	if groups[1].Bookings[0].ID != 2 || groups[1].Bookings[1].ID != 4 {
		t.Error("Lotus bookings lost their input order")
	}
}

func TestGroupByRoomTieBreakByID(t *testing.T) {
	bookings := []*booking.Booking{
		namedRoomBooking(1, 5, "Steam", false, false),
		namedRoomBooking(2, 4, "Steam", false, false),
	}

	groups := GroupByRoom(bookings)
	if len(groups) != 2 {
		t.Fatalf("group count = %d, want 2", len(groups))
	}
	if groups[0].RoomID != 4 || groups[1].RoomID != 5 {
		t.Errorf("tie-break order = [%d, %d], want [4, 5]", groups[0].RoomID, groups[1].RoomID)
	}
}

func TestGroupCountsPartition(t *testing.T) {
	bookings := []*booking.Booking{
		namedRoomBooking(1, 1, "Lotus", true, false),  // confirmed
		namedRoomBooking(2, 1, "Lotus", false, false), // pending
		namedRoomBooking(3, 1, "Lotus", false, true),  // cancelled
		namedRoomBooking(4, 1, "Lotus", true, true),   // cancelled wins over confirmed
		namedRoomBooking(5, 1, "Lotus", true, false),  // confirmed
	}

	groups := GroupByRoom(bookings)
	if len(groups) != 1 {
		t.Fatalf("group count = %d, want 1", len(groups))
	}

	c := groups[0].Counts
	if c.Confirmed != 2 || c.Pending != 1 || c.Cancelled != 2 {
		t.Errorf("counts = %+v, want confirmed=2 pending=1 cancelled=2", c)
	}
	if c.Confirmed+c.Pending+c.Cancelled != len(bookings) {
		t.Errorf("counts do not partition the group: %d + %d + %d != %d",
			c.Confirmed, c.Pending, c.Cancelled, len(bookings))
	}
}

func TestGroupByTherapistExcludesUnassigned(t *testing.T) {
	bookings := []*booking.Booking{
		namedTherapistBooking(1, 2, "Mara"),
		namedTherapistBooking(2, 0, ""), // no therapist, excluded
		namedTherapistBooking(3, 1, "Elif"),
	}

	groups := GroupByTherapist(bookings)

	if len(groups) != 2 {
		t.Fatalf("group count = %d, want 2", len(groups))
	}
	if groups[0].TherapistName != "Elif" || groups[1].TherapistName != "Mara" {
		t.Errorf("group order = [%q, %q], want [Elif, Mara]", groups[0].TherapistName, groups[1].TherapistName)
	}
	total := len(groups[0].Bookings) + len(groups[1].Bookings)
	if total != 2 {
		t.Errorf("grouped booking count = %d, want 2 (unassigned excluded)", total)
	}
}

// Two fully overlapping bookings in one room both land in the bucket; the
// grid is the only place that collapses them.
func TestGroupByRoomKeepsOverlaps(t *testing.T) {
	day := date(2024, time.June, 10)
	a := mkBooking(1, day, 10*secondsPerHour, 60, 1)
	a.RoomName = "Lotus"
	b := mkBooking(2, day, 10*secondsPerHour, 60, 1)
	b.RoomName = "Lotus"

	groups := GroupByRoom([]*booking.Booking{a, b})
	if len(groups) != 1 || len(groups[0].Bookings) != 2 {
		t.Fatal("overlapping bookings must both stay in the room bucket")
	}

	occupied := DefaultGrid().Occupancy(day, DefaultGrid().Slots(), []*booking.Booking{a, b})
	if got := occupied[4]; got != a {
		t.Errorf("shared slot reports booking %d, want the earlier (ID 1)", got.ID)
	}
}

func TestGroupByRoomEmpty(t *testing.T) {
	if groups := GroupByRoom(nil); len(groups) != 0 {
		t.Errorf("GroupByRoom(nil) = %d groups, want 0", len(groups))
	}
	if groups := GroupByTherapist(nil); len(groups) != 0 {
		t.Errorf("GroupByTherapist(nil) = %d groups, want 0", len(groups))
	}
}
