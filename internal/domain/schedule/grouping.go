package schedule

import (
	"sort"

	"github.com/serenita/spa-api/internal/domain/booking"
)

// StatusCounts partitions a booking group by status. The three counts
// always sum to the group size.
type StatusCounts struct {
	Confirmed int `json:"confirmed_count"`
	Pending   int `json:"pending_count"`
	Cancelled int `json:"cancelled_count"`
}

func countStatuses(bookings []*booking.Booking) StatusCounts {
	var c StatusCounts
	for _, b := range bookings {
		switch {
		case b.Cancelled:
			c.Cancelled++
		case b.Confirmed:
			c.Confirmed++
		default:
			c.Pending++
		}
	}
	return c
}

// RoomGroup is one room's bucket of bookings
type RoomGroup struct {
	RoomID   int64
	RoomName string
	Bookings []*booking.Booking
	Counts   StatusCounts
}

// TherapistGroup is one therapist's bucket of bookings
type TherapistGroup struct {
	TherapistID   int64
	TherapistName string
	Bookings      []*booking.Booking
	Counts        StatusCounts
}

// GroupByRoom buckets bookings by room, using the projections embedded in
// each booking. Groups come back ordered by room name (case-sensitive),
// ties broken by ascending ID; bookings inside a group keep the
// (day, time_of_day) order of the input.
func GroupByRoom(bookings []*booking.Booking) []RoomGroup {
	byID := make(map[int64]*RoomGroup)
	for _, b := range bookings {
		g, ok := byID[b.RoomID]
		if !ok {
			g = &RoomGroup{RoomID: b.RoomID, RoomName: b.RoomName}
			byID[b.RoomID] = g
		}
		g.Bookings = append(g.Bookings, b)
	}

	groups := make([]RoomGroup, 0, len(byID))
	for _, g := range byID {
		g.Counts = countStatuses(g.Bookings)
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].RoomName != groups[j].RoomName {
			return groups[i].RoomName < groups[j].RoomName
		}
		return groups[i].RoomID < groups[j].RoomID
	})
	return groups
}

// GroupByTherapist buckets bookings by therapist, ordered like GroupByRoom.
// Bookings without a therapist are excluded entirely; there is no
// "unassigned" bucket.
func GroupByTherapist(bookings []*booking.Booking) []TherapistGroup {
	byID := make(map[int64]*TherapistGroup)
	for _, b := range bookings {
		if !b.TherapistID.Valid {
			continue
		}
		id := b.TherapistID.Int64
		g, ok := byID[id]
		if !ok {
			g = &TherapistGroup{TherapistID: id, TherapistName: b.TherapistName.String}
			byID[id] = g
		}
		g.Bookings = append(g.Bookings, b)
	}

	groups := make([]TherapistGroup, 0, len(byID))
	for _, g := range byID {
		g.Counts = countStatuses(g.Bookings)
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].TherapistName != groups[j].TherapistName {
			return groups[i].TherapistName < groups[j].TherapistName
		}
		return groups[i].TherapistID < groups[j].TherapistID
	})
	return groups
}
