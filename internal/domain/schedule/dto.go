package schedule

import (
	"time"

	"github.com/serenita/spa-api/internal/domain/booking"
	"github.com/serenita/spa-api/internal/domain/room"
	svc "github.com/serenita/spa-api/internal/domain/service"
	"github.com/serenita/spa-api/internal/domain/therapist"
)

// RangeView is the resolved absolute window echoed back with every view
type RangeView struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	StartUnix int64  `json:"start_unix"`
	EndUnix   int64  `json:"end_unix"`
}

func newRangeView(r DateRange) RangeView {
	return RangeView{
		Start:     r.Start.Format(time.RFC3339),
		End:       r.End.Format(time.RFC3339),
		StartUnix: r.StartUnix(),
		EndUnix:   r.EndUnix(),
	}
}

// OverviewResult is the tabbed overview payload: the filtered bookings
// plus the full directories and the quick-booking shortlist
type OverviewResult struct {
	Range         RangeView                      `json:"range"`
	Bookings      []*booking.BookingResponse     `json:"bookings"`
	Rooms         []*room.RoomResponse           `json:"rooms"`
	Therapists    []*therapist.TherapistResponse `json:"therapists"`
	Services      []*svc.ServiceResponse         `json:"services"`
	QuickBookings []*svc.ServiceResponse         `json:"quick_bookings"`
}

// RoomSchedule pairs one room with its in-range bookings
type RoomSchedule struct {
	Room     *room.RoomResponse         `json:"room"`
	Bookings []*booking.BookingResponse `json:"bookings"`
	Counts   StatusCounts               `json:"counts"`
}

// RoomsOverviewResult is the room-centric view
type RoomsOverviewResult struct {
	Range    RangeView                  `json:"range"`
	Rooms    []*RoomSchedule            `json:"rooms"`
	Bookings []*booking.BookingResponse `json:"bookings"`
}

// TherapistSchedule pairs one therapist with its in-range bookings and
// the workload percentage derived from them
type TherapistSchedule struct {
	Therapist *therapist.TherapistResponse `json:"therapist"`
	Workload  float64                      `json:"workload"`
	Bookings  []*booking.BookingResponse   `json:"bookings"`
	Counts    StatusCounts                 `json:"counts"`
}

// TherapistsOverviewResult is the therapist-centric view
type TherapistsOverviewResult struct {
	Range      RangeView                  `json:"range"`
	Therapists []*TherapistSchedule       `json:"therapists"`
	Bookings   []*booking.BookingResponse `json:"bookings"`
}

// CalendarBooking is a booking annotated with its absolute effective
// interval for direct grid rendering
type CalendarBooking struct {
	*booking.BookingResponse
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at"`
}

// CalendarResult is the flat calendar view
type CalendarResult struct {
	Range    RangeView          `json:"range"`
	Bookings []*CalendarBooking `json:"bookings"`
}

// GridCell is one 30-minute cell of a room's day row
type GridCell struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	BookingID   *int64 `json:"booking_id,omitempty"`
	GuestName   string `json:"guest_name,omitempty"`
	ServiceName string `json:"service_name,omitempty"`
	Confirmed   bool   `json:"confirmed,omitempty"`
}

// RoomGridRow is one room's full slot row
type RoomGridRow struct {
	Room  *room.RoomResponse `json:"room"`
	Cells []GridCell         `json:"cells"`
}

// GridResult is the per-day slot grid across rooms
type GridResult struct {
	Date  string         `json:"date"`
	Rooms []*RoomGridRow `json:"rooms"`
}

func toBookingResponses(bookings []*booking.Booking) []*booking.BookingResponse {
	items := make([]*booking.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, b.ToResponse())
	}
	return items
}
