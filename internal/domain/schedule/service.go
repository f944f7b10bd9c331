package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/serenita/spa-api/internal/domain/booking"
	"github.com/serenita/spa-api/internal/domain/room"
	svc "github.com/serenita/spa-api/internal/domain/service"
	"github.com/serenita/spa-api/internal/domain/therapist"
)

// BookingRepository is the single read this core performs
type BookingRepository interface {
	Find(ctx context.Context, q booking.FindQuery) ([]*booking.Booking, error)
}

// RoomDirectory lists active, non-deleted rooms
type RoomDirectory interface {
	ListActive(ctx context.Context) ([]*room.Room, error)
}

// TherapistDirectory lists active, non-deleted therapists
type TherapistDirectory interface {
	ListActive(ctx context.Context) ([]*therapist.Therapist, error)
}

// ServiceDirectory lists active services and the quick-booking shortlist
type ServiceDirectory interface {
	ListActive(ctx context.Context) ([]*svc.Service, error)
	ListQuickBooking(ctx context.Context, limit int) ([]*svc.Service, error)
}

// quickBookingLimit caps the overview's one-click shortcuts
const quickBookingLimit = 10

// Service assembles the scheduling views. It holds no state between
// calls; every view is recomputed from one repository read.
type Service struct {
	bookings   BookingRepository
	rooms      RoomDirectory
	therapists TherapistDirectory
	services   ServiceDirectory
	grid       Grid
}

// NewService creates a new schedule service
func NewService(bookings BookingRepository, rooms RoomDirectory, therapists TherapistDirectory, services ServiceDirectory, grid Grid) *Service {
	return &Service{
		bookings:   bookings,
		rooms:      rooms,
		therapists: therapists,
		services:   services,
		grid:       grid,
	}
}

// Params are the request parameters shared by every view. A zero Date
// means "now"; an empty Mode means day.
type Params struct {
	Date        time.Time
	Mode        ViewMode
	RoomID      *int64
	TherapistID *int64
	ServiceID   *int64
}

// resolveAndFetch turns the params into an absolute range and performs
// the one booking read every view starts from.
func (s *Service) resolveAndFetch(ctx context.Context, p Params) (DateRange, []*booking.Booking, error) {
	ref := p.Date
	if ref.IsZero() {
		ref = time.Now()
	}
	mode := p.Mode
	if mode == "" {
		mode = ViewModeDay
	}

	rng, err := Resolve(ref, mode)
	if err != nil {
		return DateRange{}, nil, err
	}

	bookings, err := s.bookings.Find(ctx, booking.FindQuery{
		From:        rng.Start,
		To:          rng.End,
		RoomID:      p.RoomID,
		TherapistID: p.TherapistID,
		ServiceID:   p.ServiceID,
	})
	if err != nil {
		return DateRange{}, nil, fmt.Errorf("%w: %v", ErrRepositoryUnavailable, err)
	}
	return rng, bookings, nil
}

// Overview returns the filtered bookings for the range plus the complete
// directories and the quick-booking shortlist. Directories are not
// range-filtered; an empty directory is a valid, renderable result.
func (s *Service) Overview(ctx context.Context, p Params) (*OverviewResult, error) {
	rng, bookings, err := s.resolveAndFetch(ctx, p)
	if err != nil {
		return nil, err
	}

	rooms, err := s.rooms.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	therapists, err := s.therapists.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	services, err := s.services.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	quick, err := s.services.ListQuickBooking(ctx, quickBookingLimit)
	if err != nil {
		return nil, err
	}

	result := &OverviewResult{
		Range:         newRangeView(rng),
		Bookings:      toBookingResponses(bookings),
		Rooms:         make([]*room.RoomResponse, 0, len(rooms)),
		Therapists:    make([]*therapist.TherapistResponse, 0, len(therapists)),
		Services:      make([]*svc.ServiceResponse, 0, len(services)),
		QuickBookings: make([]*svc.ServiceResponse, 0, len(quick)),
	}
	for _, r := range rooms {
		result.Rooms = append(result.Rooms, r.ToResponse())
	}
	for _, t := range therapists {
		result.Therapists = append(result.Therapists, t.ToResponse())
	}
	for _, sv := range services {
		result.Services = append(result.Services, sv.ToResponse())
	}
	for _, sv := range quick {
		result.QuickBookings = append(result.QuickBookings, sv.ToResponse())
	}
	return result, nil
}

// Rooms returns the room-centric view: every active room (or the one the
// filter names) paired with its bookings for the range.
func (s *Service) Rooms(ctx context.Context, p Params) (*RoomsOverviewResult, error) {
	rng, bookings, err := s.resolveAndFetch(ctx, p)
	if err != nil {
		return nil, err
	}

	rooms, err := s.rooms.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if p.RoomID != nil {
		rooms = filterRooms(rooms, *p.RoomID)
	}

	groups := GroupByRoom(bookings)
	byRoom := make(map[int64]*RoomGroup, len(groups))
	for i := range groups {
		byRoom[groups[i].RoomID] = &groups[i]
	}

	result := &RoomsOverviewResult{
		Range:    newRangeView(rng),
		Rooms:    make([]*RoomSchedule, 0, len(rooms)),
		Bookings: toBookingResponses(bookings),
	}
	for _, r := range rooms {
		sched := &RoomSchedule{
			Room:     r.ToResponse(),
			Bookings: []*booking.BookingResponse{},
		}
		if g, ok := byRoom[r.ID]; ok {
			sched.Bookings = toBookingResponses(g.Bookings)
			sched.Counts = g.Counts
		}
		result.Rooms = append(result.Rooms, sched)
	}
	return result, nil
}

// Therapists returns the therapist-centric view, each therapist annotated
// with the workload percentage of its own in-range bookings.
func (s *Service) Therapists(ctx context.Context, p Params) (*TherapistsOverviewResult, error) {
	rng, bookings, err := s.resolveAndFetch(ctx, p)
	if err != nil {
		return nil, err
	}

	therapists, err := s.therapists.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if p.TherapistID != nil {
		therapists = filterTherapists(therapists, *p.TherapistID)
	}

	groups := GroupByTherapist(bookings)
	byTherapist := make(map[int64]*TherapistGroup, len(groups))
	for i := range groups {
		byTherapist[groups[i].TherapistID] = &groups[i]
	}

	result := &TherapistsOverviewResult{
		Range:      newRangeView(rng),
		Therapists: make([]*TherapistSchedule, 0, len(therapists)),
		Bookings:   toBookingResponses(bookings),
	}
	for _, t := range therapists {
		sched := &TherapistSchedule{
			Therapist: t.ToResponse(),
			Bookings:  []*booking.BookingResponse{},
		}
		if g, ok := byTherapist[t.ID]; ok {
			sched.Bookings = toBookingResponses(g.Bookings)
			sched.Counts = g.Counts
			sched.Workload = Workload(g.Bookings)
		}
		result.Therapists = append(result.Therapists, sched)
	}
	return result, nil
}

// Calendar returns the flat booking list annotated with absolute start
// and end timestamps derived from each booking's effective interval.
func (s *Service) Calendar(ctx context.Context, p Params) (*CalendarResult, error) {
	rng, bookings, err := s.resolveAndFetch(ctx, p)
	if err != nil {
		return nil, err
	}

	result := &CalendarResult{
		Range:    newRangeView(rng),
		Bookings: make([]*CalendarBooking, 0, len(bookings)),
	}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, &CalendarBooking{
			BookingResponse: b.ToResponse(),
			StartsAt:        b.StartsAt().Format(time.RFC3339),
			EndsAt:          b.EndsAt().Format(time.RFC3339),
		})
	}
	return result, nil
}

// RoomGrid returns the per-room slot rows for a single day, each cell
// carrying the booking occupying it, if any.
func (s *Service) RoomGrid(ctx context.Context, date time.Time, roomID *int64) (*GridResult, error) {
	if date.IsZero() {
		date = time.Now()
	}

	rng, bookings, err := s.resolveAndFetch(ctx, Params{Date: date, Mode: ViewModeDay, RoomID: roomID})
	if err != nil {
		return nil, err
	}

	rooms, err := s.rooms.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if roomID != nil {
		rooms = filterRooms(rooms, *roomID)
	}

	slots := s.grid.Slots()
	result := &GridResult{
		Date:  rng.Start.Format("2006-01-02"),
		Rooms: make([]*RoomGridRow, 0, len(rooms)),
	}
	for _, r := range rooms {
		var roomBookings []*booking.Booking
		for _, b := range bookings {
			if b.RoomID == r.ID {
				roomBookings = append(roomBookings, b)
			}
		}
		occupied := s.grid.Occupancy(rng.Start, slots, roomBookings)

		row := &RoomGridRow{Room: r.ToResponse(), Cells: make([]GridCell, 0, len(slots))}
		for i, slot := range slots {
			cell := GridCell{
				Start: formatOffset(slot.Start),
				End:   formatOffset(slot.End),
			}
			if b, ok := occupied[i]; ok {
				id := b.ID
				cell.BookingID = &id
				cell.GuestName = b.GuestName
				cell.ServiceName = b.ServiceName
				cell.Confirmed = b.Confirmed
			}
			row.Cells = append(row.Cells, cell)
		}
		result.Rooms = append(result.Rooms, row)
	}
	return result, nil
}

func filterRooms(rooms []*room.Room, id int64) []*room.Room {
	for _, r := range rooms {
		if r.ID == id {
			return []*room.Room{r}
		}
	}
	return []*room.Room{}
}

func filterTherapists(therapists []*therapist.Therapist, id int64) []*therapist.Therapist {
	for _, t := range therapists {
		if t.ID == id {
			return []*therapist.Therapist{t}
		}
	}
	return []*therapist.Therapist{}
}

func formatOffset(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
