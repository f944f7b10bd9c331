package booking

import (
	"context"
	"database/sql"
	"time"

	svc "github.com/serenita/spa-api/internal/domain/service"
)

// ServiceDirectory resolves booking defaults from the service catalogue
type ServiceDirectory interface {
	GetByID(ctx context.Context, id int64) (*svc.Service, error)
}

// Service implements booking business logic
type Service struct {
	repo     Repository
	services ServiceDirectory
}

// NewService creates a new booking service
func NewService(repo Repository, services ServiceDirectory) *Service {
	return &Service{repo: repo, services: services}
}

// Create stores a new booking. Duration and price fall back to the linked
// service's values when the request omits them. No overlap check is
// performed; double bookings are allowed and surface in the slot grid.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	day, err := time.Parse("2006-01-02", req.Day)
	if err != nil {
		return nil, ErrInvalidDay
	}

	linked, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if linked == nil {
		return nil, ErrServiceNotFound
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = linked.DurationMinutes
	}
	price := linked.PriceCents
	if req.PriceCents != nil {
		price = *req.PriceCents
	}

	b := &Booking{
		Day:             day,
		TimeOfDay:       req.TimeOfDay,
		DurationMinutes: duration,
		PriceCents:      price,
		RoomID:          req.RoomID,
		ServiceID:       req.ServiceID,
		GuestID:         req.GuestID,
		Confirmed:       req.Confirmed,
		Comment:         sql.NullString{String: req.Comment, Valid: req.Comment != ""},
	}
	if req.TherapistID != nil {
		b.TherapistID = sql.NullInt64{Int64: *req.TherapistID, Valid: true}
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// Re-read to pick up the joined directory names
	return s.repo.GetByID(ctx, b.ID)
}

// Update rewrites a booking from the request
func (s *Service) Update(ctx context.Context, id int64, req UpdateBookingRequest) (*Booking, error) {
	day, err := time.Parse("2006-01-02", req.Day)
	if err != nil {
		return nil, ErrInvalidDay
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrBookingNotFound
	}

	linked, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if linked == nil {
		return nil, ErrServiceNotFound
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = linked.DurationMinutes
	}
	price := existing.PriceCents
	if req.PriceCents != nil {
		price = *req.PriceCents
	}

	b := &Booking{
		ID:              id,
		Day:             day,
		TimeOfDay:       req.TimeOfDay,
		DurationMinutes: duration,
		PriceCents:      price,
		RoomID:          req.RoomID,
		ServiceID:       req.ServiceID,
		GuestID:         req.GuestID,
		Confirmed:       req.Confirmed,
		Cancelled:       req.Cancelled,
		Comment:         sql.NullString{String: req.Comment, Valid: req.Comment != ""},
	}
	if req.TherapistID != nil {
		b.TherapistID = sql.NullInt64{Int64: *req.TherapistID, Valid: true}
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Confirm marks a booking as confirmed
func (s *Service) Confirm(ctx context.Context, id int64) error {
	return s.repo.SetConfirmed(ctx, id, true)
}

// Cancel soft-cancels a booking; the row stays for reporting
func (s *Service) Cancel(ctx context.Context, id int64) error {
	return s.repo.SetCancelled(ctx, id, true)
}

// Get returns a booking by ID
func (s *Service) Get(ctx context.Context, id int64) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

// Find lists bookings for a day range and optional filters
func (s *Service) Find(ctx context.Context, q FindQuery) ([]*Booking, error) {
	return s.repo.Find(ctx, q)
}

// Delete removes a booking permanently
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
