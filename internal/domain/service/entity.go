package service

import "time"

// Service represents a bookable spa treatment
type Service struct {
	ID              int64     `db:"id"`
	Name            string    `db:"name"`
	DurationMinutes int       `db:"duration_minutes"`
	PriceCents      int64     `db:"price_cents"`
	QuickBooking    bool      `db:"quick_booking"`
	Active          bool      `db:"active"`
	Deleted         bool      `db:"deleted"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// ServiceResponse for API response
type ServiceResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	PriceCents      int64  `json:"price_cents"`
	QuickBooking    bool   `json:"quick_booking"`
	Active          bool   `json:"active"`
}

// ToResponse converts entity to response
func (s *Service) ToResponse() *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		PriceCents:      s.PriceCents,
		QuickBooking:    s.QuickBooking,
		Active:          s.Active,
	}
}

// CreateRequest for creating a service
type CreateRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=200"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gte=5,lte=480"`
	PriceCents      int64  `json:"price_cents" validate:"gte=0"`
	QuickBooking    bool   `json:"quick_booking"`
	Active          *bool  `json:"active"`
}

// UpdateRequest for updating a service
type UpdateRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=200"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gte=5,lte=480"`
	PriceCents      int64  `json:"price_cents" validate:"gte=0"`
	QuickBooking    bool   `json:"quick_booking"`
	Active          bool   `json:"active"`
}
