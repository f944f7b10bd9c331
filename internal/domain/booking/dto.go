package booking

import "time"

// CreateBookingRequest for creating a booking. Duration and price default
// from the linked service when omitted.
type CreateBookingRequest struct {
	Day             string `json:"day" validate:"required"`
	TimeOfDay       int    `json:"time_of_day" validate:"time_of_day"`
	DurationMinutes int    `json:"duration_minutes" validate:"gte=0,lte=1440"`
	PriceCents      *int64 `json:"price_cents" validate:"omitempty,gte=0"`
	RoomID          int64  `json:"room_id" validate:"required,min=1"`
	ServiceID       int64  `json:"service_id" validate:"required,min=1"`
	GuestID         int64  `json:"guest_id" validate:"required,min=1"`
	TherapistID     *int64 `json:"therapist_id" validate:"omitempty,min=1"`
	Confirmed       bool   `json:"confirmed"`
	Comment         string `json:"comment" validate:"max=2000"`
}

// UpdateBookingRequest for updating a booking
type UpdateBookingRequest struct {
	Day             string `json:"day" validate:"required"`
	TimeOfDay       int    `json:"time_of_day" validate:"time_of_day"`
	DurationMinutes int    `json:"duration_minutes" validate:"gte=0,lte=1440"`
	PriceCents      *int64 `json:"price_cents" validate:"omitempty,gte=0"`
	RoomID          int64  `json:"room_id" validate:"required,min=1"`
	ServiceID       int64  `json:"service_id" validate:"required,min=1"`
	GuestID         int64  `json:"guest_id" validate:"required,min=1"`
	TherapistID     *int64 `json:"therapist_id" validate:"omitempty,min=1"`
	Confirmed       bool   `json:"confirmed"`
	Cancelled       bool   `json:"cancelled"`
	Comment         string `json:"comment" validate:"max=2000"`
}

// BookingResponse for API response
type BookingResponse struct {
	ID              int64  `json:"id"`
	Day             string `json:"day"`
	TimeOfDay       int    `json:"time_of_day"`
	DurationMinutes int    `json:"duration_minutes"`
	PriceCents      int64  `json:"price_cents"`
	RoomID          int64  `json:"room_id"`
	RoomName        string `json:"room_name"`
	ServiceID       int64  `json:"service_id"`
	ServiceName     string `json:"service_name"`
	GuestID         int64  `json:"guest_id"`
	GuestName       string `json:"guest_name"`
	TherapistID     *int64 `json:"therapist_id,omitempty"`
	TherapistName   string `json:"therapist_name,omitempty"`
	Confirmed       bool   `json:"confirmed"`
	Cancelled       bool   `json:"cancelled"`
	Comment         string `json:"comment,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// ToResponse converts entity to response
func (b *Booking) ToResponse() *BookingResponse {
	resp := &BookingResponse{
		ID:              b.ID,
		Day:             b.Day.Format("2006-01-02"),
		TimeOfDay:       b.TimeOfDay,
		DurationMinutes: b.DurationMinutes,
		PriceCents:      b.PriceCents,
		RoomID:          b.RoomID,
		RoomName:        b.RoomName,
		ServiceID:       b.ServiceID,
		ServiceName:     b.ServiceName,
		GuestID:         b.GuestID,
		GuestName:       b.GuestName,
		Confirmed:       b.Confirmed,
		Cancelled:       b.Cancelled,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
	if b.TherapistID.Valid {
		id := b.TherapistID.Int64
		resp.TherapistID = &id
	}
	if b.TherapistName.Valid {
		resp.TherapistName = b.TherapistName.String
	}
	if b.Comment.Valid {
		resp.Comment = b.Comment.String
	}
	return resp
}
