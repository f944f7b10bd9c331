package room

import "time"

// Room represents a treatment room
type Room struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Active    bool      `db:"active"`
	Deleted   bool      `db:"deleted"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// RoomResponse for API response
type RoomResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// ToResponse converts entity to response
func (r *Room) ToResponse() *RoomResponse {
	return &RoomResponse{
		ID:     r.ID,
		Name:   r.Name,
		Active: r.Active,
	}
}

// CreateRequest for creating a room
type CreateRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Active *bool  `json:"active"`
}

// UpdateRequest for updating a room
type UpdateRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Active bool   `json:"active"`
}
