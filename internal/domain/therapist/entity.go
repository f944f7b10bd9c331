package therapist

import "time"

// Therapist represents a spa therapist
type Therapist struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Active    bool      `db:"active"`
	Deleted   bool      `db:"deleted"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// TherapistResponse for API response
type TherapistResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// ToResponse converts entity to response
func (t *Therapist) ToResponse() *TherapistResponse {
	return &TherapistResponse{
		ID:     t.ID,
		Name:   t.Name,
		Active: t.Active,
	}
}

// CreateRequest for creating a therapist
type CreateRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Active *bool  `json:"active"`
}

// UpdateRequest for updating a therapist
type UpdateRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Active bool   `json:"active"`
}
