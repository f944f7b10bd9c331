package guest

import (
	"database/sql"
	"time"
)

// Guest represents a spa guest
type Guest struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`
	Phone     sql.NullString `db:"phone"`
	Email     sql.NullString `db:"email"`
	Notes     sql.NullString `db:"notes"`
	Deleted   bool           `db:"deleted"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// GuestResponse for API response
type GuestResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts entity to response
func (g *Guest) ToResponse() *GuestResponse {
	resp := &GuestResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt.Format(time.RFC3339),
	}
	if g.Phone.Valid {
		resp.Phone = g.Phone.String
	}
	if g.Email.Valid {
		resp.Email = g.Email.String
	}
	if g.Notes.Valid {
		resp.Notes = g.Notes.String
	}
	return resp
}

// CreateRequest for creating a guest
type CreateRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Phone string `json:"phone" validate:"max=50"`
	Email string `json:"email" validate:"omitempty,email"`
	Notes string `json:"notes" validate:"max=2000"`
}

// UpdateRequest for updating a guest
type UpdateRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Phone string `json:"phone" validate:"max=50"`
	Email string `json:"email" validate:"omitempty,email"`
	Notes string `json:"notes" validate:"max=2000"`
}
