package booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/serenita/spa-api/internal/pkg/response"
	"github.com/serenita/spa-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new booking handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /bookings
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	b, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDay):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrServiceNotFound):
			response.NotFound(w, err.Error())
		default:
			log.Error().Err(err).Msg("Failed to create booking")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, b.ToResponse())
}

// Get handles GET /bookings/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if b == nil {
		response.NotFound(w, "Booking not found")
		return
	}

	response.OK(w, b.ToResponse())
}

// List handles GET /bookings?from=&to=&room_id=&therapist_id=&service_id=
// Both dates default to today, giving the single-day list the UI opens with.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := FindQuery{}

	today := time.Now()
	q.From = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	q.To = q.From

	if v := r.URL.Query().Get("from"); v != "" {
		from, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		q.From = from
	}
	if v := r.URL.Query().Get("to"); v != "" {
		to, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "Invalid to date, expected YYYY-MM-DD")
			return
		}
		q.To = to
	}

	var parseErr error
	q.RoomID, parseErr = optionalID(r, "room_id")
	if parseErr == nil {
		q.TherapistID, parseErr = optionalID(r, "therapist_id")
	}
	if parseErr == nil {
		q.ServiceID, parseErr = optionalID(r, "service_id")
	}
	if parseErr != nil {
		response.BadRequest(w, parseErr.Error())
		return
	}

	bookings, err := h.service.Find(r.Context(), q)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, b.ToResponse())
	}
	response.OK(w, items)
}

// Update handles PUT /bookings/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	b, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDay):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrBookingNotFound):
			response.NotFound(w, "Booking not found")
		case errors.Is(err, ErrServiceNotFound):
			response.NotFound(w, err.Error())
		default:
			log.Error().Err(err).Msg("Failed to update booking")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, b.ToResponse())
}

// Confirm handles POST /bookings/{id}/confirm
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, h.service.Confirm)
}

// Cancel handles POST /bookings/{id}/cancel
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, h.service.Cancel)
}

func (h *Handler) setFlag(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int64) error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	if err := op(r.Context(), id); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.NotFound(w, "Booking not found")
			return
		}
		response.InternalError(w)
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil || b == nil {
		response.InternalError(w)
		return
	}
	response.OK(w, b.ToResponse())
}

// Delete handles DELETE /bookings/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.NotFound(w, "Booking not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}

func optionalID(r *http.Request, name string) (*int64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return nil, errors.New("Invalid " + name)
	}
	return &id, nil
}
