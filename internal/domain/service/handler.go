package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/serenita/spa-api/internal/pkg/response"
	"github.com/serenita/spa-api/internal/pkg/validator"
)

// quickBookingLimit caps the quick-booking shortlist in the overview
const quickBookingLimit = 10

// Handler handles service HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates a new service handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create handles POST /services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	s := &Service{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
		QuickBooking:    req.QuickBooking,
		Active:          active,
	}
	if err := h.repo.Create(r.Context(), s); err != nil {
		log.Error().Err(err).Msg("Failed to create service")
		response.InternalError(w)
		return
	}

	response.Created(w, s.ToResponse())
}

// Get handles GET /services/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid service ID")
		return
	}

	s, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if s == nil {
		response.NotFound(w, "Service not found")
		return
	}

	response.OK(w, s.ToResponse())
}

// List handles GET /services?active=true
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var services []*Service
	var err error

	if r.URL.Query().Get("active") == "true" {
		services, err = h.repo.ListActive(r.Context())
	} else {
		services, err = h.repo.List(r.Context())
	}
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*ServiceResponse, 0, len(services))
	for _, s := range services {
		items = append(items, s.ToResponse())
	}
	response.OK(w, items)
}

// ListQuickBooking handles GET /services/quick-booking
func (h *Handler) ListQuickBooking(w http.ResponseWriter, r *http.Request) {
	services, err := h.repo.ListQuickBooking(r.Context(), quickBookingLimit)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*ServiceResponse, 0, len(services))
	for _, s := range services {
		items = append(items, s.ToResponse())
	}
	response.OK(w, items)
}

// Update handles PUT /services/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid service ID")
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	s := &Service{
		ID:              id,
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
		QuickBooking:    req.QuickBooking,
		Active:          req.Active,
	}
	if err := h.repo.Update(r.Context(), s); err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			response.NotFound(w, "Service not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, s.ToResponse())
}

// Delete handles DELETE /services/{id} (soft delete)
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid service ID")
		return
	}

	if err := h.repo.SoftDelete(r.Context(), id); err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			response.NotFound(w, "Service not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}
