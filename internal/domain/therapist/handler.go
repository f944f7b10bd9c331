package therapist

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

// Handler handles therapist HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates a new therapist handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create handles POST /therapists
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

	t := &Therapist{Name: req.Name, Active: active}
	if err := h.repo.Create(r.Context(), t); err != nil {
		log.Error().Err(err).Msg("Failed to create therapist")
		response.InternalError(w)
		return
	}

	response.Created(w, t.ToResponse())
}

// Get handles GET /therapists/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid therapist ID")
		return
	}

	t, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if t == nil {
		response.NotFound(w, "Therapist not found")
		return
	}

	response.OK(w, t.ToResponse())
}

// List handles GET /therapists?active=true
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var therapists []*Therapist
	var err error

	if r.URL.Query().Get("active") == "true" {
		therapists, err = h.repo.ListActive(r.Context())
	} else {
		therapists, err = h.repo.List(r.Context())
	}
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*TherapistResponse, 0, len(therapists))
	for _, t := range therapists {
		items = append(items, t.ToResponse())
	}
	response.OK(w, items)
}

// Update handles PUT /therapists/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid therapist ID")
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

	t := &Therapist{ID: id, Name: req.Name, Active: req.Active}
	if err := h.repo.Update(r.Context(), t); err != nil {
		if errors.Is(err, ErrTherapistNotFound) {
			response.NotFound(w, "Therapist not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, t.ToResponse())
}

// Delete handles DELETE /therapists/{id} (soft delete)
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid therapist ID")
		return
	}

	if err := h.repo.SoftDelete(r.Context(), id); err != nil {
		if errors.Is(err, ErrTherapistNotFound) {
			response.NotFound(w, "Therapist not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}
