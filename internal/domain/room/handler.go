package room

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

// Handler handles room HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates a new room handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create handles POST /rooms
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

	room := &Room{Name: req.Name, Active: active}
	if err := h.repo.Create(r.Context(), room); err != nil {
		log.Error().Err(err).Msg("Failed to create room")
		response.InternalError(w)
		return
	}

	response.Created(w, room.ToResponse())
}

// Get handles GET /rooms/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid room ID")
		return
	}

	room, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if room == nil {
		response.NotFound(w, "Room not found")
		return
	}

	response.OK(w, room.ToResponse())
}

// List handles GET /rooms?active=true
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var rooms []*Room
	var err error

	if r.URL.Query().Get("active") == "true" {
		rooms, err = h.repo.ListActive(r.Context())
	} else {
		rooms, err = h.repo.List(r.Context())
	}
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		items = append(items, room.ToResponse())
	}
	response.OK(w, items)
}

// Update handles PUT /rooms/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid room ID")
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

	room := &Room{ID: id, Name: req.Name, Active: req.Active}
	if err := h.repo.Update(r.Context(), room); err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			response.NotFound(w, "Room not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, room.ToResponse())
}

// Delete handles DELETE /rooms/{id} (soft delete)
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid room ID")
		return
	}

	if err := h.repo.SoftDelete(r.Context(), id); err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			response.NotFound(w, "Room not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}
