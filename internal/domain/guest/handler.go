package guest

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/serenita/spa-api/internal/pkg/response"
	"github.com/serenita/spa-api/internal/pkg/validator"
)

// Handler handles guest HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates a new guest handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create handles POST /guests
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

	g := &Guest{
		Name:  req.Name,
		Phone: nullString(req.Phone),
		Email: nullString(req.Email),
		Notes: nullString(req.Notes),
	}
	if err := h.repo.Create(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("Failed to create guest")
		response.InternalError(w)
		return
	}

	response.Created(w, g.ToResponse())
}

// Get handles GET /guests/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid guest ID")
		return
	}

	g, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if g == nil {
		response.NotFound(w, "Guest not found")
		return
	}

	response.OK(w, g.ToResponse())
}

// List handles GET /guests?page=&limit=&q=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	search := r.URL.Query().Get("q")

	guests, total, err := h.repo.List(r.Context(), search, limit, (page-1)*limit)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*GuestResponse, 0, len(guests))
	for i := range guests {
		items = append(items, guests[i].ToResponse())
	}

	pages := (total + limit - 1) / limit
	response.WithMeta(w, items, response.Meta{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	})
}

// Update handles PUT /guests/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid guest ID")
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

	g := &Guest{
		ID:    id,
		Name:  req.Name,
		Phone: nullString(req.Phone),
		Email: nullString(req.Email),
		Notes: nullString(req.Notes),
	}
	if err := h.repo.Update(r.Context(), g); err != nil {
		if errors.Is(err, ErrGuestNotFound) {
			response.NotFound(w, "Guest not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, g.ToResponse())
}

// Delete handles DELETE /guests/{id} (soft delete)
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid guest ID")
		return
	}

	if err := h.repo.SoftDelete(r.Context(), id); err != nil {
		if errors.Is(err, ErrGuestNotFound) {
			response.NotFound(w, "Guest not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
