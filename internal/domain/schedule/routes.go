package schedule

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns schedule router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/overview", h.Overview)
	r.Get("/rooms", h.Rooms)
	r.Get("/therapists", h.Therapists)
	r.Get("/calendar", h.Calendar)
	r.Get("/grid", h.Grid)

	return r
}
