package schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/serenita/spa-api/internal/pkg/response"
)

// Handler handles schedule HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new schedule handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Overview handles GET /schedule/overview
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		writeParamError(w, err)
		return
	}

	result, err := h.service.Overview(r.Context(), p)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.OK(w, result)
}

// Rooms handles GET /schedule/rooms
func (h *Handler) Rooms(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		writeParamError(w, err)
		return
	}

	result, err := h.service.Rooms(r.Context(), p)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.OK(w, result)
}

// Therapists handles GET /schedule/therapists
func (h *Handler) Therapists(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		writeParamError(w, err)
		return
	}

	result, err := h.service.Therapists(r.Context(), p)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.OK(w, result)
}

// Calendar handles GET /schedule/calendar
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		writeParamError(w, err)
		return
	}

	result, err := h.service.Calendar(r.Context(), p)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.OK(w, result)
}

// Grid handles GET /schedule/grid?date=&room_id=
func (h *Handler) Grid(w http.ResponseWriter, r *http.Request) {
	var date time.Time
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	roomID, err := optionalID(r, "room_id")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result, err := h.service.RoomGrid(r.Context(), date, roomID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.OK(w, result)
}

// parseParams reads the shared view parameters from the query string
func parseParams(r *http.Request) (Params, error) {
	var p Params

	if v := r.URL.Query().Get("date"); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			return Params{}, errInvalidDate
		}
		p.Date = date
	}

	mode, err := ParseViewMode(r.URL.Query().Get("view_mode"))
	if err != nil {
		return Params{}, err
	}
	p.Mode = mode

	if p.RoomID, err = optionalID(r, "room_id"); err != nil {
		return Params{}, err
	}
	if p.TherapistID, err = optionalID(r, "therapist_id"); err != nil {
		return Params{}, err
	}
	if p.ServiceID, err = optionalID(r, "service_id"); err != nil {
		return Params{}, err
	}
	return p, nil
}

var errInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

func optionalID(r *http.Request, name string) (*int64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return nil, errors.New("invalid " + name)
	}
	return &id, nil
}

func writeParamError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidViewMode) {
		response.Error(w, http.StatusBadRequest, "INVALID_VIEW_MODE", err.Error())
		return
	}
	response.BadRequest(w, err.Error())
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidViewMode):
		response.Error(w, http.StatusBadRequest, "INVALID_VIEW_MODE", err.Error())
	case errors.Is(err, ErrRepositoryUnavailable):
		log.Error().Err(err).Msg("Booking repository unavailable")
		response.ServiceUnavailable(w, "REPOSITORY_UNAVAILABLE", "Booking repository unavailable")
	default:
		log.Error().Err(err).Msg("Schedule view failed")
		response.InternalError(w)
	}
}
