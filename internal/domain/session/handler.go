package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sgphoto/photoreview-api/internal/pkg/response"
	"github.com/sgphoto/photoreview-api/internal/pkg/validator"
)

// Handler handles session HTTP requests
type Handler struct {
	manager *Manager
}

// NewHandler creates session handler
func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

// Create handles POST /api/session
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	s := h.manager.Create()
	response.JSON(w, http.StatusCreated, h.state(s))
}

// Get handles GET /api/session/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.manager.Get(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, "Session not found")
		return
	}
	response.OK(w, h.state(s))
}

// Navigate handles POST /api/session/{id}/navigate
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	s, err := h.manager.Navigate(chi.URLParam(r, "id"), req.Folder, req.PhotoCount)
	if err != nil {
		response.NotFound(w, "Session not found")
		return
	}
	response.OK(w, h.state(s))
}

// Mark handles POST /api/session/{id}/mark
func (h *Handler) Mark(w http.ResponseWriter, r *http.Request) {
	h.withIndex(w, r, func(s *Session, index int) error {
		return s.Mark(index)
	})
}

// Unmark handles POST /api/session/{id}/unmark
func (h *Handler) Unmark(w http.ResponseWriter, r *http.Request) {
	h.withIndex(w, r, func(s *Session, index int) error {
		return s.Unmark(index)
	})
}

// Toggle handles POST /api/session/{id}/toggle
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.withIndex(w, r, func(s *Session, index int) error {
		_, err := s.Toggle(index)
		return err
	})
}

// MarkRange handles POST /api/session/{id}/range
func (h *Handler) MarkRange(w http.ResponseWriter, r *http.Request) {
	var req RangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	s, err := h.manager.Get(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, "Session not found")
		return
	}
	if err := s.MarkRange(req.From, req.To); err != nil {
		response.BadRequest(w, "Photo index out of range")
		return
	}
	response.OK(w, h.state(s))
}

// Clear handles POST /api/session/{id}/clear
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	s, err := h.manager.Get(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, "Session not found")
		return
	}
	s.Clear()
	response.OK(w, h.state(s))
}

func (h *Handler) withIndex(w http.ResponseWriter, r *http.Request, fn func(*Session, int) error) {
	var req MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	s, err := h.manager.Get(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, "Session not found")
		return
	}
	if err := fn(s, req.Index); err != nil {
		if errors.Is(err, ErrIndexOutOfRange) {
			response.BadRequest(w, "Photo index out of range")
			return
		}
		response.InternalError(w)
		return
	}
	response.OK(w, h.state(s))
}

func (h *Handler) state(s *Session) StateResponse {
	snap := s.Snapshot()
	return StateResponse{
		ID:             s.ID,
		Folder:         snap.Folder,
		Role:           string(snap.Role),
		PhotoCount:     snap.PhotoCount,
		Marked:         snap.Marked,
		AllowedActions: h.manager.AllowedActions(snap.Role),
	}
}
