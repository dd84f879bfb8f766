package bookmark

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/sgphoto/photoreview-api/internal/pkg/pathguard"
	"github.com/sgphoto/photoreview-api/internal/pkg/response"
	"github.com/sgphoto/photoreview-api/internal/pkg/validator"
)

// Handler handles bookmark HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates bookmark handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/bookmarks
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := h.service.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list bookmarks")
		response.InternalError(w)
		return
	}
	response.OK(w, ListResponse{Bookmarks: bookmarks, Count: len(bookmarks)})
}

// Create handles POST /api/bookmarks
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

	b, err := h.service.Create(r.Context(), req.Name, req.Path)
	if err != nil {
		switch {
		case errors.Is(err, pathguard.ErrOutOfBounds):
			response.Forbidden(w, "Path not allowed")
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "Folder does not exist")
		case errors.Is(err, ErrDuplicate):
			response.BadRequest(w, "Folder is already bookmarked")
		default:
			log.Error().Err(err).Msg("Failed to create bookmark")
			response.InternalError(w)
		}
		return
	}

	response.JSON(w, http.StatusCreated, b)
}

// Delete handles DELETE /api/bookmarks/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Bookmark not found")
			return
		}
		log.Error().Err(err).Msg("Failed to delete bookmark")
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]bool{"success": true})
}
