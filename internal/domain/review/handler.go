package review

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/sgphoto/photoreview-api/internal/pkg/pathguard"
	"github.com/sgphoto/photoreview-api/internal/pkg/response"
	"github.com/sgphoto/photoreview-api/internal/pkg/validator"
)

// Handler handles move/restore/delete HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates review handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Move handles POST /api/move
func (h *Handler) Move(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := h.service.Move(r.Context(), req.Folder, toEntities(req.Files), req.DestinationName)
	if err != nil {
		writeReviewError(w, err)
		return
	}

	response.OK(w, MoveResponse{
		Success: true,
		Moved:   result.Moved,
		Errors:  result.Errors,
	})
}

// Restore handles POST /api/restore
func (h *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	var req RestoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := h.service.Restore(r.Context(), req.Folder, toEntities(req.Files))
	if err != nil {
		writeReviewError(w, err)
		return
	}

	response.OK(w, RestoreResponse{
		Success:       true,
		Restored:      result.Restored,
		FolderDeleted: result.FolderDeleted,
		Errors:        result.Errors,
	})
}

// Delete handles POST /api/delete. The review-folder check runs
// server-side regardless of what the client's UI offered.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := h.service.Delete(r.Context(), req.Folder, toEntities(req.Files))
	if err != nil {
		writeReviewError(w, err)
		return
	}

	response.OK(w, DeleteResponse{
		Success:       true,
		Deleted:       result.Deleted,
		FolderDeleted: result.FolderDeleted,
		Errors:        result.Errors,
	})
}

// DeleteJPGs handles POST /api/delete-jpgs
func (h *Handler) DeleteJPGs(w http.ResponseWriter, r *http.Request) {
	var req DeleteJPGsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := h.service.DeleteJPGsOnly(r.Context(), toEntities(req.Files))
	if err != nil {
		writeReviewError(w, err)
		return
	}

	response.OK(w, DeleteJPGsResponse{
		Success: true,
		Deleted: result.Deleted,
		Skipped: result.Skipped,
		Errors:  result.Errors,
	})
}

func writeReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pathguard.ErrOutOfBounds):
		response.Forbidden(w, "Path not allowed")
	case errors.Is(err, ErrNotReviewFolder):
		response.Forbidden(w, "Folder is not the review folder")
	case errors.Is(err, ErrDeleteDisabled):
		response.Forbidden(w, "Permanent deletion is disabled")
	default:
		log.Error().Err(err).Msg("Review request failed")
		response.InternalError(w)
	}
}
