package catalog

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/sgphoto/photoreview-api/internal/pkg/pathguard"
	"github.com/sgphoto/photoreview-api/internal/pkg/response"
)

// Handler handles folder browsing and scanning HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates catalog handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Browse handles GET /api/browse
func (h *Handler) Browse(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")

	items, err := h.service.Browse(r.Context(), path)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	resp := BrowseResponse{Items: make([]BrowseItem, 0, len(items)), CurrentPath: path}
	for _, item := range items {
		resp.Items = append(resp.Items, BrowseItem{
			Name: item.Name,
			Path: item.Path,
			Type: "directory",
		})
	}

	response.OK(w, resp)
}

// Scan handles GET /api/scan
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		response.BadRequest(w, "Path required")
		return
	}

	records, err := h.service.Scan(r.Context(), path)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	photos := make([]*PhotoRecordResponse, len(records))
	for i := range records {
		photos[i] = PhotoRecordResponseFromEntity(&records[i])
	}

	response.OK(w, ScanResponse{Photos: photos, Count: len(photos)})
}

// CheckPermissions handles GET /api/check-permissions
func (h *Handler) CheckPermissions(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		response.BadRequest(w, "Path required")
		return
	}

	perms, err := h.service.CheckPermissions(path)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	response.OK(w, PermissionsResponse{
		Exists:   perms.Exists,
		Readable: perms.Readable,
		Writable: perms.Writable,
	})
}

func writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pathguard.ErrOutOfBounds):
		response.Forbidden(w, "Path not allowed")
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, "Path does not exist")
	case errors.Is(err, ErrNotDirectory):
		response.BadRequest(w, "Path is not a directory")
	case errors.Is(err, ErrPermissionDenied):
		response.Forbidden(w, "Permission denied")
	default:
		log.Error().Err(err).Msg("Catalog request failed")
		response.InternalError(w)
	}
}
