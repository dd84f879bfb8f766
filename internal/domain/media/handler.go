package media

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/sgphoto/photoreview-api/internal/pkg/pathguard"
	"github.com/sgphoto/photoreview-api/internal/pkg/response"
)

// Handler serves thumbnail, image, video and EXIF HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates media handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Thumbnail handles GET /api/thumbnail?path=P
func (h *Handler) Thumbnail(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		response.BadRequest(w, "Missing path parameter")
		return
	}

	thumb, err := h.service.Thumbnail(path)
	if err != nil {
		writeMediaError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFile(w, r, thumb)
}

// Image handles GET /api/image?path=P
func (h *Handler) Image(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		response.BadRequest(w, "Missing path parameter")
		return
	}

	resolved, err := h.service.Image(path)
	if err != nil {
		writeMediaError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	http.ServeFile(w, r, resolved)
}

// Video handles GET /api/video?path=P. http.ServeFile honors Range
// headers, which the browser video element relies on for seeking.
func (h *Handler) Video(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		response.BadRequest(w, "Missing path parameter")
		return
	}

	resolved, contentType, err := h.service.Video(path)
	if err != nil {
		writeMediaError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	http.ServeFile(w, r, resolved)
}

// Exif handles GET /api/exif?path=P
func (h *Handler) Exif(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		response.BadRequest(w, "Missing path parameter")
		return
	}

	info, err := h.service.Exif(path)
	if err != nil {
		writeMediaError(w, err)
		return
	}

	response.OK(w, ExifResponse{
		CameraMake:  info.CameraMake,
		CameraModel: info.CameraModel,
		TakenAt:     info.TakenAt,
		Width:       info.Width,
		Height:      info.Height,
	})
}

func writeMediaError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pathguard.ErrOutOfBounds):
		response.Forbidden(w, "Path not allowed")
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, "File not found")
	case errors.Is(err, ErrUnsupportedMedia):
		response.UnsupportedMedia(w, "No preview available for this file type")
	case errors.Is(err, ErrIsVideo):
		response.BadRequest(w, "Videos are served from the video endpoint")
	case errors.Is(err, ErrNotVideo):
		response.BadRequest(w, "Not a video file")
	case errors.Is(err, ErrNoExif):
		response.NotFound(w, "No EXIF data in this file")
	default:
		log.Error().Err(err).Msg("Media request failed")
		response.InternalError(w)
	}
}
