package media

import (
	"github.com/go-chi/chi/v5"
)

// Register attaches media endpoints to the API router
func (h *Handler) Register(r chi.Router) {
	r.Get("/thumbnail", h.Thumbnail)
	r.Get("/image", h.Image)
	r.Get("/video", h.Video)
	r.Get("/exif", h.Exif)
}
