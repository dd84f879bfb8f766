package review

import (
	"github.com/go-chi/chi/v5"
)

// Register attaches review endpoints to the API router. The paths are
// flat by contract: /api/move, not /api/review/move.
func (h *Handler) Register(r chi.Router) {
	r.Post("/move", h.Move)
	r.Post("/restore", h.Restore)
	r.Post("/delete", h.Delete)
	r.Post("/delete-jpgs", h.DeleteJPGs)
}
