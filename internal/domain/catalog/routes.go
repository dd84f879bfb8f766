package catalog

import (
	"github.com/go-chi/chi/v5"
)

// Register attaches catalog endpoints to the API router
func (h *Handler) Register(r chi.Router) {
	r.Get("/browse", h.Browse)
	r.Get("/scan", h.Scan)
	r.Get("/check-permissions", h.CheckPermissions)
}
