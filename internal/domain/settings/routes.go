package settings

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns configuration router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Post("/", h.Update)

	return r
}
