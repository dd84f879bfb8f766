package bookmark

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns bookmark router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Delete("/{id}", h.Delete)

	return r
}
