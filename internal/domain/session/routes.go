package session

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns session router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Post("/{id}/navigate", h.Navigate)
	r.Post("/{id}/mark", h.Mark)
	r.Post("/{id}/unmark", h.Unmark)
	r.Post("/{id}/toggle", h.Toggle)
	r.Post("/{id}/range", h.MarkRange)
	r.Post("/{id}/clear", h.Clear)

	return r
}
