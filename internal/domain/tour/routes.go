package tour

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the tour router mounted at /api/tours.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/book", h.Book)
	r.Get("/{id}", h.Get)

	return r
}
