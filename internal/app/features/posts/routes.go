// internal/app/features/posts/routes.go
package posts

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the post API, mounted under /posts.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.wrap(opList, h.List))
	r.Post("/", h.wrap(opCreate, h.Create))
	r.Get("/{id}", h.wrap(opGet, h.Show))
	r.Put("/{id}", h.wrap(opUpdate, h.Update))
	r.Delete("/{id}", h.wrap(opDelete, h.Delete))
	return r
}
