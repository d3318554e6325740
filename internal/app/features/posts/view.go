// internal/app/features/posts/view.go
package posts

import (
	"context"
	"net/http"

	"github.com/dalemusser/posthub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Show handles GET /posts/{id}. Soft-deleted posts are reported as missing.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	log := h.logger(r).With(zap.String("post_id", id))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	post, err := h.Store.GetActiveByID(ctx, id)
	if err != nil {
		log.Error("failed to fetch post", zap.Error(err))
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}
	if post == nil {
		log.Warn("post not found")
		writeText(w, http.StatusNotFound, msgNotFound)
		return
	}

	log.Info("fetched post")
	writeJSON(w, http.StatusOK, post)
}
