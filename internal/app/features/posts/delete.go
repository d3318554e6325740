// internal/app/features/posts/delete.go
package posts

import (
	"context"
	"net/http"

	"github.com/dalemusser/posthub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Delete handles DELETE /posts/{id}. The post is soft-deleted: it stays in
// the store but every read path treats it as missing from now on.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	log := h.logger(r).With(zap.String("post_id", id))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	post, err := h.Store.GetActiveByID(ctx, id)
	if err != nil {
		log.Error("failed to delete post", zap.Error(err))
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}
	if post == nil {
		log.Warn("post not found for deletion")
		writeText(w, http.StatusNotFound, msgNotFound)
		return
	}

	if err := h.Store.SoftDelete(ctx, id); err != nil {
		log.Error("failed to delete post", zap.Error(err))
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info("deleted post")
	writeText(w, http.StatusOK, msgDeleted)
}
