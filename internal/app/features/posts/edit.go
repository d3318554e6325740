// internal/app/features/posts/edit.go
package posts

import (
	"context"
	"net/http"

	"github.com/dalemusser/posthub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Update handles PUT /posts/{id}. Only the fields present in the body are
// merged, and the response echoes them back with the id.
//
// The active check and the write are separate store calls, so a concurrent
// delete between them can still let the update through.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	log := h.logger(r).With(zap.String("post_id", id))

	in, err := decodeInput(r)
	if err != nil {
		log.Error("failed to read post body", zap.Error(err))
		writeText(w, bodyStatus(err), err.Error())
		return
	}
	log = log.With(zap.Object("body", in))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	post, err := h.Store.GetActiveByID(ctx, id)
	if err != nil {
		log.Error("failed to update post", zap.Error(err))
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}
	if post == nil {
		log.Warn("post not found for update")
		writeText(w, http.StatusNotFound, msgNotFound)
		return
	}

	if err := h.Store.UpdatePartial(ctx, id, in.fields()); err != nil {
		log.Error("failed to update post", zap.Error(err))
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info("updated post")
	writeJSON(w, http.StatusOK, updateEcho{
		ID:      id,
		Title:   in.Title,
		Content: in.Content,
	})
}
