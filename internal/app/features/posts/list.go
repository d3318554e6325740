// internal/app/features/posts/list.go
package posts

import (
	"context"
	"net/http"

	"github.com/dalemusser/posthub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// List handles GET /posts and returns every active post.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	posts, err := h.Store.ListActive(ctx)
	if err != nil {
		h.logger(r).Error("failed to fetch posts", zap.Error(err))
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger(r).Info("fetched posts", zap.Int("count", len(posts)))
	writeJSON(w, http.StatusOK, posts)
}
