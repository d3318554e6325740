// internal/app/features/posts/create.go
package posts

import (
	"context"
	"net/http"

	"github.com/dalemusser/posthub/internal/app/system/timeouts"
	"github.com/dalemusser/posthub/internal/domain/models"
	"go.uber.org/zap"
)

// Create handles POST /posts. Title and content are stored as sent; the
// handler stamps CreatedAt and marks the post active.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := decodeInput(r)
	if err != nil {
		h.logger(r).Error("failed to read post body", zap.Error(err))
		writeText(w, bodyStatus(err), err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	post, err := h.Store.Create(ctx, models.Post{
		Title:     deref(in.Title),
		Content:   deref(in.Content),
		CreatedAt: h.now(),
		IsActive:  true,
	})
	if err != nil {
		h.logger(r).Error("failed to create post",
			zap.Object("body", in),
			zap.Error(err))
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger(r).Info("created post",
		zap.String("post_id", post.ID.Hex()),
		zap.String("title", post.Title))
	writeJSON(w, http.StatusCreated, post)
}
