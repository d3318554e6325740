// internal/app/features/posts/handler.go
package posts

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dalemusser/posthub/internal/app/store/docstore"
	"github.com/dalemusser/posthub/internal/app/system/metrics"
	"github.com/dalemusser/posthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/requestid"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Response texts shared by several routes.
const (
	msgNotFound = "Post not found"
	msgDeleted  = "Post deleted successfully"
)

// Operation names used as metric labels.
const (
	opList   = "list"
	opGet    = "get"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// Handler owns all post handlers.
type Handler struct {
	Store   docstore.Collection[models.Post]
	Metrics *metrics.Collector
	Log     *zap.Logger

	now func() time.Time
}

// NewHandler constructs a posts Handler. m may be nil to disable metrics.
func NewHandler(store docstore.Collection[models.Post], m *metrics.Collector, logger *zap.Logger) *Handler {
	return &Handler{
		Store:   store,
		Metrics: m,
		Log:     logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (h *Handler) logger(r *http.Request) *zap.Logger {
	return requestid.Logger(r.Context(), h.Log)
}

// wrap records the outcome of one operation and turns a panic into the same
// 500 response an ordinary store failure gets.
func (h *Handler) wrap(op string, fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			h.Metrics.Observe(op, ww.Status(), time.Since(start))
		}()
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			msg := fmt.Sprint(rec)
			h.logger(r).Error("unhandled failure in post handler",
				zap.String("op", op),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("error", msg),
				zap.Stack("stack"))
			if ww.Status() == 0 {
				writeText(ww, http.StatusInternalServerError, msg)
			}
		}()
		fn(ww, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeText sends msg verbatim; error bodies carry the raw failure message.
func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, msg)
}
