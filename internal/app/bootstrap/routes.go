// internal/app/bootstrap/routes.go
package bootstrap

import (
	"errors"
	"net/http"

	healthfeature "github.com/dalemusser/posthub/internal/app/features/health"
	postsfeature "github.com/dalemusser/posthub/internal/app/features/posts"
	"github.com/dalemusser/posthub/internal/app/system/metrics"
	"github.com/dalemusser/waffle/config"
	wafflemetrics "github.com/dalemusser/waffle/metrics"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/requestid"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, CORS, body limits, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the post store and, for Mongo, its client
//   - logger: the fully configured zap.Logger for this app
//
// PostHub tags each request with an id, applies the CORS policy and body
// size limit from core config, then mounts the health check, the post API,
// and optionally the Prometheus endpoint.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	if deps.Posts == nil {
		return nil, errors.New("post store not initialized")
	}

	var collector *metrics.Collector
	if appCfg.MetricsEnabled {
		wafflemetrics.RegisterDefault(logger)
		collector = metrics.New("posthub")
	}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(requestIDMiddleware())
	r.Use(middleware.CORSFromConfig(coreCfg))
	if coreCfg != nil {
		r.Use(middleware.LimitBodySize(coreCfg.MaxRequestBodyBytes))
	}
	if collector != nil {
		r.Use(wafflemetrics.HTTPMetrics)
	}

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Posts, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Post API
	postsHandler := postsfeature.NewHandler(deps.Posts, collector, logger)
	r.Mount("/posts", postsfeature.Routes(postsHandler))

	if collector != nil {
		r.Method(http.MethodGet, "/metrics", collector.Handler())
	}

	return r, nil
}

// requestIDMiddleware reuses a client-supplied X-Request-ID of up to 128
// bytes and otherwise mints a UUID.
func requestIDMiddleware() func(http.Handler) http.Handler {
	cfg := requestid.DefaultConfig()
	cfg.Generator = uuid.NewString
	return requestid.Middleware(cfg)
}
