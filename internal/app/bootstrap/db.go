// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/posthub/internal/app/system/indexes"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnsureSchema creates the indexes the post store relies on.
// The memory backend has no schema.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.PostHubMongoDatabase == nil {
		return nil
	}
	return indexes.EnsureAll(ctx, deps.PostHubMongoDatabase, appCfg.PostsCollection, logger)
}
