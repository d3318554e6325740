// internal/app/bootstrap/connect.go
package bootstrap

import (
	"context"
	"fmt"

	poststore "github.com/dalemusser/posthub/internal/app/store/posts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// ConnectDB opens the post store. For the Mongo backend it dials the
// server through WAFFLE's pooled connect, which pings before returning,
// and binds the posts collection.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if !appCfg.usesMongo() {
		posts, err := poststore.Open(appCfg.StoreBackend, nil, appCfg.PostsCollection)
		if err != nil {
			return DBDeps{}, err
		}
		logger.Info("post store ready", zap.String("backend", appCfg.StoreBackend))
		return DBDeps{Posts: posts}, nil
	}

	pool := poolConfig(coreCfg, appCfg)
	client, err := wafflemongo.ConnectWithPool(ctx, appCfg.MongoURI, appCfg.MongoDatabase, pool)
	if err != nil {
		logger.Error("MongoDB connect failed",
			zap.Duration("connect_timeout", pool.ConnectTimeout),
			zap.Error(err))
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	db := client.Database(appCfg.MongoDatabase)
	posts, err := poststore.Open(poststore.BackendMongo, db, appCfg.PostsCollection)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, err
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.String("collection", posts.Name()),
		zap.Uint64("max_pool_size", pool.MaxPoolSize),
		zap.Uint64("min_pool_size", pool.MinPoolSize))

	return DBDeps{
		PostHubMongoClient:   client,
		PostHubMongoDatabase: db,
		Posts:                posts,
	}, nil
}

// poolConfig starts from WAFFLE's defaults and applies the configured pool
// sizes and the core db_connect_timeout.
func poolConfig(coreCfg *config.CoreConfig, appCfg AppConfig) wafflemongo.PoolConfig {
	pool := wafflemongo.DefaultPoolConfig()
	if appCfg.MongoMaxPoolSize > 0 {
		pool.MaxPoolSize = appCfg.MongoMaxPoolSize
	}
	if appCfg.MongoMinPoolSize > 0 {
		pool.MinPoolSize = appCfg.MongoMinPoolSize
	}
	if coreCfg != nil && coreCfg.DBConnectTimeout > 0 {
		pool.ConnectTimeout = coreCfg.DBConnectTimeout
		if pool.ServerSelectionTimeout > coreCfg.DBConnectTimeout {
			pool.ServerSelectionTimeout = coreCfg.DBConnectTimeout
		}
	}
	return pool
}
