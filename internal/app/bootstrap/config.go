// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	poststore "github.com/dalemusser/posthub/internal/app/store/posts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for PostHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, posts_collection, etc.
//   - Environment variables: POSTHUB_MONGO_URI, POSTHUB_STORE_BACKEND, etc.
//   - Command-line flags: --mongo_uri, --store_backend, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "posthub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Post storage
	{Name: "posts_collection", Default: poststore.DefaultCollection, Desc: "Collection that holds posts"},
	{Name: "store_backend", Default: poststore.BackendMongo, Desc: "Post store backend: 'mongo' or 'memory'"},

	// Store call deadlines
	{Name: "timeout_ping", Default: "2s", Desc: "Deadline for health check pings"},
	{Name: "timeout_short", Default: "5s", Desc: "Deadline for single-post reads and writes"},
	{Name: "timeout_medium", Default: "10s", Desc: "Deadline for listing posts"},

	{Name: "metrics_enabled", Default: true, Desc: "Serve Prometheus metrics at /metrics"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, POSTHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "POSTHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		PostsCollection: appValues.String("posts_collection"),
		StoreBackend:    appValues.String("store_backend"),

		TimeoutPing:   appValues.Duration("timeout_ping", 2*time.Second),
		TimeoutShort:  appValues.Duration("timeout_short", 5*time.Second),
		TimeoutMedium: appValues.Duration("timeout_medium", 10*time.Second),

		MetricsEnabled: appValues.Bool("metrics_enabled"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The store backend must be one PostHub knows, and when it is Mongo the URI
// is checked here so a typo fails startup before any connection attempt.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.StoreBackend {
	case "", poststore.BackendMongo, poststore.BackendMemory:
	default:
		return fmt.Errorf("unknown store_backend %q (want %q or %q)",
			appCfg.StoreBackend, poststore.BackendMongo, poststore.BackendMemory)
	}

	if appCfg.PostsCollection == "" {
		return fmt.Errorf("posts_collection must not be empty")
	}

	if !appCfg.usesMongo() {
		logger.Warn("using in-memory post store; posts are lost on restart")
		return nil
	}

	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database must not be empty")
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize {
		return fmt.Errorf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)",
			appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}

	return nil
}
