// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// AppConfig carries what is specific to PostHub: where posts are stored
// and how long store calls may take.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Upper bound on pooled connections
	MongoMinPoolSize uint64 // Connections kept open when idle

	// Post storage
	PostsCollection string // Collection holding post documents
	StoreBackend    string // "mongo" or "memory"

	// Store call deadlines
	TimeoutPing   time.Duration // Health check pings
	TimeoutShort  time.Duration // Single-document reads and writes
	TimeoutMedium time.Duration // Listing

	// Expose Prometheus metrics at /metrics
	MetricsEnabled bool
}

// usesMongo reports whether the configured backend needs a Mongo connection.
func (c AppConfig) usesMongo() bool {
	return c.StoreBackend == "" || c.StoreBackend == "mongo"
}
