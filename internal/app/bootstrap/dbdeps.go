// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	poststore "github.com/dalemusser/posthub/internal/app/store/posts"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
// The Mongo fields are nil when the memory backend is configured.
type DBDeps struct {
	PostHubMongoClient   *mongo.Client
	PostHubMongoDatabase *mongo.Database

	Posts poststore.Store
}
