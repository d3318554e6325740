// internal/app/store/posts/poststore.go
package poststore

import (
	"context"
	"fmt"

	"github.com/dalemusser/posthub/internal/app/store/docstore"
	"github.com/dalemusser/posthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// DefaultCollection is the collection posts live in unless configured otherwise.
const DefaultCollection = "posts"

// Supported storage backends.
const (
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

// Store is the post collection as seen by handlers.
type Store interface {
	docstore.Collection[models.Post]
	Ping(ctx context.Context) error
}

// New returns the Mongo-backed post store.
func New(db *mongo.Database, collection string) Store {
	if collection == "" {
		collection = DefaultCollection
	}
	return docstore.NewMongo[models.Post](db, collection)
}

// NewMemory returns an in-process post store.
func NewMemory(collection string) Store {
	if collection == "" {
		collection = DefaultCollection
	}
	return docstore.NewMemory[models.Post](collection)
}

// Open picks the backend by name. db may be nil for the memory backend.
func Open(backend string, db *mongo.Database, collection string) (Store, error) {
	switch backend {
	case "", BackendMongo:
		if db == nil {
			return nil, fmt.Errorf("poststore: mongo backend requires a database")
		}
		return New(db, collection), nil
	case BackendMemory:
		return NewMemory(collection), nil
	default:
		return nil, fmt.Errorf("poststore: unknown backend %q", backend)
	}
}
