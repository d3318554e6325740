// Package docstore is a thin, soft-delete aware access layer over a document
// collection.
//
// A Collection is bound to one collection name and one record shape T. Reads
// only ever see records whose is_active field is true; SoftDelete flips that
// flag and nothing else, so a deleted record stays in the store but becomes
// indistinguishable from a missing one through GetActiveByID and ListActive.
//
// Two backends implement Collection: MongoCollection (the production store)
// and MemoryCollection (an in-process document store used for local runs and
// tests). Both apply the same filter and merge rules.
package docstore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field names the access layer itself reads or writes.
const (
	IDField     = "_id"
	ActiveField = "is_active"
)

// ErrNoDocument is wrapped in a StoreError when a write targets an id that
// does not exist in the collection.
var ErrNoDocument = errors.New("no document found with the given id")

// Fields is a partial set of BSON field values merged into a record.
type Fields map[string]any

// Identifiable is implemented by pointer-to-record types so the store can
// hand back the identifier it assigned on insert.
type Identifiable interface {
	SetID(id primitive.ObjectID)
}

// Collection is the set of operations exposed for one collection.
//
// GetActiveByID returns (nil, nil) when the record is missing, the id is
// malformed, or the record has been soft-deleted. UpdatePartial and
// SoftDelete do not check is_active; callers check existence first.
type Collection[T any] interface {
	Name() string
	ListActive(ctx context.Context) ([]T, error)
	GetActiveByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, data T) (T, error)
	UpdatePartial(ctx context.Context, id string, fields Fields) error
	SoftDelete(ctx context.Context, id string) error
}

// StoreError is returned for every failure of the access layer. Error
// returns the underlying message unchanged so it can be shown to clients.
type StoreError struct {
	Op         string
	Collection string
	ID         string
	Err        error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return "store error"
	}
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsNoDocument reports whether err comes from a write against a missing id.
func IsNoDocument(err error) bool {
	return errors.Is(err, ErrNoDocument)
}

func storeErr(op, coll, id string, err error) error {
	return &StoreError{Op: op, Collection: coll, ID: id, Err: err}
}

// writableFields drops the keys a partial update must never touch.
func writableFields(fields Fields) Fields {
	out := make(Fields, len(fields))
	for k, v := range fields {
		switch k {
		case IDField, "id", ActiveField:
			continue
		}
		out[k] = v
	}
	return out
}
