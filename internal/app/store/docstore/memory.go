package docstore

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryCollection is an in-process document store. Records are kept as
// BSON documents so field filters and partial merges follow the same rules
// as the Mongo backend, and callers never share memory with stored data.
type MemoryCollection[T any, P interface {
	*T
	Identifiable
}] struct {
	name string

	mu    sync.RWMutex
	docs  map[primitive.ObjectID]bson.M
	order []primitive.ObjectID
}

// NewMemory returns an empty in-memory collection.
func NewMemory[T any, P interface {
	*T
	Identifiable
}](name string) *MemoryCollection[T, P] {
	return &MemoryCollection[T, P]{
		name: name,
		docs: make(map[primitive.ObjectID]bson.M),
	}
}

func (s *MemoryCollection[T, P]) Name() string { return s.name }

// Ping always succeeds.
func (s *MemoryCollection[T, P]) Ping(context.Context) error { return nil }

func (s *MemoryCollection[T, P]) ListActive(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr("list", s.name, "", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, oid := range s.order {
		doc := s.docs[oid]
		if !isActive(doc) {
			continue
		}
		rec, err := s.decode(oid, doc)
		if err != nil {
			return nil, storeErr("list", s.name, "", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *MemoryCollection[T, P]) GetActiveByID(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr("get", s.name, id, err)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[oid]
	if !ok || !isActive(doc) {
		return nil, nil
	}
	rec, err := s.decode(oid, doc)
	if err != nil {
		return nil, storeErr("get", s.name, id, err)
	}
	return &rec, nil
}

func (s *MemoryCollection[T, P]) Create(ctx context.Context, data T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, storeErr("create", s.name, "", err)
	}

	doc, err := toDocument(data)
	if err != nil {
		return zero, storeErr("create", s.name, "", err)
	}
	oid := primitive.NewObjectID()
	doc[IDField] = oid

	s.mu.Lock()
	s.docs[oid] = doc
	s.order = append(s.order, oid)
	s.mu.Unlock()

	P(&data).SetID(oid)
	return data, nil
}

func (s *MemoryCollection[T, P]) UpdatePartial(ctx context.Context, id string, fields Fields) error {
	if err := ctx.Err(); err != nil {
		return storeErr("update", s.name, id, err)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storeErr("update", s.name, id, ErrNoDocument)
	}

	set, err := toDocument(writableFields(fields))
	if err != nil {
		return storeErr("update", s.name, id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[oid]
	if !ok {
		return storeErr("update", s.name, id, ErrNoDocument)
	}
	for k, v := range set {
		doc[k] = v
	}
	return nil
}

func (s *MemoryCollection[T, P]) SoftDelete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return storeErr("soft_delete", s.name, id, err)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storeErr("soft_delete", s.name, id, ErrNoDocument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[oid]
	if !ok {
		return storeErr("soft_delete", s.name, id, ErrNoDocument)
	}
	doc[ActiveField] = false
	return nil
}

// Raw returns a copy of the stored document regardless of is_active.
// It exists for tests that need to look past the soft-delete filter.
func (s *MemoryCollection[T, P]) Raw(id string) (bson.M, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[oid]
	if !ok {
		return nil, false
	}
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out, true
}

func (s *MemoryCollection[T, P]) decode(oid primitive.ObjectID, doc bson.M) (T, error) {
	var rec T
	raw, err := bson.Marshal(doc)
	if err != nil {
		return rec, err
	}
	if err := bson.Unmarshal(raw, &rec); err != nil {
		return rec, err
	}
	P(&rec).SetID(oid)
	return rec, nil
}

func isActive(doc bson.M) bool {
	v, _ := doc[ActiveField].(bool)
	return v
}

// toDocument round-trips v through BSON so stored values have the same
// types the Mongo driver would read back.
func toDocument(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
