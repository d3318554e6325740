package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoCollection implements Collection on top of a MongoDB collection.
type MongoCollection[T any, P interface {
	*T
	Identifiable
}] struct {
	c *mongo.Collection
}

// NewMongo binds a MongoCollection to the named collection in db.
func NewMongo[T any, P interface {
	*T
	Identifiable
}](db *mongo.Database, name string) *MongoCollection[T, P] {
	return &MongoCollection[T, P]{c: db.Collection(name)}
}

// Name returns the collection name.
func (s *MongoCollection[T, P]) Name() string {
	return s.c.Name()
}

// Ping checks that the primary is reachable.
func (s *MongoCollection[T, P]) Ping(ctx context.Context) error {
	return s.c.Database().Client().Ping(ctx, readpref.Primary())
}

// ListActive returns every active record in store order.
func (s *MongoCollection[T, P]) ListActive(ctx context.Context) ([]T, error) {
	cur, err := s.c.Find(ctx, bson.M{ActiveField: true})
	if err != nil {
		return nil, storeErr("list", s.c.Name(), "", err)
	}
	defer cur.Close(ctx)

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, storeErr("list", s.c.Name(), "", err)
	}
	return out, nil
}

// GetActiveByID returns the record with the given hex id if it is active.
func (s *MongoCollection[T, P]) GetActiveByID(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Not an id this store could have assigned.
		return nil, nil
	}

	var doc T
	err = s.c.FindOne(ctx, bson.M{IDField: oid, ActiveField: true}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("get", s.c.Name(), id, err)
	}
	return &doc, nil
}

// Create inserts data and returns it with the store-assigned id.
func (s *MongoCollection[T, P]) Create(ctx context.Context, data T) (T, error) {
	P(&data).SetID(primitive.NilObjectID)

	res, err := s.c.InsertOne(ctx, data)
	if err != nil {
		var zero T
		return zero, storeErr("create", s.c.Name(), "", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		var zero T
		return zero, storeErr("create", s.c.Name(), "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID))
	}
	P(&data).SetID(oid)
	return data, nil
}

// UpdatePartial merges fields into the record with the given id.
func (s *MongoCollection[T, P]) UpdatePartial(ctx context.Context, id string, fields Fields) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storeErr("update", s.c.Name(), id, ErrNoDocument)
	}

	set := writableFields(fields)
	if len(set) == 0 {
		// $set with an empty document is rejected by the server; only
		// confirm the record exists.
		n, err := s.c.CountDocuments(ctx, bson.M{IDField: oid})
		if err != nil {
			return storeErr("update", s.c.Name(), id, err)
		}
		if n == 0 {
			return storeErr("update", s.c.Name(), id, ErrNoDocument)
		}
		return nil
	}

	res, err := s.c.UpdateOne(ctx, bson.M{IDField: oid}, bson.M{"$set": bson.M(set)})
	if err != nil {
		return storeErr("update", s.c.Name(), id, err)
	}
	if res.MatchedCount == 0 {
		return storeErr("update", s.c.Name(), id, ErrNoDocument)
	}
	return nil
}

// SoftDelete marks the record inactive. Repeating it is not an error.
func (s *MongoCollection[T, P]) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storeErr("soft_delete", s.c.Name(), id, ErrNoDocument)
	}

	res, err := s.c.UpdateOne(ctx, bson.M{IDField: oid}, bson.M{"$set": bson.M{ActiveField: false}})
	if err != nil {
		return storeErr("soft_delete", s.c.Name(), id, err)
	}
	if res.MatchedCount == 0 {
		return storeErr("soft_delete", s.c.Name(), id, ErrNoDocument)
	}
	return nil
}
