package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a single blog-style post. IsActive is the soft-delete flag:
// inactive posts stay in the collection but are hidden from every read.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	IsActive  bool               `bson:"is_active" json:"isActive"`
}

// SetID records the store-assigned identifier.
func (p *Post) SetID(id primitive.ObjectID) {
	p.ID = id
}
