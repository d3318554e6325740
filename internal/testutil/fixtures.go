package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/posthub/internal/app/store/docstore"
	"github.com/dalemusser/posthub/internal/domain/models"
)

// Fixtures provides helper methods for creating test data in a post collection.
type Fixtures struct {
	coll docstore.Collection[models.Post]
	t    *testing.T
}

// NewFixtures creates a new Fixtures instance for the given collection.
func NewFixtures(t *testing.T, coll docstore.Collection[models.Post]) *Fixtures {
	t.Helper()
	return &Fixtures{coll: coll, t: t}
}

// CreatePost creates an active post and returns it with its assigned ID.
func (f *Fixtures) CreatePost(ctx context.Context, title, content string) models.Post {
	f.t.Helper()

	post, err := f.coll.Create(ctx, models.Post{
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		IsActive:  true,
	})
	if err != nil {
		f.t.Fatalf("failed to create test post: %v", err)
	}
	return post
}

// CreateDeletedPost creates a post and soft-deletes it.
func (f *Fixtures) CreateDeletedPost(ctx context.Context, title, content string) models.Post {
	f.t.Helper()

	post := f.CreatePost(ctx, title, content)
	if err := f.coll.SoftDelete(ctx, post.ID.Hex()); err != nil {
		f.t.Fatalf("failed to soft-delete test post: %v", err)
	}
	post.IsActive = false
	return post
}
