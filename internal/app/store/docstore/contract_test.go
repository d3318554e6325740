package docstore_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/posthub/internal/app/store/docstore"
	"github.com/dalemusser/posthub/internal/domain/models"
	"github.com/dalemusser/posthub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// harness is one backend under test. stored reads the is_active flag of the
// underlying document without going through the soft-delete filter.
type harness struct {
	coll   docstore.Collection[models.Post]
	stored func(t *testing.T, id string) (active, found bool)
}

func runContract(t *testing.T, newHarness func(t *testing.T) harness) {
	t.Run("CreateAssignsIDAndListsActive", func(t *testing.T) {
		h := newHarness(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()

		createdAt := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
		post, err := h.coll.Create(ctx, models.Post{
			Title:     "A",
			Content:   "B",
			CreatedAt: createdAt,
			IsActive:  true,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if post.ID == primitive.NilObjectID {
			t.Fatal("expected ID to be assigned")
		}
		if !post.CreatedAt.Equal(createdAt) {
			t.Errorf("CreatedAt: got %v, want caller value %v", post.CreatedAt, createdAt)
		}

		list, err := h.coll.ListActive(ctx)
		if err != nil {
			t.Fatalf("ListActive failed: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("ListActive: got %d posts, want 1", len(list))
		}
		if list[0].ID != post.ID || !list[0].IsActive || list[0].Title != "A" {
			t.Errorf("ListActive returned %+v", list[0])
		}
	})

	t.Run("CreateIgnoresCallerID", func(t *testing.T) {
		h := newHarness(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()

		callerID := primitive.NewObjectID()
		post, err := h.coll.Create(ctx, models.Post{ID: callerID, Title: "A", IsActive: true})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if post.ID == callerID {
			t.Error("expected store-assigned ID, got the caller's")
		}
	})

	t.Run("ListActiveEmpty", func(t *testing.T) {
		h := newHarness(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()

		list, err := h.coll.ListActive(ctx)
		if err != nil {
			t.Fatalf("ListActive failed: %v", err)
		}
		if list == nil {
			t.Error("expected empty non-nil slice")
		}
		if len(list) != 0 {
			t.Errorf("got %d posts, want 0", len(list))
		}
	})

	t.Run("GetActiveByID", func(t *testing.T) {
		h := newHarness(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()
		fx := testutil.NewFixtures(t, h.coll)

		post := fx.CreatePost(ctx, "Title", "Body")
		got, err := h.coll.GetActiveByID(ctx, post.ID.Hex())
		if err != nil {
			t.Fatalf("GetActiveByID failed: %v", err)
		}
		if got == nil {
			t.Fatal("expected post, got nil")
		}
		if got.ID != post.ID || got.Title != "Title" || got.Content != "Body" || !got.IsActive {
			t.Errorf("GetActiveByID returned %+v", *got)
		}
	})

	t.Run("GetActiveByIDMissingOrMalformed", func(t *testing.T) {
		h := newHarness(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()

		for _, id := range []string{primitive.NewObjectID().Hex(), "not-an-id", ""} {
			got, err := h.coll.GetActiveByID(ctx, id)
			if err != nil {
				t.Errorf("GetActiveByID(%q): unexpected error %v", id, err)
			}
			if got != nil {
				t.Errorf("GetActiveByID(%q): expected nil, got %+v", id, *got)
			}
		}
	})

	t.Run("SoftDeleteHidesButKeeps", func(t *testing.T) {
		h := newHarness(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()
		fx := testutil.NewFixtures(t, h.coll)

		keep := fx.CreatePost(ctx, "keep", "")
		gone := fx.CreatePost(ctx, "gone", "")

		if err := h.coll.SoftDelete(ctx, gone.ID.Hex()); err != nil {
			t.Fatalf("SoftDelete failed: %v", err)
		}

		got, err := h.coll.GetActiveByID(ctx, gone.ID.Hex())
		if err != nil {
			t.Fatalf("GetActiveByID failed: %v", err)
		}
		if got != nil {
			t.Error("soft-deleted post should not be returned")
		}

		list, err := h.coll.ListActive(ctx)
		if err != nil {
			t.Fatalf("ListActive failed: %v", err)
		}
		if len(list) != 1 || list[0].ID != keep.ID {
			t.Errorf("ListActive: got %+v, want only %s", list, keep.ID.Hex())
		}

		active, found := h.stored(t, gone.ID.Hex())
		if !found {
			t.Fatal("soft-deleted post must still exist in the store")
		}
		if active {
			t.Error("expected is_active=false in the stored document")
		}
	})

	t.Run("SoftDeleteTwice", func(t *testing.T) {
		h := newHarness(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()
		fx := testutil.NewFixtures(t, h.coll)

		post := fx.CreatePost(ctx, "twice", "")
		for i := 0; i < 2; i++ {
			if err := h.coll.SoftDelete(ctx, post.ID.Hex()); err != nil {
				t.Fatalf("SoftDelete call %d failed: %v", i+1, err)
			}
		}
		active, found := h.stored(t, post.ID.Hex())
		if !found || active {
			t.Errorf("stored state: found=%v active=%v, want found and inactive", found, active)
		}
	})

	t.Run("SoftDeleteMissing", func(t *testing.T) {
		h := newHarness(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()

		for _, id := range []string{primitive.NewObjectID().Hex(), "bogus"} {
			err := h.coll.SoftDelete(ctx, id)
			var se *docstore.StoreError
			if !errors.As(err, &se) {
				t.Fatalf("SoftDelete(%q): expected StoreError, got %v", id, err)
			}
			if !docstore.IsNoDocument(err) {
				t.Errorf("SoftDelete(%q): expected ErrNoDocument, got %v", id, err)
			}
		}
	})

	t.Run("UpdatePartialMergesFields", func(t *testing.T) {
		h := newHarness(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()
		fx := testutil.NewFixtures(t, h.coll)

		post := fx.CreatePost(ctx, "old title", "old content")
		if err := h.coll.UpdatePartial(ctx, post.ID.Hex(), docstore.Fields{"title": "new title"}); err != nil {
			t.Fatalf("UpdatePartial failed: %v", err)
		}

		got, err := h.coll.GetActiveByID(ctx, post.ID.Hex())
		if err != nil || got == nil {
			t.Fatalf("GetActiveByID: got %v, %v", got, err)
		}
		if got.Title != "new title" {
			t.Errorf("Title: got %q, want %q", got.Title, "new title")
		}
		if got.Content != "old content" {
			t.Errorf("Content: got %q, want untouched %q", got.Content, "old content")
		}
	})

	t.Run("UpdatePartialNeverTouchesIDOrActive", func(t *testing.T) {
		h := newHarness(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()
		fx := testutil.NewFixtures(t, h.coll)

		post := fx.CreatePost(ctx, "t", "c")
		err := h.coll.UpdatePartial(ctx, post.ID.Hex(), docstore.Fields{
			"_id":       primitive.NewObjectID(),
			"id":        "other",
			"is_active": false,
			"content":   "changed",
		})
		if err != nil {
			t.Fatalf("UpdatePartial failed: %v", err)
		}

		got, err := h.coll.GetActiveByID(ctx, post.ID.Hex())
		if err != nil {
			t.Fatalf("GetActiveByID failed: %v", err)
		}
		if got == nil {
			t.Fatal("post should still be active and reachable by its original id")
		}
		if got.ID != post.ID || !got.IsActive || got.Content != "changed" {
			t.Errorf("after update: %+v", *got)
		}

		// A soft-deleted record stays inactive through an update.
		if err := h.coll.SoftDelete(ctx, post.ID.Hex()); err != nil {
			t.Fatalf("SoftDelete failed: %v", err)
		}
		if err := h.coll.UpdatePartial(ctx, post.ID.Hex(), docstore.Fields{"is_active": true, "title": "x"}); err != nil {
			t.Fatalf("UpdatePartial on inactive failed: %v", err)
		}
		if active, _ := h.stored(t, post.ID.Hex()); active {
			t.Error("UpdatePartial must not reactivate a record")
		}
	})

	t.Run("UpdatePartialMissing", func(t *testing.T) {
		h := newHarness(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()

		missing := primitive.NewObjectID().Hex()
		cases := []docstore.Fields{{"title": "x"}, {}}
		for _, fields := range cases {
			err := h.coll.UpdatePartial(ctx, missing, fields)
			if !docstore.IsNoDocument(err) {
				t.Errorf("UpdatePartial(%v): expected ErrNoDocument, got %v", fields, err)
			}
		}
	})

	t.Run("UpdatePartialEmptyOnExisting", func(t *testing.T) {
		h := newHarness(t)
		ctx, cancel := testutil.TestContext()
		defer cancel()
		fx := testutil.NewFixtures(t, h.coll)

		post := fx.CreatePost(ctx, "t", "c")
		if err := h.coll.UpdatePartial(ctx, post.ID.Hex(), docstore.Fields{"is_active": false}); err != nil {
			t.Fatalf("UpdatePartial with only protected fields failed: %v", err)
		}
		if active, _ := h.stored(t, post.ID.Hex()); !active {
			t.Error("record should still be active")
		}
	})
}
