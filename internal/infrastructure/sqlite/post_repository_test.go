package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redleaf-cms/redleaf/internal/core/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func ptr[T any](v T) *T {
	return &v
}

func TestPostCreateSetsTimestamps(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	post, err := repo.Create(ctx, domain.CreatePost{
		Title: "Hello", Slug: "hello", Content: "**hi**", Published: true,
	})
	if err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	if post.ID == 0 {
		t.Error("expected a server-generated id")
	}
	if !post.CreatedAt.Equal(post.UpdatedAt) {
		t.Errorf("created_at and updated_at must match on create: %v vs %v", post.CreatedAt, post.UpdatedAt)
	}

	stored, err := repo.FindByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("failed to find post: %v", err)
	}
	if stored == nil {
		t.Fatal("expected the created post to be found")
	}
	if !stored.CreatedAt.Equal(stored.UpdatedAt) {
		t.Errorf("stored created_at and updated_at must match: %v vs %v", stored.CreatedAt, stored.UpdatedAt)
	}
	if stored.Title != "Hello" || stored.Slug != "hello" || stored.Content != "**hi**" || !stored.Published {
		t.Errorf("stored post does not match input: %+v", stored)
	}
}

func TestPostFindAllPublishedOnlyNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	posts := []struct {
		slug      string
		published bool
		age       time.Duration
	}{
		{"oldest", true, 72 * time.Hour},
		{"draft", false, 48 * time.Hour},
		{"middle", true, 24 * time.Hour},
		{"newest", true, 0},
	}

	now := time.Now().UTC()
	for _, p := range posts {
		created, err := repo.Create(ctx, domain.CreatePost{
			Title: p.slug, Slug: p.slug, Content: "c", Published: p.published,
		})
		if err != nil {
			t.Fatalf("failed to create post %s: %v", p.slug, err)
		}
		// Backdate so the ordering is meaningful.
		ts := now.Add(-p.age)
		if _, err := db.Exec(`UPDATE posts SET created_at = ?, updated_at = ? WHERE id = ?`, ts, ts, created.ID); err != nil {
			t.Fatalf("failed to backdate post %s: %v", p.slug, err)
		}
	}

	published, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("failed to list posts: %v", err)
	}

	if len(published) != 3 {
		t.Fatalf("expected 3 published posts, got %d", len(published))
	}
	for _, p := range published {
		if !p.Published {
			t.Errorf("unpublished post %q leaked into the listing", p.Slug)
		}
	}
	for i := 1; i < len(published); i++ {
		if published[i-1].CreatedAt.Before(published[i].CreatedAt) {
			t.Errorf("posts out of order: %q (%v) before %q (%v)",
				published[i-1].Slug, published[i-1].CreatedAt,
				published[i].Slug, published[i].CreatedAt)
		}
	}
	if published[0].Slug != "newest" || published[2].Slug != "oldest" {
		t.Errorf("unexpected ordering: %q ... %q", published[0].Slug, published[2].Slug)
	}
}

func TestPostFindAbsenceIsNotError(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	post, err := repo.FindByID(ctx, 12345)
	if err != nil {
		t.Fatalf("absence must not be an error, got: %v", err)
	}
	if post != nil {
		t.Errorf("expected nil post, got %+v", post)
	}

	post, err = repo.FindBySlug(ctx, "no-such-slug")
	if err != nil {
		t.Fatalf("absence must not be an error, got: %v", err)
	}
	if post != nil {
		t.Errorf("expected nil post, got %+v", post)
	}
}

func TestPostFindBySlug(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, domain.CreatePost{
		Title: "Hello", Slug: "hello", Content: "**hi**", Published: true,
	}); err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	post, err := repo.FindBySlug(ctx, "hello")
	if err != nil {
		t.Fatalf("failed to find post by slug: %v", err)
	}
	if post == nil {
		t.Fatal("expected post for slug 'hello'")
	}
	if post.Title != "Hello" || post.Content != "**hi**" {
		t.Errorf("unexpected post for slug: %+v", post)
	}
}

func TestPostUpdatePartialPreservesOmittedFields(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.CreatePost{
		Title:     "Original",
		Slug:      "original",
		Content:   "original content",
		Excerpt:   ptr("an excerpt"),
		Published: true,
	})
	if err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	updated, err := repo.Update(ctx, created.ID, domain.PostPatch{Title: ptr("Renamed")})
	if err != nil {
		t.Fatalf("failed to update post: %v", err)
	}

	if updated.Title != "Renamed" {
		t.Errorf("expected new title, got %q", updated.Title)
	}
	if updated.Slug != "original" || updated.Content != "original content" ||
		!updated.Published || updated.Excerpt == nil || *updated.Excerpt != "an excerpt" {
		t.Errorf("partial update changed omitted fields: %+v", updated)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Errorf("updated_at went backwards: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("created_at must not change on update: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}

	stored, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("failed to re-read post: %v", err)
	}
	if stored.Title != "Renamed" || stored.Content != "original content" {
		t.Errorf("update not persisted correctly: %+v", stored)
	}
}

func TestPostUpdateMissingIDIsNotFound(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))

	_, err := repo.Update(context.Background(), 999, domain.PostPatch{Title: ptr("x")})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestPostDeleteIsIdempotent(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.CreatePost{
		Title: "Doomed", Slug: "doomed", Content: "c", Published: true,
	})
	if err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("failed to delete post: %v", err)
	}

	post, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("failed to look up deleted post: %v", err)
	}
	if post != nil {
		t.Errorf("expected deleted post to be gone, got %+v", post)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Errorf("second delete of the same id must not fail, got: %v", err)
	}
}

func TestPostDuplicateSlugIsConflict(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, domain.CreatePost{
		Title: "First", Slug: "taken", Content: "c", Published: true,
	}); err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	_, err := repo.Create(ctx, domain.CreatePost{
		Title: "Second", Slug: "taken", Content: "c", Published: true,
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("expected ErrConflict for duplicate slug, got: %v", err)
	}

	other, err := repo.Create(ctx, domain.CreatePost{
		Title: "Other", Slug: "free", Content: "c", Published: true,
	})
	if err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	_, err = repo.Update(ctx, other.ID, domain.PostPatch{Slug: ptr("taken")})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("expected ErrConflict for update to duplicate slug, got: %v", err)
	}
}
