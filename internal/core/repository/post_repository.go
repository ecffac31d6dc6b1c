package repository

import (
	"context"

	"github.com/redleaf-cms/redleaf/internal/core/domain"
)

type PostRepository interface {
	// FindAll returns published posts, newest first.
	FindAll(ctx context.Context) ([]*domain.Post, error)
	// FindByID returns (nil, nil) when no post has the given id.
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	// FindBySlug returns (nil, nil) when no post has the given slug.
	FindBySlug(ctx context.Context, slug string) (*domain.Post, error)
	Create(ctx context.Context, cp domain.CreatePost) (*domain.Post, error)
	// Update merges the patch into the stored post and refreshes updated_at.
	// Returns domain.ErrNotFound when the id does not exist.
	Update(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error)
	// Delete is idempotent; deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error
	// List returns every post, drafts included, newest first.
	List(ctx context.Context) ([]*domain.Post, error)
}
