package service

import (
	"context"

	"github.com/redleaf-cms/redleaf/internal/core/domain"
	"github.com/redleaf-cms/redleaf/internal/core/repository"
)

type PostService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// ListPublished returns published posts, newest first.
func (s *PostService) ListPublished(ctx context.Context) ([]*domain.Post, error) {
	return s.postRepo.FindAll(ctx)
}

// ListAll returns every post including drafts, newest first.
func (s *PostService) ListAll(ctx context.Context) ([]*domain.Post, error) {
	return s.postRepo.List(ctx)
}

// GetPost returns (nil, nil) when the id does not exist.
func (s *PostService) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	return s.postRepo.FindByID(ctx, id)
}

// GetPostBySlug returns (nil, nil) when the slug does not exist.
func (s *PostService) GetPostBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	return s.postRepo.FindBySlug(ctx, slug)
}

func (s *PostService) CreatePost(ctx context.Context, cp domain.CreatePost) (*domain.Post, error) {
	return s.postRepo.Create(ctx, cp)
}

func (s *PostService) UpdatePost(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error) {
	return s.postRepo.Update(ctx, id, patch)
}

func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	return s.postRepo.Delete(ctx, id)
}
