package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/redleaf-cms/redleaf/internal/core/domain"
	"github.com/redleaf-cms/redleaf/internal/core/repository"
)

type postRepository struct {
	db *DB
}

func NewPostRepository(db *DB) repository.PostRepository {
	return &postRepository{db: db}
}

const postColumns = "id, title, slug, content, excerpt, published, created_at, updated_at"

func (r *postRepository) FindAll(ctx context.Context) ([]*domain.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE published = 1
		ORDER BY created_at DESC
	`
	posts := []*domain.Post{}
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("failed to list published posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) List(ctx context.Context) ([]*domain.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		ORDER BY created_at DESC
	`
	posts := []*domain.Post{}
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = ?`

	var post domain.Post
	err := r.db.GetContext(ctx, &post, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return &post, nil
}

func (r *postRepository) FindBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE slug = ?`

	var post domain.Post
	err := r.db.GetContext(ctx, &post, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return &post, nil
}

func (r *postRepository) Create(ctx context.Context, cp domain.CreatePost) (*domain.Post, error) {
	post := domain.NewPost(cp)

	query := `
		INSERT INTO posts (title, slug, content, excerpt, published, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		post.Title,
		post.Slug,
		post.Content,
		post.Excerpt,
		post.Published,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}
	post.ID = id

	return post, nil
}

// Update reads the current row, merges the patch and writes the result back.
// The read and the write are two statements without a transaction; a patch
// racing a delete surfaces as ErrNotFound at the write, but two concurrent
// patches can still lose one of the updates.
func (r *postRepository) Update(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error) {
	post, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrNotFound
	}

	patch.Apply(post)
	post.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE posts
		SET title = ?, slug = ?, content = ?, excerpt = ?, published = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		post.Title,
		post.Slug,
		post.Content,
		post.Excerpt,
		post.Published,
		post.UpdatedAt,
		post.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, domain.ErrNotFound
	}

	return post, nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM posts WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}
