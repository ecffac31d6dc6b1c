package repository

import (
	"context"

	"github.com/redleaf-cms/redleaf/internal/core/domain"
)

type UserRepository interface {
	// Find methods return (nil, nil) when no user matches the key.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) ([]*domain.User, error)
}
