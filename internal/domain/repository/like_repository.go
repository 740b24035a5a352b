package repository

import (
	"context"

	"collegeblog/internal/domain/entity"
)

// LikeRepository defines the operations for like persistence.
type LikeRepository interface {
	// Exists reports whether the user already liked the blog.
	Exists(ctx context.Context, blogID, userID int64) (bool, error)

	// Create inserts the like. A concurrent duplicate is rejected by the store's unique index.
	Create(ctx context.Context, like *entity.Like) error
}
