package repository

import (
	"context"

	"collegeblog/internal/domain/entity"
)

// CommentRepository defines the operations for comment persistence.
type CommentRepository interface {
	// Create inserts the comment and sets its ID and CreatedAt.
	Create(ctx context.Context, comment *entity.Comment) error

	// ListByBlog returns the blog's comments with commenter names, oldest first.
	ListByBlog(ctx context.Context, blogID int64) ([]*entity.CommentView, error)
}
