package repository

import (
	"context"
	"errors"

	"collegeblog/internal/domain/entity"
)

// ErrBlogNotFound is returned when no blog has the requested ID.
var ErrBlogNotFound = errors.New("blog not found")

// BlogRepository defines the operations for blog persistence.
type BlogRepository interface {
	// Create inserts the blog and sets its ID and CreatedAt.
	Create(ctx context.Context, blog *entity.Blog) error

	// List returns every blog with its author's name, newest first.
	List(ctx context.Context) ([]*entity.BlogView, error)

	// FindByID returns one blog with its author's name.
	FindByID(ctx context.Context, id int64) (*entity.BlogView, error)
}
