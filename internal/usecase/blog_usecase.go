package usecase

import (
	"context"

	"collegeblog/internal/domain/entity"
)

// CreateBlogInput carries a new blog written by AuthorID.
type CreateBlogInput struct {
	AuthorID int64
	Title    string
	Content  string
}

// CreateCommentInput carries a new comment by UserID on BlogID.
type CreateCommentInput struct {
	BlogID  int64
	UserID  int64
	Content string
}

// LikeBlogInput identifies who likes which blog.
type LikeBlogInput struct {
	BlogID int64
	UserID int64
}

// BlogUsecase defines blog, comment and like operations.
type BlogUsecase interface {
	CreateBlog(ctx context.Context, input *CreateBlogInput) (int64, error)
	ListBlogs(ctx context.Context) ([]*entity.BlogView, error)
	GetBlog(ctx context.Context, blogID int64) (*entity.BlogView, error)
	CreateComment(ctx context.Context, input *CreateCommentInput) (int64, error)
	ListComments(ctx context.Context, blogID int64) ([]*entity.CommentView, error)
	LikeBlog(ctx context.Context, input *LikeBlogInput) error

	// BlogQRCode renders a PNG share code for an existing blog.
	BlogQRCode(ctx context.Context, blogID int64) ([]byte, error)
}
