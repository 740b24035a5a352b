package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "collegeblog/internal/delivery/context"
	"collegeblog/internal/delivery/http/response"
	domainerrors "collegeblog/internal/domain/errors"
	"collegeblog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateBlogRequest is the body of POST /api/blogs.
type CreateBlogRequest struct {
	Title   string `json:"title" form:"title" validate:"required"`
	Content string `json:"content" form:"content" validate:"required"`
}

// CreateCommentRequest is the body of POST /api/blogs/:id/comments.
type CreateCommentRequest struct {
	Content string `json:"content" form:"content" validate:"required"`
}

// CreateBlogResponse is returned after a blog is stored.
type CreateBlogResponse struct {
	Message string `json:"message"`
	BlogID  int64  `json:"blogId"`
}

// CreateCommentResponse is returned after a comment is stored.
type CreateCommentResponse struct {
	Message   string `json:"message"`
	CommentID int64  `json:"commentId"`
}

// BlogHandler serves blogs, comments and likes.
type BlogHandler struct {
	uc     usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler, injected by Fx.
func NewBlogHandler(uc usecase.BlogUsecase, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateBlog requires the auth gate; the author is the token's user.
func (h *BlogHandler) CreateBlog(c echo.Context) error {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return domainerrors.ErrMissingToken
	}

	var req CreateBlogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	blogID, err := h.uc.CreateBlog(c.Request().Context(), &usecase.CreateBlogInput{
		AuthorID: claims.UserID,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, CreateBlogResponse{
		Message: "Blog created successfully",
		BlogID:  blogID,
	})
}

func (h *BlogHandler) ListBlogs(c echo.Context) error {
	blogs, err := h.uc.ListBlogs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, blogs)
}

func (h *BlogHandler) GetBlog(c echo.Context) error {
	blogID, err := pathID(c)
	if err != nil {
		return err
	}

	blog, err := h.uc.GetBlog(c.Request().Context(), blogID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, blog)
}

// CreateComment requires the auth gate. The blog id is taken from the path as is.
func (h *BlogHandler) CreateComment(c echo.Context) error {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return domainerrors.ErrMissingToken
	}

	blogID, err := pathID(c)
	if err != nil {
		return err
	}

	var req CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	commentID, err := h.uc.CreateComment(c.Request().Context(), &usecase.CreateCommentInput{
		BlogID:  blogID,
		UserID:  claims.UserID,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, CreateCommentResponse{
		Message:   "Comment added successfully",
		CommentID: commentID,
	})
}

func (h *BlogHandler) ListComments(c echo.Context) error {
	blogID, err := pathID(c)
	if err != nil {
		return err
	}

	comments, err := h.uc.ListComments(c.Request().Context(), blogID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, comments)
}

// LikeBlog requires the auth gate.
func (h *BlogHandler) LikeBlog(c echo.Context) error {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return domainerrors.ErrMissingToken
	}

	blogID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.LikeBlog(c.Request().Context(), &usecase.LikeBlogInput{
		BlogID: blogID,
		UserID: claims.UserID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Blog liked successfully")
}

// BlogQRCode renders a PNG share code for the blog's public page.
func (h *BlogHandler) BlogQRCode(c echo.Context) error {
	blogID, err := pathID(c)
	if err != nil {
		return err
	}

	png, err := h.uc.BlogQRCode(c.Request().Context(), blogID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, png)
}
