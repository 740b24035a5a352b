package handler

import (
	"net/http"
	"testing"
	"time"

	"collegeblog/internal/domain/entity"
	domainerrors "collegeblog/internal/domain/errors"
	"collegeblog/internal/domain/service"
	mockUc "collegeblog/internal/mocks/usecase"
	"collegeblog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newBlogHandlerEcho(t *testing.T) (*echo.Echo, *mockUc.MockBlogUsecase) {
	uc := mockUc.NewMockBlogUsecase(t)
	h := NewBlogHandler(uc, discardLogger())

	e := newTestEcho()
	gate := withClaims(&service.Claims{UserID: 3, Email: "ada@college.edu"})
	e.GET("/api/blogs", h.ListBlogs)
	e.GET("/api/blogs/:id", h.GetBlog)
	e.GET("/api/blogs/:id/comments", h.ListComments)
	e.GET("/api/blogs/:id/qrcode", h.BlogQRCode)
	e.POST("/api/blogs", h.CreateBlog, gate)
	e.POST("/api/blogs/:id/comments", h.CreateComment, gate)
	e.POST("/api/blogs/:id/like", h.LikeBlog, gate)
	e.POST("/ungated/blogs", h.CreateBlog)

	return e, uc
}

func TestBlogHandler_CreateBlog(t *testing.T) {
	e, uc := newBlogHandlerEcho(t)

	uc.EXPECT().
		CreateBlog(mock.Anything, &usecase.CreateBlogInput{AuthorID: 3, Title: "T", Content: "C"}).
		Return(int64(17), nil)

	rec := serve(e, http.MethodPost, "/api/blogs", `{"title":"T","content":"C"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Blog created successfully","blogId":17}`, rec.Body.String())
}

func TestBlogHandler_CreateBlog_WithoutClaims(t *testing.T) {
	e, _ := newBlogHandlerEcho(t)

	rec := serve(e, http.MethodPost, "/ungated/blogs", `{"title":"T","content":"C"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBlogHandler_CreateBlog_MissingContent(t *testing.T) {
	e, _ := newBlogHandlerEcho(t)

	rec := serve(e, http.MethodPost, "/api/blogs", `{"title":"T"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"content is required"}`, rec.Body.String())
}

func TestBlogHandler_ListBlogs(t *testing.T) {
	e, uc := newBlogHandlerEcho(t)
	created := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	uc.EXPECT().ListBlogs(mock.Anything).Return([]*entity.BlogView{{
		ID: 1, Title: "T", Content: "C", AuthorID: 3, CreatedAt: created, AuthorFirstName: "Ada", AuthorLastName: "Lovelace",
	}}, nil)

	rec := serve(e, http.MethodGet, "/api/blogs", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id":1,"title":"T","content":"C","author_id":3,
		"created_at":"2024-03-01T12:00:00Z","first_name":"Ada","last_name":"Lovelace"
	}]`, rec.Body.String())
}

func TestBlogHandler_ListBlogs_EmptyIsArray(t *testing.T) {
	e, uc := newBlogHandlerEcho(t)

	uc.EXPECT().ListBlogs(mock.Anything).Return([]*entity.BlogView{}, nil)

	rec := serve(e, http.MethodGet, "/api/blogs", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestBlogHandler_GetBlog(t *testing.T) {
	e, uc := newBlogHandlerEcho(t)

	uc.EXPECT().GetBlog(mock.Anything, int64(5)).Return(&entity.BlogView{ID: 5, Title: "T"}, nil)
	uc.EXPECT().GetBlog(mock.Anything, int64(6)).Return(nil, domainerrors.ErrBlogNotFound)

	rec := serve(e, http.MethodGet, "/api/blogs/5", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"T"`)

	rec = serve(e, http.MethodGet, "/api/blogs/6", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Blog not found"}`, rec.Body.String())
}

func TestBlogHandler_NonNumericID(t *testing.T) {
	e, _ := newBlogHandlerEcho(t)

	for _, target := range []string{"/api/blogs/abc", "/api/blogs/abc/comments", "/api/blogs/0/qrcode"} {
		rec := serve(e, http.MethodGet, target, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.JSONEq(t, `{"error":"Invalid blog id"}`, rec.Body.String(), target)
	}

	rec := serve(e, http.MethodPost, "/api/blogs/-1/like", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBlogHandler_CreateComment(t *testing.T) {
	e, uc := newBlogHandlerEcho(t)

	uc.EXPECT().
		CreateComment(mock.Anything, &usecase.CreateCommentInput{BlogID: 9, UserID: 3, Content: "nice"}).
		Return(int64(30), nil)

	rec := serve(e, http.MethodPost, "/api/blogs/9/comments", `{"content":"nice"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Comment added successfully","commentId":30}`, rec.Body.String())
}

func TestBlogHandler_ListComments(t *testing.T) {
	e, uc := newBlogHandlerEcho(t)

	uc.EXPECT().ListComments(mock.Anything, int64(9)).Return([]*entity.CommentView{{ID: 1, BlogID: 9, UserID: 3, Content: "nice"}}, nil)

	rec := serve(e, http.MethodGet, "/api/blogs/9/comments", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"blog_id":9`)
	assert.Contains(t, rec.Body.String(), `"user_id":3`)
}

func TestBlogHandler_LikeBlog(t *testing.T) {
	e, uc := newBlogHandlerEcho(t)

	uc.EXPECT().LikeBlog(mock.Anything, &usecase.LikeBlogInput{BlogID: 9, UserID: 3}).Return(nil).Once()
	uc.EXPECT().LikeBlog(mock.Anything, &usecase.LikeBlogInput{BlogID: 9, UserID: 3}).Return(domainerrors.ErrAlreadyLiked).Once()

	rec := serve(e, http.MethodPost, "/api/blogs/9/like", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Blog liked successfully"}`, rec.Body.String())

	rec = serve(e, http.MethodPost, "/api/blogs/9/like", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"You already liked this blog"}`, rec.Body.String())
}

func TestBlogHandler_BlogQRCode(t *testing.T) {
	e, uc := newBlogHandlerEcho(t)

	uc.EXPECT().BlogQRCode(mock.Anything, int64(9)).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	rec := serve(e, http.MethodGet, "/api/blogs/9/qrcode", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
}
