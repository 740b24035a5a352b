package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "collegeblog/internal/delivery/context"
	"collegeblog/internal/domain/entity"
	domainerrors "collegeblog/internal/domain/errors"
	"collegeblog/internal/domain/repository"
	"collegeblog/internal/domain/service"
	"collegeblog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// blogService implements the BlogUsecase interface.
type blogService struct {
	blogRepo    repository.BlogRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	publisher   service.EventPublisher
	qrcode      service.QRCodeService
	logger      *slog.Logger
	now         func() time.Time
}

// BlogServiceParams holds dependencies for BlogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	BlogRepo       repository.BlogRepository
	CommentRepo    repository.CommentRepository
	LikeRepo       repository.LikeRepository
	EventPublisher service.EventPublisher
	QRCodeService  service.QRCodeService
	Logger         *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	return &blogService{
		blogRepo:    params.BlogRepo,
		commentRepo: params.CommentRepo,
		likeRepo:    params.LikeRepo,
		publisher:   params.EventPublisher,
		qrcode:      params.QRCodeService,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

func (srv *blogService) CreateBlog(ctx context.Context, input *usecase.CreateBlogInput) (int64, error) {
	blog := &entity.Blog{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: input.AuthorID,
	}
	if err := srv.blogRepo.Create(ctx, blog); err != nil {
		srv.log(ctx).Error("Failed to create blog", slog.Int64("author_id", input.AuthorID), slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to create blog")
	}

	srv.publish(ctx, &service.BlogEvent{
		Type:   service.EventBlogCreated,
		BlogID: blog.ID,
		UserID: blog.AuthorID,
	})

	return blog.ID, nil
}

func (srv *blogService) ListBlogs(ctx context.Context) ([]*entity.BlogView, error) {
	blogs, err := srv.blogRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list blogs", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list blogs")
	}

	return blogs, nil
}

func (srv *blogService) GetBlog(ctx context.Context, blogID int64) (*entity.BlogView, error) {
	blog, err := srv.blogRepo.FindByID(ctx, blogID)
	if errors.Is(err, repository.ErrBlogNotFound) {
		return nil, domainerrors.ErrBlogNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to find blog", slog.Int64("blog_id", blogID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find blog")
	}

	return blog, nil
}

// CreateComment stores the comment without checking that the blog exists.
func (srv *blogService) CreateComment(ctx context.Context, input *usecase.CreateCommentInput) (int64, error) {
	comment := &entity.Comment{
		BlogID:  input.BlogID,
		UserID:  input.UserID,
		Content: input.Content,
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		srv.log(ctx).Error("Failed to create comment", slog.Int64("blog_id", input.BlogID), slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to create comment")
	}

	srv.publish(ctx, &service.BlogEvent{
		Type:      service.EventCommentAdded,
		BlogID:    comment.BlogID,
		UserID:    comment.UserID,
		CommentID: comment.ID,
	})

	return comment.ID, nil
}

func (srv *blogService) ListComments(ctx context.Context, blogID int64) ([]*entity.CommentView, error) {
	comments, err := srv.commentRepo.ListByBlog(ctx, blogID)
	if err != nil {
		srv.log(ctx).Error("Failed to list comments", slog.Int64("blog_id", blogID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// LikeBlog records a like once per user and blog. The existence check and the
// insert are not atomic; the store's unique index rejects the loser of a race.
func (srv *blogService) LikeBlog(ctx context.Context, input *usecase.LikeBlogInput) error {
	exists, err := srv.likeRepo.Exists(ctx, input.BlogID, input.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to check existing like", slog.Int64("blog_id", input.BlogID), slog.Any("error", err))

		return errors.Wrap(err, "failed to check existing like")
	}
	if exists {
		return domainerrors.ErrAlreadyLiked
	}

	like := &entity.Like{BlogID: input.BlogID, UserID: input.UserID}
	if err := srv.likeRepo.Create(ctx, like); err != nil {
		srv.log(ctx).Error("Failed to create like", slog.Int64("blog_id", input.BlogID), slog.Any("error", err))

		return errors.Wrap(err, "failed to create like")
	}

	srv.publish(ctx, &service.BlogEvent{
		Type:   service.EventBlogLiked,
		BlogID: like.BlogID,
		UserID: like.UserID,
	})

	return nil
}

func (srv *blogService) BlogQRCode(ctx context.Context, blogID int64) ([]byte, error) {
	if _, err := srv.GetBlog(ctx, blogID); err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateBlogQR(blogID)
	if err != nil {
		srv.log(ctx).Error("Failed to render blog QR code", slog.Int64("blog_id", blogID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

// publish fires a domain event after the write has succeeded. Failures are
// logged only; the stored row stays and the request still succeeds.
func (srv *blogService) publish(ctx context.Context, event *service.BlogEvent) {
	event.RequestID = deliverycontext.RequestIDFrom(ctx)
	event.OccurredAt = srv.now().UTC()

	if err := srv.publisher.PublishBlogEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish blog event",
			slog.String("type", string(event.Type)),
			slog.Int64("blog_id", event.BlogID),
			slog.Any("error", err),
		)
	}
}
