package database

import (
	"context"
	"time"

	"collegeblog/internal/domain/entity"
	domainerrors "collegeblog/internal/domain/errors"
	"collegeblog/internal/domain/repository"
	"collegeblog/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const commentViewColumns = "comments.id, comments.blog_id, comments.user_id, comments.content, comments.created_at, users.first_name, users.last_name"

type commentRow struct {
	ID        int64
	BlogID    int64
	UserID    int64
	Content   string
	CreatedAt time.Time
	FirstName string
	LastName  string
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := &model.CommentModel{
		BlogID:    comment.BlogID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

func (repo *commentRepository) ListByBlog(ctx context.Context, blogID int64) ([]*entity.CommentView, error) {
	var rows []commentRow
	if err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Select(commentViewColumns).
		Joins("INNER JOIN users ON comments.user_id = users.id").
		Where("comments.blog_id = ?", blogID).
		Order("comments.created_at ASC").
		Order("comments.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list comments")
	}

	views := make([]*entity.CommentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &entity.CommentView{
			ID:              row.ID,
			BlogID:          row.BlogID,
			UserID:          row.UserID,
			Content:         row.Content,
			CreatedAt:       row.CreatedAt,
			AuthorFirstName: row.FirstName,
			AuthorLastName:  row.LastName,
		})
	}

	return views, nil
}
