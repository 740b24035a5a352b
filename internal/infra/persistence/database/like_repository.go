package database

import (
	"context"

	"collegeblog/internal/domain/entity"
	domainerrors "collegeblog/internal/domain/errors"
	"collegeblog/internal/domain/repository"
	"collegeblog/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

// Exists runs on the primary because LikeBlog inserts based on its answer.
func (repo *likeRepository) Exists(ctx context.Context, blogID, userID int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.LikeModel{}).
		Where("blog_id = ? AND user_id = ?", blogID, userID).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check existing like")
	}

	return count > 0, nil
}

// Create inserts the like. Losing a race against a concurrent like of the same
// pair surfaces as a database error from the unique index.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := &model.LikeModel{
		BlogID: like.BlogID,
		UserID: like.UserID,
	}

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		details := "failed to create like"
		if isUniqueConstraintViolation(err) {
			details = "failed to create like: pair already stored"
		}

		return domainerrors.NewDatabaseExecuteError(err, details)
	}

	like.ID = likeM.ID
	like.CreatedAt = likeM.CreatedAt

	return nil
}
