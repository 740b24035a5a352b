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

const blogViewColumns = "blogs.id, blogs.title, blogs.content, blogs.author_id, blogs.created_at, users.first_name, users.last_name"

// blogRow is the shape of a blog joined with its author.
type blogRow struct {
	ID        int64
	Title     string
	Content   string
	AuthorID  int64
	CreatedAt time.Time
	FirstName string
	LastName  string
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	blogM := &model.BlogModel{
		Title:     blog.Title,
		Content:   blog.Content,
		AuthorID:  blog.AuthorID,
		CreatedAt: blog.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(blogM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog")
	}

	blog.ID = blogM.ID
	blog.CreatedAt = blogM.CreatedAt

	return nil
}

func (repo *blogRepository) List(ctx context.Context) ([]*entity.BlogView, error) {
	var rows []blogRow
	if err := repo.withAuthor(ctx).
		Order("blogs.created_at DESC").
		Order("blogs.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list blogs")
	}

	views := make([]*entity.BlogView, 0, len(rows))
	for i := range rows {
		views = append(views, toBlogView(&rows[i]))
	}

	return views, nil
}

func (repo *blogRepository) FindByID(ctx context.Context, id int64) (*entity.BlogView, error) {
	var rows []blogRow
	if err := repo.withAuthor(ctx).
		Where("blogs.id = ?", id).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find blog by id")
	}

	if len(rows) == 0 {
		return nil, repository.ErrBlogNotFound
	}

	return toBlogView(&rows[0]), nil
}

func (repo *blogRepository) withAuthor(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Select(blogViewColumns).
		Joins("INNER JOIN users ON blogs.author_id = users.id")
}

func toBlogView(row *blogRow) *entity.BlogView {
	return &entity.BlogView{
		ID:              row.ID,
		Title:           row.Title,
		Content:         row.Content,
		AuthorID:        row.AuthorID,
		CreatedAt:       row.CreatedAt,
		AuthorFirstName: row.FirstName,
		AuthorLastName:  row.LastName,
	}
}
