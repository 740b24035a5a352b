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

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByEmail returns the user whose email equals the argument byte for byte.
// The store's collation may fold case, so candidates are filtered again here.
// On MySQL's default case-insensitive collation this means "A@x.com" is not
// found after "a@x.com" registered, and the insert that follows fails on the
// users.email unique index as a database error (500), not a duplicate user.
// The lookup runs on the primary because registration decides on its result.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var candidates []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ?", email).
		Find(&candidates).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	for _, candidate := range candidates {
		if candidate.Email == email {
			return toUserDomain(candidate), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// Create inserts the user. Any store failure, including a unique-email violation
// from a concurrent registration, is reported as a database error.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		details := "failed to create user"
		if isUniqueConstraintViolation(err) {
			details = "failed to create user: email already taken"
		}

		return domainerrors.NewDatabaseExecuteError(err, details)
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.Password,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Password:  data.PasswordHash,
		Role:      data.Role.String(),
		CreatedAt: data.CreatedAt,
	}
}
