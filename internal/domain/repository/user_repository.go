// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the use cases and the store.
package repository

import (
	"context"
	"errors"

	"collegeblog/internal/domain/entity"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the operations for user persistence.
type UserRepository interface {
	// FindByEmail retrieves the user with exactly this email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create inserts the user and sets its store-assigned ID and CreatedAt.
	Create(ctx context.Context, user *entity.User) error
}
