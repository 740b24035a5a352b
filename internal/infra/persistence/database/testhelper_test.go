package database

import (
	"testing"
	"time"

	"collegeblog/internal/domain/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to ":memory:" opens its own database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, firstName, lastName string) *entity.User {
	t.Helper()

	user := &entity.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleStudent,
	}
	require.NoError(t, NewUserRepository(db).Create(t.Context(), user))

	return user
}

func at(seconds int) time.Time {
	return time.Date(2024, time.March, 1, 12, 0, seconds, 0, time.UTC)
}
