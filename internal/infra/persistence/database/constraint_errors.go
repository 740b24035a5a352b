package database

import (
	"collegeblog/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation relies on TranslateError, which maps the
// driver-specific duplicate-key codes to gorm.ErrDuplicatedKey.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
