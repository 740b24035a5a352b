// Package model holds the GORM persistence models. They mirror the store's tables
// and never leave the persistence layer.
package model

import "time"

// UserModel mirrors the 'users' table. Password holds the bcrypt hash.
type UserModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	Role      string `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
