package model

import "time"

// BlogModel mirrors the 'blogs' table.
type BlogModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"type:varchar(255);not null"`
	Content   string `gorm:"type:text;not null"`
	AuthorID  int64  `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlogModel) TableName() string {
	return "blogs"
}

// CommentModel mirrors the 'comments' table. BlogID carries no foreign key,
// so comments on unknown blogs are stored as-is.
type CommentModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	BlogID    int64  `gorm:"not null;index"`
	UserID    int64  `gorm:"not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}

// LikeModel mirrors the 'likes' table. The composite unique index is the
// authoritative guard against double likes.
type LikeModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	BlogID    int64 `gorm:"not null;uniqueIndex:idx_likes_blog_user"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_likes_blog_user"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}

// All lists every model in migration order.
func All() []any {
	return []any{&UserModel{}, &BlogModel{}, &CommentModel{}, &LikeModel{}}
}
