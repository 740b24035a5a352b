package entity

import "time"

// Like records that a user liked a blog. At most one exists per (BlogID, UserID).
type Like struct {
	ID        int64
	BlogID    int64
	UserID    int64
	CreatedAt time.Time
}
