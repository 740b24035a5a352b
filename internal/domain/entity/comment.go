package entity

import "time"

// Comment is a reply to a blog. BlogID is not checked against existing blogs.
type Comment struct {
	ID        int64
	BlogID    int64
	UserID    int64
	Content   string
	CreatedAt time.Time
}

// CommentView is a comment joined with its author's name.
type CommentView struct {
	ID              int64     `json:"id"`
	BlogID          int64     `json:"blog_id"`
	UserID          int64     `json:"user_id"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"created_at"`
	AuthorFirstName string    `json:"first_name"`
	AuthorLastName  string    `json:"last_name"`
}
