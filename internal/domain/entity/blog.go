package entity

import "time"

// Blog is a post written by a user. Blogs are never updated or deleted.
type Blog struct {
	ID        int64
	Title     string
	Content   string
	AuthorID  int64
	CreatedAt time.Time
}

// BlogView is a blog joined with its author's name, as listed to readers.
type BlogView struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	AuthorID        int64     `json:"author_id"`
	CreatedAt       time.Time `json:"created_at"`
	AuthorFirstName string    `json:"first_name"`
	AuthorLastName  string    `json:"last_name"`
}
