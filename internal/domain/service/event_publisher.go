package service

import (
	"context"
	"time"
)

// EventType names a domain event.
type EventType string

const (
	EventBlogCreated  EventType = "blog.created"
	EventCommentAdded EventType = "comment.added"
	EventBlogLiked    EventType = "blog.liked"
)

// BlogEvent is published after a blog, comment or like is stored.
type BlogEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       EventType `json:"type"`
	BlogID     int64     `json:"blog_id"`
	UserID     int64     `json:"user_id"`
	CommentID  int64     `json:"comment_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBlogEvent publishes a blog event for downstream consumers
	PublishBlogEvent(ctx context.Context, event *BlogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
