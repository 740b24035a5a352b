package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"collegeblog/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishBlogEvent(t *testing.T) {
	var (
		received  PushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.BlogEvent{
		RequestID:  "req-1",
		Type:       service.EventCommentAdded,
		BlogID:     4,
		UserID:     2,
		CommentID:  11,
		OccurredAt: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishBlogEvent(t.Context(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, map[string]string{
		"type":       "comment.added",
		"blog_id":    "4",
		"user_id":    "2",
		"comment_id": "11",
		"request_id": "req-1",
	}, received.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.BlogEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishBlogEvent(t.Context(), &service.BlogEvent{Type: service.EventBlogLiked, BlogID: 1, UserID: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestEventAttributes_OmitsEmptyOptionalFields(t *testing.T) {
	attributes := eventAttributes(&service.BlogEvent{Type: service.EventBlogCreated, BlogID: 3, UserID: 5})

	assert.Equal(t, map[string]string{"type": "blog.created", "blog_id": "3", "user_id": "5"}, attributes)
}
