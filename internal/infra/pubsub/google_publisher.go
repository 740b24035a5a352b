package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"collegeblog/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// blogTopicPublisher sends blog events to a Cloud Pub/Sub topic. Events of the
// same blog share an ordering key so subscribers see them in publish order.
type blogTopicPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topicPath string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID
// does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create pubsub client for project %s", projectID)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "blog event topic %s is not reachable", topicPath)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Blog events go to Google Pub/Sub", slog.String("topic", topicPath))

	return &blogTopicPublisher{
		client:    client,
		publisher: publisher,
		topicPath: topicPath,
		logger:    logger,
	}, nil
}

// PublishBlogEvent blocks until the server acknowledges the message.
func (p *blogTopicPublisher) PublishBlogEvent(ctx context.Context, event *service.BlogEvent) error {
	msg, err := newBlogMessage(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		// A failed ordered publish pauses its key until resumed.
		p.publisher.ResumePublish(msg.OrderingKey)

		return errors.Wrapf(err, "publish %s to %s", event.Type, p.topicPath)
	}

	p.logger.Debug("[GooglePubSub] Blog event acknowledged",
		slog.String("type", string(event.Type)),
		slog.Int64("blog_id", event.BlogID),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *blogTopicPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}

// newBlogMessage encodes the event as JSON with filterable attributes, keyed by blog.
func newBlogMessage(event *service.BlogEvent) (*pubsub.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode blog event")
	}

	return &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: blogOrderingKey(event.BlogID),
	}, nil
}

func blogOrderingKey(blogID int64) string {
	return "blog-" + strconv.FormatInt(blogID, 10)
}
