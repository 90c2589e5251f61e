package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "interest/internal/delivery/context"
	"interest/internal/domain/entity"
	"interest/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// Bulk unsubscribes publish one event per submission, so batching is kept short.
const (
	publishDelayThreshold = 50 * time.Millisecond
	publishTimeout        = 15 * time.Second
)

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails fast when the topic does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.PublishSettings.DelayThreshold = publishDelayThreshold
	publisher.PublishSettings.Timeout = publishTimeout

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (p *googlePubSubPublisher) PublishInterestEvent(ctx context.Context, event *entity.InterestEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}).Get(ctx)
	if err != nil {
		return errors.Wrap(err, "publish interest event")
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("[GooglePubSub] Event published",
		slog.String("server_id", serverID),
		slog.String("action", event.Action),
		slog.Int("relationship_count", len(event.RelationshipIDs)),
	)

	return nil
}

// Close flushes pending messages before closing the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
