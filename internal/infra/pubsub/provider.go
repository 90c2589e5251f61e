// Package pubsub publishes subscription change events for the worker and other consumers.
package pubsub

import (
	"context"
	"log/slog"

	"interest/config"
	deliverycontext "interest/internal/delivery/context"
	"interest/internal/domain/constants"
	"interest/internal/domain/entity"
	"interest/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
// Caches then expire by TTL instead of being invalidated by the worker.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishInterestEvent(ctx context.Context, event *entity.InterestEvent) error {
	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("[NoopPubSub] Event dropped",
		slog.String("action", event.Action),
		slog.Int("relationship_count", len(event.RelationshipIDs)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the provider named in config and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if err := validatePubSubConfig(cfg); err != nil {
		return nil, err
	}

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderNoop {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	logger.Info("Using PubSub publisher",
		slog.String("provider", cfg.Provider),
		slog.String("topic_id", cfg.TopicID),
	)

	if cfg.Provider == constants.PubSubProviderLocal {
		return NewLocalHTTPPublisher(cfg.LocalEndpoint, localSubscription(cfg.TopicID), logger), nil
	}

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}

func validatePubSubConfig(cfg *config.PubSubConfig) error {
	if cfg == nil {
		return nil
	}

	switch cfg.Provider {
	case "", constants.PubSubProviderNoop:
		return nil
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("local endpoint is required for local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return errors.New("topic ID is required for google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

// localSubscription names the simulated push subscription after the topic.
func localSubscription(topicID string) string {
	if topicID == "" {
		topicID = "product-interest-events"
	}

	return "projects/local/subscriptions/" + topicID + "-push"
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
