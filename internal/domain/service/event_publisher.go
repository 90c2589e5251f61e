package service

import (
	"context"

	"interest/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishInterestEvent publishes a subscription change for downstream consumers
	PublishInterestEvent(ctx context.Context, event *entity.InterestEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
