package usecase

import (
	"context"

	"interest/internal/domain/entity"
)

// SubscribeResult summarizes the relationships created from one order
type SubscribeResult struct {
	Created         []*entity.Relationship
	AlreadyExisting []int64 // product IDs the customer had already subscribed to
}

// SubscriptionUsecase defines the interface for subscription lookups and changes
type SubscriptionUsecase interface {
	// GetCustomersForProduct returns the subscribers of a product, served from cache when warm
	GetCustomersForProduct(ctx context.Context, productID int64) ([]*entity.CustomerRelationship, error)

	// GetProductsForCustomer returns the products a customer subscribed to, served from cache when warm
	GetProductsForCustomer(ctx context.Context, customerID int64) ([]int64, error)

	// SubscribeFromOrder subscribes the buyer to every interest-enabled product of a completed order.
	// It returns nil when the order carries nothing to subscribe to.
	SubscribeFromOrder(ctx context.Context, order *entity.OrderCompletedEvent) (*SubscribeResult, error)

	// InvalidateCaches deletes the per-customer and per-product cache entries
	InvalidateCaches(ctx context.Context, customerIDs, productIDs []int64) error
}
