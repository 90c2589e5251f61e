// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"interest/internal/domain/entity"
	"interest/internal/errors"
)

// Domain-specific errors for relationship persistence.
var (
	// ErrRelationshipExists is returned when the customer already subscribed to the product.
	ErrRelationshipExists = errors.New("relationship already exists")
)

// RelationshipRepository defines the data access for customer/product interest subscriptions.
type RelationshipRepository interface {
	// Create persists a new relationship and fills its ID and Created fields.
	Create(ctx context.Context, relationship *entity.Relationship) error

	// FindCustomersForProduct returns the subscribers of a product, oldest first.
	FindCustomersForProduct(ctx context.Context, productID int64) ([]*entity.CustomerRelationship, error)

	// FindProductsForCustomer returns the IDs of the products a customer subscribed to.
	FindProductsForCustomer(ctx context.Context, customerID int64) ([]int64, error)

	// DeleteByID removes a relationship. Deleting a missing relationship is not an error.
	DeleteByID(ctx context.Context, relationshipID int64) error
}
