package repository

import (
	"context"

	"interest/internal/domain/entity"
	"interest/internal/errors"
)

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository reads catalog products and their interest flag.
type ProductRepository interface {
	// FindEnabledProductIDs returns the IDs of products with the interest flag set.
	FindEnabledProductIDs(ctx context.Context) ([]int64, error)

	// IsInterestEnabled reports whether the product carries a non-empty interest flag.
	IsInterestEnabled(ctx context.Context, productID int64) (bool, error)

	// FindByIDs returns the products with the given IDs keyed by ID. Missing IDs are omitted.
	FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error)
}
