package usecase

import "context"

// ProductUsecase reads the interest flag of catalog products
type ProductUsecase interface {
	// IsProductEnabled reports whether customers may subscribe to the product
	IsProductEnabled(ctx context.Context, productID int64) (bool, error)

	// ProductStatus returns the flag as "yes" or "no"
	ProductStatus(ctx context.Context, productID int64) (string, error)

	// GetEnabledProducts returns the IDs of all products with the flag set
	GetEnabledProducts(ctx context.Context) ([]int64, error)
}

// Product status values
const (
	ProductStatusYes = "yes"
	ProductStatusNo  = "no"
)
