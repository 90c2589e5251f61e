package impl

import (
	"context"
	"log/slog"

	deliverycontext "interest/internal/delivery/context"
	"interest/internal/domain/repository"
	"interest/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (s *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// IsProductEnabled reports whether the product carries the interest flag.
// Non-positive IDs never match a product.
func (s *productService) IsProductEnabled(ctx context.Context, productID int64) (bool, error) {
	if productID <= 0 {
		return false, nil
	}

	enabled, err := s.productRepo.IsInterestEnabled(ctx, productID)
	if err != nil {
		s.log(ctx).Error("Failed to read product interest flag", slog.Any("error", err), slog.Int64("product_id", productID))

		return false, errors.Wrap(err, "failed to read product interest flag")
	}

	return enabled, nil
}

// ProductStatus returns the flag as "yes" or "no"
func (s *productService) ProductStatus(ctx context.Context, productID int64) (string, error) {
	enabled, err := s.IsProductEnabled(ctx, productID)
	if err != nil {
		return "", err
	}

	if enabled {
		return usecase.ProductStatusYes, nil
	}

	return usecase.ProductStatusNo, nil
}

// GetEnabledProducts returns the IDs of all products with the flag set
func (s *productService) GetEnabledProducts(ctx context.Context) ([]int64, error) {
	productIDs, err := s.productRepo.FindEnabledProductIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find enabled products")
	}

	return productIDs, nil
}
