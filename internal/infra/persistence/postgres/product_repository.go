package postgres

import (
	"context"

	"interest/internal/domain/constants"
	"interest/internal/domain/entity"
	"interest/internal/domain/repository"
	"interest/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// enabledMeta scopes product_meta rows to a set interest flag.
func enabledMeta(db *gorm.DB) *gorm.DB {
	return db.Where("meta_key = ? AND meta_value IS NOT NULL AND meta_value <> ''", constants.ProductInterestEnabledMetaKey)
}

// FindEnabledProductIDs returns the IDs of products with the interest flag set.
func (repo *productRepository) FindEnabledProductIDs(ctx context.Context) ([]int64, error) {
	var productIDs []int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductMetaModel{}).
		Scopes(enabledMeta).
		Distinct("product_id").
		Order("product_id ASC").
		Pluck("product_id", &productIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find enabled products")
	}

	return productIDs, nil
}

// IsInterestEnabled reports whether the product carries a non-empty interest flag.
func (repo *productRepository) IsInterestEnabled(ctx context.Context, productID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductMetaModel{}).
		Scopes(enabledMeta).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to read product interest flag")
	}

	return count > 0, nil
}

// FindByIDs returns the products with the given IDs keyed by ID.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error) {
	products := make(map[int64]*entity.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	var enabledIDs []int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductMetaModel{}).
		Scopes(enabledMeta).
		Where("product_id IN ?", ids).
		Pluck("product_id", &enabledIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read product interest flags")
	}

	enabled := make(map[int64]bool, len(enabledIDs))
	for _, id := range enabledIDs {
		enabled[id] = true
	}

	for _, productM := range productModels {
		product := toProductDomain(productM)
		product.InterestEnabled = enabled[product.ID]
		products[product.ID] = product
	}

	return products, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:    data.ID,
		Title: data.Title,
		Slug:  data.Slug,
	}
}
