// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"interest/internal/domain/entity"
	domainerrors "interest/internal/domain/errors"
	"interest/internal/domain/repository"
	"interest/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// relationshipRepository implements the repository.RelationshipRepository interface.
type relationshipRepository struct {
	db *gorm.DB
}

// NewRelationshipRepository is the constructor for relationshipRepository.
func NewRelationshipRepository(db *gorm.DB) repository.RelationshipRepository {
	return &relationshipRepository{
		db: db,
	}
}

// Create persists a new relationship.
func (repo *relationshipRepository) Create(ctx context.Context, relationship *entity.Relationship) error {
	relationshipM := fromRelationshipDomain(relationship)

	// ON CONFLICT keeps a surrounding transaction usable when the pair already exists
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "customer_id"}},
			DoNothing: true,
		}).
		Create(relationshipM)

	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrRelationshipExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required relationship information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create relationship")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRelationshipExists
	}

	relationship.ID = relationshipM.RelationshipID
	relationship.Created = relationshipM.Created

	return nil
}

// FindCustomersForProduct returns the subscribers of a product, oldest first.
func (repo *relationshipRepository) FindCustomersForProduct(ctx context.Context, productID int64) ([]*entity.CustomerRelationship, error) {
	var relationshipModels []*model.RelationshipModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created ASC, relationship_id ASC").
		Find(&relationshipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find customers for product")
	}

	customers := make([]*entity.CustomerRelationship, 0, len(relationshipModels))
	for _, relationshipM := range relationshipModels {
		customers = append(customers, &entity.CustomerRelationship{
			CustomerID:     relationshipM.CustomerID,
			RelationshipID: relationshipM.RelationshipID,
			Created:        relationshipM.Created,
		})
	}

	return customers, nil
}

// FindProductsForCustomer returns the product IDs a customer subscribed to.
func (repo *relationshipRepository) FindProductsForCustomer(ctx context.Context, customerID int64) ([]int64, error) {
	var productIDs []int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RelationshipModel{}).
		Where("customer_id = ?", customerID).
		Order("product_id ASC").
		Pluck("product_id", &productIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products for customer")
	}

	return productIDs, nil
}

// DeleteByID removes a relationship. Zero affected rows means it was already gone.
func (repo *relationshipRepository) DeleteByID(ctx context.Context, relationshipID int64) error {
	result := repo.db.WithContext(ctx).
		Where("relationship_id = ?", relationshipID).
		Delete(&model.RelationshipModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete relationship")
	}

	return nil
}

// --- Mapper Functions ---

// fromRelationshipDomain converts a domain Relationship entity to a GORM RelationshipModel.
func fromRelationshipDomain(data *entity.Relationship) *model.RelationshipModel {
	if data == nil {
		return nil
	}

	return &model.RelationshipModel{
		RelationshipID: data.ID,
		ProductID:      data.ProductID,
		CustomerID:     data.CustomerID,
		Created:        data.Created,
	}
}
