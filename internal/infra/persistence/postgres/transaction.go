package postgres

import (
	"context"

	domainerrors "interest/internal/domain/errors"
	"interest/internal/domain/repository"
	"interest/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txFactory hands out repositories bound to one open transaction.
type txFactory struct {
	tx *gorm.DB
}

func (f *txFactory) NewRelationshipRepository() repository.RelationshipRepository {
	return NewRelationshipRepository(f.tx)
}

func (f *txFactory) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

// NewTransactionManager creates a gorm backed TransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside one transaction. Any error from fn rolls it back and is returned with its cause intact.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(domainerrors.ErrTransactionFailed, tx.Error.Error())
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&txFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.WithMessage(err, "rollback failed: "+rbErr.Error())
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(domainerrors.ErrTransactionFailed, err.Error())
	}

	return nil
}
