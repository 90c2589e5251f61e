package postgres

import (
	"context"
	"regexp"
	"testing"

	"interest/internal/domain/entity"
	domainerrors "interest/internal/domain/errors"
	"interest/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	insertRelationshipSQL = regexp.QuoteMeta(`INSERT INTO "product_interest_relationships"`) +
		".*" + regexp.QuoteMeta(`ON CONFLICT`) + ".*" + regexp.QuoteMeta(`DO NOTHING RETURNING "relationship_id"`)
	deleteRelationshipSQL = regexp.QuoteMeta(`DELETE FROM "product_interest_relationships" WHERE relationship_id = $1`)
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestRelationshipRepository_DeleteByIDIsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRelationshipRepository(db)

	mock.ExpectExec(deleteRelationshipSQL).WithArgs(int64(42)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(deleteRelationshipSQL).WithArgs(int64(42)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteByID(context.Background(), 42))
	require.NoError(t, repo.DeleteByID(context.Background(), 42))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelationshipRepository_DeleteByIDDriverError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRelationshipRepository(db)

	mock.ExpectExec(deleteRelationshipSQL).WithArgs(int64(42)).WillReturnError(errors.New("connection reset"))

	err := repo.DeleteByID(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete relationship")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelationshipRepository_Create(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		expectErr func(t *testing.T, err error)
		expectID  int64
	}{
		{
			name: "new pair",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertRelationshipSQL).
					WithArgs(int64(3), int64(5), sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"relationship_id"}).AddRow(int64(7)))
			},
			expectID: 7,
		},
		{
			name: "conflict skipped by ON CONFLICT",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertRelationshipSQL).
					WithArgs(int64(3), int64(5), sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"relationship_id"}))
			},
			expectErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, repository.ErrRelationshipExists)
			},
		},
		{
			name: "unique violation from driver",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertRelationshipSQL).
					WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_interest_product_customer" (SQLSTATE 23505)`))
			},
			expectErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, repository.ErrRelationshipExists)
			},
		},
		{
			name: "other driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertRelationshipSQL).WillReturnError(errors.New("connection reset"))
			},
			expectErr: func(t *testing.T, err error) {
				var dbErr *domainerrors.DatabaseExecuteError
				assert.ErrorAs(t, err, &dbErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewRelationshipRepository(db)
			tt.setup(mock)

			relationship := &entity.Relationship{ProductID: 3, CustomerID: 5}
			err := repo.Create(context.Background(), relationship)

			if tt.expectErr != nil {
				require.Error(t, err)
				tt.expectErr(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectID, relationship.ID)
				assert.False(t, relationship.Created.IsZero())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
