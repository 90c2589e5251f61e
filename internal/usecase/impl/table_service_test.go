package impl

import (
	"context"
	"testing"
	"time"

	"interest/internal/domain/entity"
	"interest/internal/domain/repository"
	"interest/internal/listtable"
	mockRepo "interest/internal/mocks/repository"
	mockUsecase "interest/internal/mocks/usecase"
	"interest/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tableServiceFixtures struct {
	service       usecase.TableUsecase
	hooks         *usecase.TableHooks
	productRepo   *mockRepo.MockProductRepository
	customerRepo  *mockRepo.MockCustomerRepository
	subscriptions *mockUsecase.MockSubscriptionUsecase
}

func createTestTableService(t *testing.T) tableServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	subscriptions := mockUsecase.NewMockSubscriptionUsecase(t)
	hooks := usecase.NewTableHooks()

	service := NewTableService(TableServiceParams{
		ProductRepo:   productRepo,
		CustomerRepo:  customerRepo,
		Subscriptions: subscriptions,
		Hooks:         hooks,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return tableServiceFixtures{
		service:       service,
		hooks:         hooks,
		productRepo:   productRepo,
		customerRepo:  customerRepo,
		subscriptions: subscriptions,
	}
}

var (
	signupT1 = time.Date(2024, time.January, 5, 8, 0, 0, 0, time.UTC)
	signupT2 = time.Date(2024, time.February, 9, 14, 30, 0, 0, time.UTC)
)

func testProducts() map[int64]*entity.Product {
	return map[int64]*entity.Product{
		10: {ID: 10, Title: "Walnut Desk", InterestEnabled: true},
		20: {ID: 20, Title: "Oak Chair", InterestEnabled: true},
	}
}

func TestTableService_TableData_SingleSubscriber(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindEnabledProductIDs(ctx).Return([]int64{10, 20}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []int64{10, 20}).Return(testProducts(), nil)
	fx.subscriptions.EXPECT().GetCustomersForProduct(ctx, int64(10)).Return([]*entity.CustomerRelationship{
		{CustomerID: 1, RelationshipID: 100, Created: signupT1},
	}, nil)
	fx.subscriptions.EXPECT().GetCustomersForProduct(ctx, int64(20)).Return([]*entity.CustomerRelationship{}, nil)
	fx.customerRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Customer{
		ID:          1,
		UserLogin:   "alice",
		DisplayName: "Alice Chen",
		Email:       "alice@example.com",
	}, nil)

	rows, err := fx.service.TableData(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, int64(100), row.ID)
	assert.Equal(t, int64(10), row.ProductID)
	assert.Equal(t, int64(1), row.CustomerID)
	assert.Equal(t, signupT1, row.SignupDate)
	assert.Equal(t, "alice", row.Username)
	assert.Equal(t, "Alice Chen", row.DisplayName)
	assert.Equal(t, "alice@example.com", row.Email)
	assert.Equal(t, "Walnut Desk", row.ProductName)
}

func TestTableService_TableData_NoEnabledProducts(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindEnabledProductIDs(ctx).Return([]int64{}, nil)

	rows, err := fx.service.TableData(ctx)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestTableService_TableData_SkipsMissingProfile(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindEnabledProductIDs(ctx).Return([]int64{10, 20}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []int64{10, 20}).Return(testProducts(), nil)
	fx.subscriptions.EXPECT().GetCustomersForProduct(ctx, int64(10)).Return([]*entity.CustomerRelationship{
		{CustomerID: 1, RelationshipID: 100, Created: signupT1},
		{CustomerID: 2, RelationshipID: 101, Created: signupT2},
	}, nil)
	fx.subscriptions.EXPECT().GetCustomersForProduct(ctx, int64(20)).Return([]*entity.CustomerRelationship{
		{CustomerID: 2, RelationshipID: 102, Created: signupT2},
	}, nil)
	fx.customerRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Customer{ID: 1, DisplayName: "Alice"}, nil)

	// The missing profile is looked up once per request
	fx.customerRepo.EXPECT().FindByID(ctx, int64(2)).Return(nil, repository.ErrCustomerNotFound).Once()

	rows, err := fx.service.TableData(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(100), rows[0].ID)
}

func TestTableService_TableData_ProfileLookupErrorFails(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindEnabledProductIDs(ctx).Return([]int64{10}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []int64{10}).Return(testProducts(), nil)
	fx.subscriptions.EXPECT().GetCustomersForProduct(ctx, int64(10)).Return([]*entity.CustomerRelationship{
		{CustomerID: 1, RelationshipID: 100, Created: signupT1},
	}, nil)
	fx.customerRepo.EXPECT().FindByID(ctx, int64(1)).Return(nil, errors.New("connection reset"))

	rows, err := fx.service.TableData(ctx)
	require.Error(t, err)
	assert.Nil(t, rows)
}

func TestTableService_TableData_EnabledProductsError(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindEnabledProductIDs(ctx).Return(nil, errors.New("query timeout"))

	_, err := fx.service.TableData(ctx)
	require.Error(t, err)
}

func TestTableService_TableData_Hooks(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.hooks.Row.Add(func(row *entity.Row) *entity.Row {
		if row.CustomerID == 2 {
			return nil
		}
		row.DisplayName += " (VIP)"

		return row
	})
	fx.hooks.List.Add(func(rows []*entity.Row) []*entity.Row {
		return append(rows, &entity.Row{ID: 999})
	})

	fx.productRepo.EXPECT().FindEnabledProductIDs(ctx).Return([]int64{10}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []int64{10}).Return(testProducts(), nil)
	fx.subscriptions.EXPECT().GetCustomersForProduct(ctx, int64(10)).Return([]*entity.CustomerRelationship{
		{CustomerID: 1, RelationshipID: 100, Created: signupT1},
		{CustomerID: 2, RelationshipID: 101, Created: signupT2},
	}, nil)
	fx.customerRepo.EXPECT().FindByID(ctx, mock.AnythingOfType("int64")).
		RunAndReturn(func(_ context.Context, id int64) (*entity.Customer, error) {
			return &entity.Customer{ID: id, DisplayName: "Customer"}, nil
		})

	rows, err := fx.service.TableData(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Customer (VIP)", rows[0].DisplayName)
	assert.Equal(t, int64(999), rows[1].ID)
}

func TestTableService_ListPage(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	subscribers := make([]*entity.CustomerRelationship, 0, 12)
	for i := range 12 {
		subscribers = append(subscribers, &entity.CustomerRelationship{
			CustomerID:     1,
			RelationshipID: int64(100 + i),
			Created:        signupT1.Add(time.Duration(i) * time.Hour),
		})
	}

	fx.productRepo.EXPECT().FindEnabledProductIDs(ctx).Return([]int64{10}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []int64{10}).Return(testProducts(), nil)
	fx.subscriptions.EXPECT().GetCustomersForProduct(ctx, int64(10)).Return(subscribers, nil)
	fx.customerRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Customer{ID: 1, DisplayName: "Alice"}, nil)

	page, err := fx.service.ListPage(ctx, listtable.Query{OrderBy: "unknown", Order: "sideways", Page: 2})
	require.NoError(t, err)

	assert.Equal(t, usecase.ColumnSignupDate, page.OrderBy)
	assert.Equal(t, listtable.OrderAsc, page.Order)
	assert.Equal(t, 12, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(110), page.Items[0].ID)
	assert.Equal(t, int64(111), page.Items[1].ID)
}

func TestTableService_SortedRows(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindEnabledProductIDs(ctx).Return([]int64{10, 20}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []int64{10, 20}).Return(testProducts(), nil)
	fx.subscriptions.EXPECT().GetCustomersForProduct(ctx, int64(10)).Return([]*entity.CustomerRelationship{
		{CustomerID: 1, RelationshipID: 100, Created: signupT1},
	}, nil)
	fx.subscriptions.EXPECT().GetCustomersForProduct(ctx, int64(20)).Return([]*entity.CustomerRelationship{
		{CustomerID: 1, RelationshipID: 101, Created: signupT2},
	}, nil)
	fx.customerRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Customer{ID: 1, DisplayName: "Alice"}, nil).Once()

	rows, err := fx.service.SortedRows(ctx, listtable.Query{OrderBy: usecase.ColumnProductName, Order: listtable.OrderAsc})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Oak Chair", rows[0].ProductName)
	assert.Equal(t, "Walnut Desk", rows[1].ProductName)
}
