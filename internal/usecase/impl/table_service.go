package impl

import (
	"context"
	"log/slog"

	"interest/config"
	deliverycontext "interest/internal/delivery/context"
	"interest/internal/domain/entity"
	"interest/internal/domain/repository"
	"interest/internal/errors"
	"interest/internal/listtable"
	"interest/internal/usecase"

	"go.uber.org/fx"
)

type tableService struct {
	productRepo   repository.ProductRepository
	customerRepo  repository.CustomerRepository
	subscriptions usecase.SubscriptionUsecase
	hooks         *usecase.TableHooks
	table         *listtable.Table[*entity.Row]
	logger        *slog.Logger
}

// TableServiceParams holds dependencies for TableService, injected by Fx.
type TableServiceParams struct {
	fx.In

	ProductRepo   repository.ProductRepository
	CustomerRepo  repository.CustomerRepository
	Subscriptions usecase.SubscriptionUsecase
	Hooks         *usecase.TableHooks `optional:"true"`
	Config        *config.Config
	Logger        *slog.Logger
}

// NewTableService creates a new table service instance
func NewTableService(params TableServiceParams) usecase.TableUsecase {
	hooks := params.Hooks
	if hooks == nil {
		hooks = usecase.NewTableHooks()
	}

	perPage := 0
	if params.Config != nil && params.Config.Admin != nil {
		perPage = params.Config.Admin.PerPage
	}

	return &tableService{
		productRepo:   params.ProductRepo,
		customerRepo:  params.CustomerRepo,
		subscriptions: params.Subscriptions,
		hooks:         hooks,
		table:         usecase.NewRowTable(perPage),
		logger:        params.Logger,
	}
}

func (s *tableService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// TableData joins every enabled product's subscribers with their profiles.
// Subscribers without a profile are skipped.
func (s *tableService) TableData(ctx context.Context) ([]*entity.Row, error) {
	productIDs, err := s.productRepo.FindEnabledProductIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find enabled products")
	}

	if len(productIDs) == 0 {
		return s.hooks.List.Apply([]*entity.Row{}), nil
	}

	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	customers := make(map[int64]*entity.Customer)
	rows := make([]*entity.Row, 0)

	for _, productID := range productIDs {
		subscribers, err := s.subscriptions.GetCustomersForProduct(ctx, productID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load subscribers of product %d", productID)
		}

		for _, subscriber := range subscribers {
			customer, err := s.customer(ctx, customers, subscriber.CustomerID)
			if err != nil {
				if errors.Is(err, repository.ErrCustomerNotFound) {
					s.log(ctx).Warn("Skipping subscription without customer profile",
						slog.Int64("relationship_id", subscriber.RelationshipID),
						slog.Int64("customer_id", subscriber.CustomerID),
						slog.Int64("product_id", productID),
					)

					continue
				}

				return nil, errors.Wrapf(err, "failed to load customer %d", subscriber.CustomerID)
			}

			row := &entity.Row{
				ID:          subscriber.RelationshipID,
				ProductID:   productID,
				CustomerID:  subscriber.CustomerID,
				Username:    customer.UserLogin,
				DisplayName: customer.DisplayName,
				Email:       customer.Email,
				SignupDate:  subscriber.Created,
			}
			if product, ok := products[productID]; ok {
				row.ProductName = product.Title
				row.ProductSlug = product.Slug
			}

			if row = s.hooks.Row.Apply(row); row != nil {
				rows = append(rows, row)
			}
		}
	}

	return s.hooks.List.Apply(rows), nil
}

// customer resolves a profile once per request
func (s *tableService) customer(ctx context.Context, seen map[int64]*entity.Customer, customerID int64) (*entity.Customer, error) {
	if customer, ok := seen[customerID]; ok {
		if customer == nil {
			return nil, repository.ErrCustomerNotFound
		}

		return customer, nil
	}

	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			seen[customerID] = nil
		}

		return nil, err
	}

	seen[customerID] = customer

	return customer, nil
}

// ListPage returns the requested page of the sorted rows
func (s *tableService) ListPage(ctx context.Context, query listtable.Query) (*listtable.Page[*entity.Row], error) {
	rows, err := s.TableData(ctx)
	if err != nil {
		return nil, err
	}

	return s.table.Build(rows, query), nil
}

// SortedRows returns all rows in the requested order
func (s *tableService) SortedRows(ctx context.Context, query listtable.Query) ([]*entity.Row, error) {
	rows, err := s.TableData(ctx)
	if err != nil {
		return nil, err
	}

	query = s.table.Normalize(query)

	return s.table.Sort(rows, query.OrderBy, query.Order), nil
}
