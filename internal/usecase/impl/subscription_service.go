package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "interest/internal/delivery/context"
	"interest/internal/domain/entity"
	"interest/internal/domain/repository"
	"interest/internal/domain/service"
	"interest/internal/errors"
	"interest/internal/infra/metrics"
	"interest/internal/usecase"
	"interest/internal/util"

	"go.uber.org/fx"
)

type subscriptionService struct {
	relationshipRepo repository.RelationshipRepository
	productRepo      repository.ProductRepository
	txManager        repository.TransactionManager
	cache            service.TransientCache
	publisher        service.EventPublisher
	logger           *slog.Logger
	now              func() time.Time
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	RelationshipRepo repository.RelationshipRepository
	ProductRepo      repository.ProductRepository
	TxManager        repository.TransactionManager
	Cache            service.TransientCache
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		relationshipRepo: params.RelationshipRepo,
		productRepo:      params.ProductRepo,
		txManager:        params.TxManager,
		cache:            params.Cache,
		publisher:        params.Publisher,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (s *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetCustomersForProduct returns the subscribers of a product through the per-product cache
func (s *subscriptionService) GetCustomersForProduct(ctx context.Context, productID int64) ([]*entity.CustomerRelationship, error) {
	key := service.CustomersByProductKey(productID)

	var customers []*entity.CustomerRelationship
	if s.cacheGet(ctx, metrics.CacheProduct, key, &customers) {
		return customers, nil
	}

	customers, err := s.relationshipRepo.FindCustomersForProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customers for product")
	}

	s.cacheSet(ctx, key, customers)

	return customers, nil
}

// GetProductsForCustomer returns the products of a customer through the per-customer cache
func (s *subscriptionService) GetProductsForCustomer(ctx context.Context, customerID int64) ([]int64, error) {
	key := service.ProductsByCustomerKey(customerID)

	var productIDs []int64
	if s.cacheGet(ctx, metrics.CacheCustomer, key, &productIDs) {
		return productIDs, nil
	}

	productIDs, err := s.relationshipRepo.FindProductsForCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products for customer")
	}

	s.cacheSet(ctx, key, productIDs)

	return productIDs, nil
}

// cacheGet reports a hit. Cache failures are logged and read as a miss.
func (s *subscriptionService) cacheGet(ctx context.Context, namespace, key string, dst any) bool {
	err := s.cache.Get(ctx, key, dst)
	if err == nil {
		metrics.CacheLookups.WithLabelValues(namespace, "hit").Inc()

		return true
	}

	metrics.CacheLookups.WithLabelValues(namespace, "miss").Inc()
	if !errors.Is(err, service.ErrCacheMiss) {
		s.log(ctx).Warn("Cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	return false
}

func (s *subscriptionService) cacheSet(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value, 0); err != nil {
		s.log(ctx).Warn("Cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

// SubscribeFromOrder subscribes the buyer to every interest-enabled product of the order
func (s *subscriptionService) SubscribeFromOrder(ctx context.Context, order *entity.OrderCompletedEvent) (*usecase.SubscribeResult, error) {
	if order == nil || order.CustomerID <= 0 {
		return nil, nil
	}

	enabled, err := s.productRepo.FindEnabledProductIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find enabled products")
	}

	productIDs, ok := util.FilterCartForEnabled(order.Items, enabled)
	if !ok {
		s.log(ctx).Debug("Order has no interest-enabled products",
			slog.Int64("order_id", order.OrderID),
			slog.Int64("customer_id", order.CustomerID),
		)

		return nil, nil
	}

	result := &usecase.SubscribeResult{}
	created := s.now()

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		relationshipRepo := factory.NewRelationshipRepository()

		for _, productID := range productIDs {
			relationship := &entity.Relationship{
				ProductID:  productID,
				CustomerID: order.CustomerID,
				Created:    created,
			}

			if err := relationshipRepo.Create(ctx, relationship); err != nil {
				if errors.Is(err, repository.ErrRelationshipExists) {
					result.AlreadyExisting = append(result.AlreadyExisting, productID)

					continue
				}

				return errors.Wrapf(err, "failed to subscribe customer %d to product %d", order.CustomerID, productID)
			}

			result.Created = append(result.Created, relationship)
		}

		return nil
	})
	if err != nil {
		s.log(ctx).Error("Failed to subscribe from order", slog.Any("error", err), slog.Int64("order_id", order.OrderID))

		return nil, err
	}

	metrics.RelationshipsCreated.Add(float64(len(result.Created)))

	if len(result.Created) == 0 {
		return result, nil
	}

	if err := s.InvalidateCaches(ctx, []int64{order.CustomerID}, productIDs); err != nil {
		s.log(ctx).Warn("Failed to invalidate caches after subscribe", slog.Any("error", err))
	}

	relationshipIDs := make([]int64, 0, len(result.Created))
	subscribedProducts := make([]int64, 0, len(result.Created))
	for _, relationship := range result.Created {
		relationshipIDs = append(relationshipIDs, relationship.ID)
		subscribedProducts = append(subscribedProducts, relationship.ProductID)
	}

	s.publish(ctx, &entity.InterestEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		Action:          entity.InterestActionSubscribed,
		RelationshipIDs: relationshipIDs,
		CustomerIDs:     []int64{order.CustomerID},
		ProductIDs:      subscribedProducts,
	})

	s.log(ctx).Info("Subscribed customer from order",
		slog.Int64("order_id", order.OrderID),
		slog.Int64("customer_id", order.CustomerID),
		slog.Int("created", len(result.Created)),
		slog.Int("already_existing", len(result.AlreadyExisting)),
	)

	return result, nil
}

// InvalidateCaches deletes the cache entry of every given customer and product
func (s *subscriptionService) InvalidateCaches(ctx context.Context, customerIDs, productIDs []int64) error {
	var errs []error

	for _, customerID := range customerIDs {
		if err := s.cache.Delete(ctx, service.ProductsByCustomerKey(customerID)); err != nil {
			errs = append(errs, err)

			continue
		}
		metrics.CacheInvalidations.WithLabelValues(metrics.CacheCustomer).Inc()
	}

	for _, productID := range productIDs {
		if err := s.cache.Delete(ctx, service.CustomersByProductKey(productID)); err != nil {
			errs = append(errs, err)

			continue
		}
		metrics.CacheInvalidations.WithLabelValues(metrics.CacheProduct).Inc()
	}

	return errors.Join(errs...)
}

func (s *subscriptionService) publish(ctx context.Context, event *entity.InterestEvent) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishInterestEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish interest event", slog.String("action", event.Action), slog.Any("error", err))
	}
}
