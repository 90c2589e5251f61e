package impl

import (
	"context"
	"log/slog"

	"interest/config"
	deliverycontext "interest/internal/delivery/context"
	"interest/internal/domain/entity"
	"interest/internal/domain/repository"
	"interest/internal/domain/service"
	"interest/internal/infra/metrics"
	"interest/internal/usecase"
	"interest/internal/util"

	"go.uber.org/fx"
)

type bulkActionService struct {
	relationshipRepo repository.RelationshipRepository
	subscriptions    usecase.SubscriptionUsecase
	publisher        service.EventPublisher
	pageHook         string
	logger           *slog.Logger
}

// BulkActionServiceParams holds dependencies for BulkActionService, injected by Fx.
type BulkActionServiceParams struct {
	fx.In

	RelationshipRepo repository.RelationshipRepository
	Subscriptions    usecase.SubscriptionUsecase
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewBulkActionService creates a new bulk action service instance
func NewBulkActionService(params BulkActionServiceParams) usecase.BulkActionUsecase {
	return &bulkActionService{
		relationshipRepo: params.RelationshipRepo,
		subscriptions:    params.Subscriptions,
		publisher:        params.Publisher,
		pageHook:         usecase.SettingsPageHook(params.Config.Admin.MenuSlug),
		logger:           params.Logger,
	}
}

func (s *bulkActionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Process handles one submission. Wrong action or page leave it idle; every
// other path ends in exactly one redirect status.
func (s *bulkActionService) Process(ctx context.Context, req *usecase.BulkRequest) (*usecase.BulkOutcome, error) {
	if req == nil || !usecase.IsBulkUnsubscribe(req.Action) {
		return &usecase.BulkOutcome{Status: usecase.BulkIdle}, nil
	}

	if req.PageHook != s.pageHook {
		return &usecase.BulkOutcome{Status: usecase.BulkIdle}, nil
	}

	if !req.NonceValid {
		s.log(ctx).Warn("Rejected bulk unsubscribe with invalid token")
		metrics.BulkActions.WithLabelValues(metrics.ResultBadNonce).Inc()

		return &usecase.BulkOutcome{Status: usecase.BulkBadNonce}, nil
	}

	relationshipIDs := util.NormalizeIDs(req.RelationshipIDs)
	if len(relationshipIDs) == 0 {
		metrics.BulkActions.WithLabelValues(metrics.ResultNoIDs).Inc()

		return &usecase.BulkOutcome{Status: usecase.BulkNoIDs}, nil
	}

	outcome := &usecase.BulkOutcome{Status: usecase.BulkSuccess}
	deleted := make([]int64, 0, len(relationshipIDs))

	// Each deletion stands alone; a failure is logged and the rest still run
	for _, relationshipID := range relationshipIDs {
		if err := s.relationshipRepo.DeleteByID(ctx, relationshipID); err != nil {
			s.log(ctx).Error("Failed to delete relationship",
				slog.Int64("relationship_id", relationshipID),
				slog.Any("error", err),
			)
			metrics.RelationshipDeleteFailures.Inc()
			outcome.Failed = append(outcome.Failed, relationshipID)

			continue
		}

		deleted = append(deleted, relationshipID)
	}
	outcome.Count = len(deleted)

	customerIDs := util.NormalizeIDs(req.CustomerIDs)
	productIDs := util.NormalizeIDs(req.ProductIDs)
	if err := s.subscriptions.InvalidateCaches(ctx, customerIDs, productIDs); err != nil {
		s.log(ctx).Warn("Failed to invalidate subscription caches", slog.Any("error", err))
	}

	metrics.BulkActions.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.RelationshipsDeleted.Add(float64(outcome.Count))

	if len(deleted) > 0 && s.publisher != nil {
		event := &entity.InterestEvent{
			RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
			Action:          entity.InterestActionUnsubscribed,
			RelationshipIDs: deleted,
			CustomerIDs:     customerIDs,
			ProductIDs:      productIDs,
		}
		if err := s.publisher.PublishInterestEvent(ctx, event); err != nil {
			s.log(ctx).Warn("Failed to publish interest event", slog.Any("error", err))
		}
	}

	s.log(ctx).Info("Bulk unsubscribe processed",
		slog.Int("requested", len(relationshipIDs)),
		slog.Int("deleted", outcome.Count),
		slog.Int("failed", len(outcome.Failed)),
	)

	return outcome, nil
}
