package impl

import (
	"context"
	"testing"

	"interest/internal/domain/constants"
	"interest/internal/domain/entity"
	mockRepo "interest/internal/mocks/repository"
	mockSvc "interest/internal/mocks/service"
	mockUsecase "interest/internal/mocks/usecase"
	"interest/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPageHook = "product_page_product-interest-list"

type bulkActionServiceFixtures struct {
	service          usecase.BulkActionUsecase
	relationshipRepo *mockRepo.MockRelationshipRepository
	subscriptions    *mockUsecase.MockSubscriptionUsecase
	publisher        *mockSvc.MockEventPublisher
}

func createTestBulkActionService(t *testing.T) bulkActionServiceFixtures {
	relationshipRepo := mockRepo.NewMockRelationshipRepository(t)
	subscriptions := mockUsecase.NewMockSubscriptionUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewBulkActionService(BulkActionServiceParams{
		RelationshipRepo: relationshipRepo,
		Subscriptions:    subscriptions,
		Publisher:        publisher,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return bulkActionServiceFixtures{
		service:          service,
		relationshipRepo: relationshipRepo,
		subscriptions:    subscriptions,
		publisher:        publisher,
	}
}

func validBulkRequest() *usecase.BulkRequest {
	return &usecase.BulkRequest{
		Action:          constants.BulkActionUnsubscribe,
		PageHook:        testPageHook,
		NonceValid:      true,
		RelationshipIDs: []string{"100", "101"},
		CustomerIDs:     []string{"1"},
		ProductIDs:      []string{"10", "20"},
	}
}

func TestBulkActionService_Process_Unsubscribe(t *testing.T) {
	fx := createTestBulkActionService(t)
	ctx := context.Background()

	fx.relationshipRepo.EXPECT().DeleteByID(ctx, int64(100)).Return(nil)
	fx.relationshipRepo.EXPECT().DeleteByID(ctx, int64(101)).Return(nil)
	fx.subscriptions.EXPECT().InvalidateCaches(ctx, []int64{1}, []int64{10, 20}).Return(nil)
	fx.publisher.EXPECT().
		PublishInterestEvent(ctx, mock.MatchedBy(func(event *entity.InterestEvent) bool {
			return event.Action == entity.InterestActionUnsubscribed &&
				assert.ObjectsAreEqual([]int64{100, 101}, event.RelationshipIDs)
		})).
		Return(nil)

	outcome, err := fx.service.Process(ctx, validBulkRequest())
	require.NoError(t, err)

	assert.Equal(t, usecase.BulkSuccess, outcome.Status)
	assert.Equal(t, 2, outcome.Count)
	assert.Empty(t, outcome.Failed)

	args := outcome.RedirectArgs()
	assert.Equal(t, "1", args.Get("success"))
	assert.Equal(t, "unsubscribed", args.Get("action"))
	assert.Equal(t, "2", args.Get("count"))
}

func TestBulkActionService_Process_BadNonce(t *testing.T) {
	fx := createTestBulkActionService(t)

	req := validBulkRequest()
	req.NonceValid = false

	// No repository, cache or publisher call is expected
	outcome, err := fx.service.Process(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, usecase.BulkBadNonce, outcome.Status)
	args := outcome.RedirectArgs()
	assert.Equal(t, "0", args.Get("success"))
	assert.Equal(t, usecase.ErrCodeBadNonce, args.Get("errcode"))
}

func TestBulkActionService_Process_NoIDs(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
	}{
		{name: "nothing selected", ids: nil},
		{name: "only zeros", ids: []string{"0", "abc", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBulkActionService(t)

			req := validBulkRequest()
			req.RelationshipIDs = tt.ids

			outcome, err := fx.service.Process(context.Background(), req)
			require.NoError(t, err)

			assert.Equal(t, usecase.BulkNoIDs, outcome.Status)
			assert.Equal(t, usecase.ErrCodeNoIDs, outcome.RedirectArgs().Get("errcode"))
		})
	}
}

func TestBulkActionService_Process_Idle(t *testing.T) {
	tests := []struct {
		name   string
		modify func(req *usecase.BulkRequest)
	}{
		{name: "other action", modify: func(req *usecase.BulkRequest) { req.Action = "trash" }},
		{name: "no action", modify: func(req *usecase.BulkRequest) { req.Action = "" }},
		{name: "other page", modify: func(req *usecase.BulkRequest) { req.PageHook = "product_page_other" }},
		{name: "other page with bad token", modify: func(req *usecase.BulkRequest) {
			req.PageHook = "edit.php"
			req.NonceValid = false
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBulkActionService(t)

			req := validBulkRequest()
			tt.modify(req)

			outcome, err := fx.service.Process(context.Background(), req)
			require.NoError(t, err)

			assert.Equal(t, usecase.BulkIdle, outcome.Status)
			assert.False(t, outcome.Redirect())
			assert.Nil(t, outcome.RedirectArgs())
		})
	}
}

func TestBulkActionService_Process_DeduplicatesIDs(t *testing.T) {
	fx := createTestBulkActionService(t)
	ctx := context.Background()

	req := validBulkRequest()
	req.RelationshipIDs = []string{"3", "3", "-3"}
	req.CustomerIDs = []string{"1", "1"}
	req.ProductIDs = []string{"10"}

	fx.relationshipRepo.EXPECT().DeleteByID(ctx, int64(3)).Return(nil).Once()
	fx.subscriptions.EXPECT().InvalidateCaches(ctx, []int64{1}, []int64{10}).Return(nil)
	fx.publisher.EXPECT().PublishInterestEvent(ctx, mock.Anything).Return(nil)

	outcome, err := fx.service.Process(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Count)
}

func TestBulkActionService_Process_PartialFailure(t *testing.T) {
	fx := createTestBulkActionService(t)
	ctx := context.Background()

	fx.relationshipRepo.EXPECT().DeleteByID(ctx, int64(100)).Return(errors.New("deadlock detected"))
	fx.relationshipRepo.EXPECT().DeleteByID(ctx, int64(101)).Return(nil)
	fx.subscriptions.EXPECT().InvalidateCaches(ctx, []int64{1}, []int64{10, 20}).Return(errors.New("redis down"))
	fx.publisher.EXPECT().
		PublishInterestEvent(ctx, mock.MatchedBy(func(event *entity.InterestEvent) bool {
			return assert.ObjectsAreEqual([]int64{101}, event.RelationshipIDs)
		})).
		Return(errors.New("publish failed"))

	outcome, err := fx.service.Process(ctx, validBulkRequest())
	require.NoError(t, err)

	assert.Equal(t, usecase.BulkSuccess, outcome.Status)
	assert.Equal(t, 1, outcome.Count)
	assert.Equal(t, []int64{100}, outcome.Failed)
	assert.Equal(t, "1", outcome.RedirectArgs().Get("count"))
}

func TestBulkActionService_Process_AllFailedSkipsPublish(t *testing.T) {
	fx := createTestBulkActionService(t)
	ctx := context.Background()

	req := validBulkRequest()
	req.RelationshipIDs = []string{"100"}

	fx.relationshipRepo.EXPECT().DeleteByID(ctx, int64(100)).Return(errors.New("deadlock detected"))
	fx.subscriptions.EXPECT().InvalidateCaches(ctx, []int64{1}, []int64{10, 20}).Return(nil)

	outcome, err := fx.service.Process(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, usecase.BulkSuccess, outcome.Status)
	assert.Equal(t, 0, outcome.Count)
}
