package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"interest/internal/domain/constants"
	"interest/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishInterestEvent(t *testing.T) {
	var received PushEnvelope
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, localSubscription(""), slog.New(slog.NewTextHandler(io.Discard, nil)))

	event := &entity.InterestEvent{
		RequestID:       "req-1",
		Action:          entity.InterestActionUnsubscribed,
		RelationshipIDs: []int64{100, 101},
		CustomerIDs:     []int64{1},
		ProductIDs:      []int64{10, 20},
	}
	require.NoError(t, publisher.PublishInterestEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "projects/local/subscriptions/product-interest-events-push", received.Subscription)
	assert.Equal(t, constants.EventTypeInterestChanged, received.Message.Attributes[constants.EventTypeAttribute])
	assert.Equal(t, entity.InterestActionUnsubscribed, received.Message.Attributes["action"])

	data, err := received.Payload()
	require.NoError(t, err)

	var decoded entity.InterestEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, localSubscription(""), slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishInterestEvent(context.Background(), &entity.InterestEvent{Action: entity.InterestActionSubscribed})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestPushEnvelope_Payload(t *testing.T) {
	envelope := NewPushEnvelope("sub", []byte(`{"order_id":1}`), map[string]string{constants.EventTypeAttribute: constants.EventTypeOrderCompleted})

	data, err := envelope.Payload()
	require.NoError(t, err)
	assert.JSONEq(t, `{"order_id":1}`, string(data))
	assert.Equal(t, constants.EventTypeOrderCompleted, envelope.Attribute(constants.EventTypeAttribute))
	assert.Empty(t, envelope.Attribute(constants.RequestIDAttribute))

	envelope.Message.Data = "%%%"
	_, err = envelope.Payload()
	assert.Error(t, err)
}
