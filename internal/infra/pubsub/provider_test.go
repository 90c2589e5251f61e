package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"interest/config"
	"interest/internal/domain/constants"
	"interest/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePubSubConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "missing section"},
		{name: "noop", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderNoop}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: "project ID"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topic ID"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePubSubConfig(tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	noop, err := newPublisher(context.Background(), nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, noop)
	assert.NoError(t, noop.PublishInterestEvent(context.Background(), &entity.InterestEvent{Action: entity.InterestActionSubscribed}))

	local, err := newPublisher(context.Background(), &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: "http://localhost:8081/push",
		TopicID:       "interest",
	}, logger)
	require.NoError(t, err)
	assert.Equal(t, "projects/local/subscriptions/interest-push", local.(*localHTTPPublisher).subscription)
	assert.NoError(t, local.Close())
}
