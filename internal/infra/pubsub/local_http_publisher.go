package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "interest/internal/delivery/context"
	"interest/internal/domain/entity"
	"interest/internal/domain/service"

	"github.com/pkg/errors"
)

const localPushTimeout = 10 * time.Second

// localHTTPPublisher posts events straight to the worker's push endpoint,
// wrapped in the same envelope a Pub/Sub push subscription would send.
type localHTTPPublisher struct {
	endpoint     string
	subscription string
	httpClient   *http.Client
	logger       *slog.Logger
}

func NewLocalHTTPPublisher(endpoint, subscription string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:     endpoint,
		subscription: subscription,
		httpClient:   &http.Client{Timeout: localPushTimeout},
		logger:       logger,
	}
}

func (p *localHTTPPublisher) PublishInterestEvent(ctx context.Context, event *entity.InterestEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	envelope := NewPushEnvelope(p.subscription, data, attributes)
	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push to %s", p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("[LocalPubSub] Event pushed",
		slog.String("message_id", envelope.Message.MessageID),
		slog.String("action", event.Action),
		slog.Int("relationship_count", len(event.RelationshipIDs)),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
