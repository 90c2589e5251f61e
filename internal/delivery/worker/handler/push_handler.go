package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"interest/config"
	deliverycontext "interest/internal/delivery/context"
	"interest/internal/domain/constants"
	"interest/internal/domain/entity"
	"interest/internal/errors"
	"interest/internal/infra/pubsub"
	"interest/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// errMalformedEvent marks payloads that will never be processed successfully
var errMalformedEvent = errors.New("malformed event")

// PushHandler handles Pub/Sub push messages for order and interest events
type PushHandler struct {
	verifyToken    func(req *http.Request) error
	logger         *slog.Logger
	subscriptionUC usecase.SubscriptionUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	SubscriptionUC usecase.SubscriptionUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:         params.Logger,
		subscriptionUC: params.SubscriptionUC,
	}

	// Verify push auth only for Google Pub/Sub outside development
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		audience := params.Config.PubSub.PushAudience
		h.verifyToken = func(req *http.Request) error {
			return verifyPubSubToken(req, audience)
		}
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyToken != nil {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := envelope.Payload()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	eventType := envelope.Attribute(constants.EventTypeAttribute)

	// Priority: message attributes > existing context > new ID
	requestID := h.extractRequestID(ctx, &envelope)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_type", eventType),
		slog.String("message_id", envelope.Message.MessageID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	switch eventType {
	case constants.EventTypeOrderCompleted:
		err = h.processOrderCompleted(ctx, c, data)
	case constants.EventTypeInterestChanged:
		err = h.processInterestChanged(ctx, c, data)
	default:
		// Acknowledge so Pub/Sub does not redeliver an event nobody handles
		reqLogger.Warn("[Worker] Ignoring event with unknown type")

		return c.NoContent(http.StatusOK)
	}

	if err != nil {
		reqLogger.Error("[Worker] Failed to process event",
			slog.Any("error", err),
			slog.Bool("retryable", errors.IsRetryable(err)),
		)

		switch {
		case errors.Is(err, errMalformedEvent):
			return c.NoContent(http.StatusBadRequest)
		case errors.IsRetryable(err):
			// 503 triggers a Pub/Sub retry
			return c.NoContent(http.StatusServiceUnavailable)
		default:
			return c.NoContent(http.StatusOK)
		}
	}

	reqLogger.Info("[Worker] Event processed successfully")

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, the context, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope) string {
	if requestID := envelope.Attribute(constants.RequestIDAttribute); requestID != "" {
		return requestID
	}

	// Set by RequestIDMiddleware from the X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processOrderCompleted subscribes the buyer to the enabled products of the order
func (h *PushHandler) processOrderCompleted(ctx context.Context, c echo.Context, data []byte) error {
	var event entity.OrderCompletedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return errors.Wrap(errMalformedEvent, err.Error())
	}
	if err := c.Validate(&event); err != nil {
		return errors.Wrap(errMalformedEvent, err.Error())
	}

	result, err := h.subscriptionUC.SubscribeFromOrder(ctx, &event)
	if err != nil {
		return errors.Retryable(err)
	}

	created := 0
	if result != nil {
		created = len(result.Created)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Order processed",
		slog.Int64("order_id", event.OrderID),
		slog.Int64("customer_id", event.CustomerID),
		slog.Int("created", created),
	)

	return nil
}

// processInterestChanged drops the cache entries of the affected customers and products
func (h *PushHandler) processInterestChanged(ctx context.Context, c echo.Context, data []byte) error {
	var event entity.InterestEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return errors.Wrap(errMalformedEvent, err.Error())
	}
	if err := c.Validate(&event); err != nil {
		return errors.Wrap(errMalformedEvent, err.Error())
	}

	if err := h.subscriptionUC.InvalidateCaches(ctx, event.CustomerIDs, event.ProductIDs); err != nil {
		return errors.Retryable(err)
	}

	return nil
}

// verifyPubSubToken verifies the OIDC token of Google Pub/Sub push requests.
// An empty audience falls back to the URL of the push endpoint.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
