package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"interest/internal/domain/constants"
	"interest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// PushEnvelope is the JSON body a Pub/Sub push subscription POSTs to its endpoint.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushEnvelope wraps data the way the push subscription would deliver it.
func NewPushEnvelope(subscription string, data []byte, attributes map[string]string) *PushEnvelope {
	envelope := &PushEnvelope{Subscription: subscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = attributes
	envelope.Message.MessageID = uuid.NewString()
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return envelope
}

// Payload decodes the base64 message data.
func (e *PushEnvelope) Payload() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode push payload")
	}

	return data, nil
}

func (e *PushEnvelope) Attribute(key string) string {
	return e.Message.Attributes[key]
}

// encodeEvent returns the message body and the attributes shared by all providers.
func encodeEvent(event *entity.InterestEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		constants.EventTypeAttribute: constants.EventTypeInterestChanged,
		constants.ActionAttribute:    event.Action,
	}
	if event.RequestID != "" {
		attributes[constants.RequestIDAttribute] = event.RequestID
	}

	return data, attributes, nil
}
