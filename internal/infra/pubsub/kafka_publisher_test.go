package pubsub

import (
	"context"
	"encoding/json"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
	deadline bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	_, w.deadline = ctx.Deadline()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

func headerValue(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}

	return ""
}

func TestKafkaPublisher_PublishOrderEvent(t *testing.T) {
	writer := &fakeWriter{}
	publisher := newKafkaPublisher(writer, "storefront.orders", discardLogger())

	event := &service.OrderEvent{
		RequestID: "req-9",
		Type:      constants.EventOrderDelivery,
		OrderID:   15,
		UserID:    2,
	}
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.True(t, writer.deadline)
	assert.Equal(t, "15", string(msg.Key))
	assert.Equal(t, constants.EventOrderDelivery, headerValue(msg, "event_type"))
	assert.Equal(t, "req-9", headerValue(msg, "request_id"))

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, uint(15), decoded.OrderID)
	assert.Equal(t, uint(2), decoded.UserID)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker unavailable")}
	publisher := newKafkaPublisher(writer, "storefront.orders", discardLogger())

	err := publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{OrderID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storefront.orders")
	assert.Contains(t, err.Error(), "broker unavailable")
}

func TestKafkaPublisher_Close(t *testing.T) {
	writer := &fakeWriter{}
	publisher := newKafkaPublisher(writer, "t", discardLogger())

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}
