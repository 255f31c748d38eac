package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var received PushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "orders", newTestLogger())
	defer publisher.Close()

	event := &service.OrderEvent{
		RequestID:   "req-123",
		EventType:   "order.created",
		OrderID:     77,
		UserID:      5,
		TotalAmount: 24.00,
		Status:      "completed",
		LineCount:   2,
		OccurredAt:  time.Now().UTC(),
	}

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "order.created", received.Message.Attributes["event_type"])
	assert.Equal(t, "77", received.Message.Attributes["order_id"])
	assert.Equal(t, "req-123", received.Message.Attributes["request_id"])

	payload, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, int64(77), decoded.OrderID)
	assert.Equal(t, 24.00, decoded.TotalAmount)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "subscriber down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "orders", newTestLogger())
	defer publisher.Close()

	err := publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{
		EventType: "order.created",
		OrderID:   1,
	})

	require.Error(t, err)
}

func TestLocalHTTPPublisher_UnreachableEndpoint(t *testing.T) {
	publisher := NewLocalHTTPPublisher("http://127.0.0.1:1/push", "orders", newTestLogger())
	defer publisher.Close()

	err := publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{
		EventType: "order.created",
		OrderID:   1,
	})

	require.Error(t, err)
}
