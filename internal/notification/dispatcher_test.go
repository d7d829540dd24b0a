package notification_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservahub/config"
	"reservahub/infras/otel/mocks"
	"reservahub/internal/notification"
)

func newDispatcher(baseURL string) notification.Dispatcher {
	cfg := &config.Config{}
	cfg.External.NotifyFunction.BaseURL = baseURL
	cfg.External.NotifyFunction.Key = "test-key"
	cfg.External.NotifyFunction.TimeoutSeconds = 2

	return notification.NewDispatcher(cfg, mocks.NewOtel())
}

func TestDispatcher_SendAppointmentConfirmation(t *testing.T) {
	var captured notification.EmailRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sendAppointmentConfirmation", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dispatcher := newDispatcher(server.URL)

	result := dispatcher.SendAppointmentConfirmation(context.Background(), notification.EmailRequest{
		To:         "client@example.com",
		ClientName: "Maria",
	})

	assert.True(t, result.Sent)
	assert.Empty(t, result.Reason)
	assert.NotEmpty(t, result.SentAt)
	assert.Equal(t, "client@example.com", captured.To)
}

func TestDispatcher_StatusTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantReason string
	}{
		{name: "bad request means the recipient is invalid", status: http.StatusBadRequest, wantReason: notification.ReasonInvalidRecipient},
		{name: "unauthorized", status: http.StatusUnauthorized, wantReason: notification.ReasonUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantReason: notification.ReasonForbidden},
		{name: "missing function", status: http.StatusNotFound, wantReason: notification.ReasonFunctionMissing},
		{name: "provider error", status: http.StatusBadGateway, wantReason: notification.ReasonProviderError},
		{name: "unexpected status maps to provider error", status: http.StatusInternalServerError, wantReason: notification.ReasonProviderError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			result := newDispatcher(server.URL).SendAppointmentNotification(context.Background(), notification.EmailRequest{})

			assert.False(t, result.Sent)
			assert.Equal(t, tt.wantReason, result.Reason)
			assert.NotEmpty(t, result.Error)
			assert.Empty(t, result.SentAt)
		})
	}
}

func TestDispatcher_BackendUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close()

	result := newDispatcher(server.URL).SendAppointmentConfirmation(context.Background(), notification.EmailRequest{})

	assert.False(t, result.Sent)
	assert.Equal(t, notification.ReasonBackendUnavailable, result.Reason)
}
