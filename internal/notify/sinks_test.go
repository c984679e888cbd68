package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/pkg/clients"
)

func TestLogSink_Send(t *testing.T) {
	assert.NoError(t, LogSink{}.Send(context.Background(), domain.Event{Type: domain.EventBookingCancelled}))
	assert.Equal(t, "log", LogSink{}.Name())
}

func TestWebhookSink_Send(t *testing.T) {
	event := domain.Event{Type: domain.EventPaymentApproved, UserID: "u1", Amount: 800}
	body, err := json.Marshal(event)
	require.NoError(t, err)

	type reply struct {
		status int
		err    error
	}
	tests := []struct {
		name      string
		replies   []reply
		expectErr bool
	}{
		{
			name:    "Accepted first time",
			replies: []reply{{status: http.StatusOK}},
		},
		{
			name:    "Server error then accepted",
			replies: []reply{{status: http.StatusBadGateway}, {status: http.StatusNoContent}},
		},
		{
			name:    "Transport error then accepted",
			replies: []reply{{err: errors.New("connection refused")}, {status: http.StatusOK}},
		},
		{
			name: "Gives up after three attempts",
			replies: []reply{
				{status: http.StatusServiceUnavailable},
				{status: http.StatusServiceUnavailable},
				{status: http.StatusServiceUnavailable},
			},
			expectErr: true,
		},
		{
			name:      "Client error is not retried",
			replies:   []reply{{status: http.StatusBadRequest}},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := clients.NewMockHTTPClientI(ctrl)
			for _, r := range tt.replies {
				client.EXPECT().PostJSON(gomock.Any(), "http://hook", body).Return(r.status, r.err)
			}

			sink := NewWebhookSink("http://hook", client)
			sink.interval = time.Millisecond

			err := sink.Send(context.Background(), event)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrUnexpectedStatus)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWebhookSink_SendOverHTTP(t *testing.T) {
	received := make(chan domain.Event, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var event domain.Event
		assert.NoError(t, json.Unmarshal(raw, &event))
		received <- event
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	sink := NewWebhookSink(server.URL, clients.NewHTTPClient())
	err := sink.Send(context.Background(), domain.Event{Type: domain.EventCouponRedeemed, UserID: "u1", Amount: 500})
	require.NoError(t, err)

	event := <-received
	assert.Equal(t, domain.EventCouponRedeemed, event.Type)
	assert.Equal(t, int64(500), event.Amount)
}
