package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/pkg/clients"
)

const (
	maxAttempts   = 3
	retryInterval = 200 * time.Millisecond
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

type LogSink struct{}

func (LogSink) Name() string { return "log" }

func (LogSink) Send(_ context.Context, event domain.Event) error {
	zap.L().Info("event",
		zap.String("type", string(event.Type)),
		zap.String("user_id", event.UserID),
		zap.String("session_id", event.SessionID),
		zap.String("reference_id", event.ReferenceID),
		zap.Int64("amount", event.Amount),
		zap.Time("occurred_at", event.OccurredAt),
	)
	return nil
}

// WebhookSink POSTs each event as JSON. Transport errors and 5xx responses
// are retried, other non-2xx responses are not.
type WebhookSink struct {
	url      string
	client   clients.HTTPClientI
	interval time.Duration
}

func NewWebhookSink(url string, client clients.HTTPClientI) *WebhookSink {
	return &WebhookSink{
		url:      url,
		client:   client,
		interval: retryInterval,
	}
}

func (s *WebhookSink) Name() string { return "webhook" }

func (s *WebhookSink) Send(ctx context.Context, event domain.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	backoff := retry.WithMaxRetries(maxAttempts-1, retry.NewExponential(s.interval))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		status, err := s.client.PostJSON(ctx, s.url, body)
		if err != nil {
			return retry.RetryableError(err)
		}
		switch {
		case status >= 200 && status < 300:
			return nil
		case status >= 500 || status == http.StatusTooManyRequests:
			zap.L().Warn("webhook rejected event, retrying", zap.Int("status", status))
			return retry.RetryableError(fmt.Errorf("%w: %d", ErrUnexpectedStatus, status))
		default:
			return fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
		}
	})
}
