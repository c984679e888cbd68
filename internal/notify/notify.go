// Package notify delivers domain events to sinks once the operation that
// produced them has committed. Delivery never blocks or fails the caller.
package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/mentorhub/internal/domain"
)

//go:generate mockgen -source=notify.go -destination=mock_notify.go -package=notify

const deliveryTimeout = 10 * time.Second

type Sink interface {
	Name() string
	Send(ctx context.Context, event domain.Event) error
}

type Notifier struct {
	pool    WorkerPoolI
	sinks   []Sink
	timeout time.Duration
}

func New(pool WorkerPoolI, sinks ...Sink) *Notifier {
	return &Notifier{
		pool:    pool,
		sinks:   sinks,
		timeout: deliveryTimeout,
	}
}

// Notify queues the event for delivery. When the queue is full the event is
// dropped and logged.
func (n *Notifier) Notify(ctx context.Context, event domain.Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	ctx = context.WithoutCancel(ctx)

	accepted := n.pool.TryAddTask(func() error {
		return n.deliver(ctx, event)
	})
	if !accepted {
		zap.L().Warn("notification dropped", zap.String("type", string(event.Type)))
	}
}

func (n *Notifier) deliver(ctx context.Context, event domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	var g errgroup.Group
	for _, sink := range n.sinks {
		sink := sink
		g.Go(func() error {
			if err := sink.Send(ctx, event); err != nil {
				zap.L().Error("notification delivery failed",
					zap.String("sink", sink.Name()),
					zap.String("type", string(event.Type)),
					zap.Error(err))
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// Close waits for queued notifications to be delivered.
func (n *Notifier) Close() {
	n.pool.Close()
}
