package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

//go:generate mockgen -source=tx.go -destination=mock_tx.go -package=pg

type TransactionalFn func(ctx context.Context) error

// TXManager runs fn inside one database transaction. A Begin issued from
// inside fn joins the outer transaction instead of opening a new one.
type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type beginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

const defaultRetryDelay = 10 * time.Millisecond

type TxManager struct {
	pool       beginner
	maxRetries uint64
	retryDelay time.Duration
}

func NewTXManager(pool beginner, maxRetries uint64) *TxManager {
	return &TxManager{
		pool:       pool,
		maxRetries: maxRetries,
		retryDelay: defaultRetryDelay,
	}
}

func (m *TxManager) Begin(ctx context.Context, fn TransactionalFn) error {
	if _, ok := TxFromContext(ctx); ok {
		return fn(ctx)
	}

	backoff := retry.WithMaxRetries(m.maxRetries, retry.NewExponential(m.retryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := m.run(ctx, fn)
		if IsRetryable(err) {
			zap.L().Debug("transaction conflict, retrying", zap.Error(err))
			return retry.RetryableError(err)
		}
		return err
	})
	if IsRetryable(err) {
		zap.L().Warn("transaction retries exhausted", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}

func (m *TxManager) run(ctx context.Context, fn TransactionalFn) (err error) {
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			zap.L().Error("failed to rollback transaction", zap.Error(rbErr))
		}
	}()

	if err = fn(withTx(ctx, tx)); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
