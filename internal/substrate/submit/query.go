package submit

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Retry runs a read-only node operation under the engine's retry policy. Transient failures
// are retried with the same backoff and attempt bound as submissions.
func (e *Engine) Retry(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	logger := e.logger.With(zap.String("operation", operation))

	var lastErr error
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		if !IsTransient(err) {
			return fmt.Errorf("%s: %w", operation, err)
		}
		lastErr = err

		if attempt == e.maxAttempts {
			break
		}
		logger.Warn("query failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", e.backoff),
			zap.Error(err),
		)
		if err := e.sleep(ctx, e.backoff); err != nil {
			return err
		}
	}
	return fmt.Errorf("%s: %w: %w", operation, ErrAttemptsExhausted, lastErr)
}

// Query is Retry for operations returning a value.
func Query[T any](ctx context.Context, e *Engine, operation string, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := e.Retry(ctx, operation, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// BlockNumber returns the current block height, retrying transient failures.
func (e *Engine) BlockNumber(ctx context.Context) (uint64, error) {
	return Query(ctx, e, "block_number", e.conn.BlockNumber)
}
