// Package store provides the transactional persistence contract for the
// dispatch core: serialisable transactions with bounded retry on
// serialisation conflicts. Row-level locks are taken by repositories with
// SELECT ... FOR UPDATE on the Tx this package hands them.
package store

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/apperrors"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/logger"
)

// Tx is the query surface repositories use inside a transaction
type Tx = sqlx.ExtContext

// Store runs functions inside serialisable transactions
type Store interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// SQLStore implements Store over a sqlx database handle
type SQLStore struct {
	db         *sqlx.DB
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
}

// NewSQLStore creates a store with the given retry budget for
// serialisation conflicts.
func NewSQLStore(db *sqlx.DB, maxRetries int) *SQLStore {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &SQLStore{
		db:         db,
		maxRetries: maxRetries,
		baseDelay:  25 * time.Millisecond,
		maxDelay:   2 * time.Second,
	}
}

// WithTx runs fn in a serialisable transaction. Serialisation conflicts
// (SQLSTATE 40001) and deadlocks (40P01) are retried with exponential
// backoff and jitter; exhaustion surfaces as a Conflict error. Any other
// error, or a context cancellation, rolls the transaction back.
func (s *SQLStore) WithTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	var lastErr error

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.runOnce(ctx, fn)
		if err == nil {
			if attempt > 0 {
				logger.Debug("Transaction committed after retries",
					logger.Int("attempt", attempt+1))
			}
			return nil
		}

		if !isSerializationFailure(err) {
			return err
		}
		lastErr = err

		if attempt == s.maxRetries {
			break
		}

		delay := s.backoff(attempt)
		logger.Debug("Serialisation conflict, retrying transaction",
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return apperrors.Wrap(apperrors.KindConflict, "serialisation retries exhausted", lastErr)
}

func (s *SQLStore) runOnce(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLStore) backoff(attempt int) time.Duration {
	delay := float64(s.baseDelay) * math.Pow(2, float64(attempt))
	if delay > float64(s.maxDelay) {
		delay = float64(s.maxDelay)
	}
	// Up to 10% jitter to avoid lockstep retries.
	delay += delay * 0.1 * rand.Float64()
	return time.Duration(delay)
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
