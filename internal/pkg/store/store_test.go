package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/apperrors"
)

func newTestStore(t *testing.T, retries int) (*SQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := NewSQLStore(sqlx.NewDb(db, "pgx"), retries)
	s.baseDelay = 0 // no sleeping in tests
	return s, mock
}

func serializationErr() error {
	return &pgconn.PgError{Code: "40001", Message: "could not serialize access"}
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	s, mock := newTestStore(t, 3)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE rides").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.WithTx(context.Background(), func(ctx context.Context, tx Tx) error {
		_, err := tx.ExecContext(ctx, "UPDATE rides SET state = $1", "ASSIGNED")
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RetriesSerializationFailure(t *testing.T) {
	s, mock := newTestStore(t, 3)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE rides").WillReturnError(serializationErr())
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE rides").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	calls := 0
	err := s.WithTx(context.Background(), func(ctx context.Context, tx Tx) error {
		calls++
		_, err := tx.ExecContext(ctx, "UPDATE rides SET state = $1", "ASSIGNED")
		return err
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_SurfacesConflictAfterExhaustion(t *testing.T) {
	s, mock := newTestStore(t, 2)

	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rides").WillReturnError(serializationErr())
		mock.ExpectRollback()
	}

	err := s.WithTx(context.Background(), func(ctx context.Context, tx Tx) error {
		_, err := tx.ExecContext(ctx, "UPDATE rides SET state = $1", "ASSIGNED")
		return err
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_BusinessErrorNotRetried(t *testing.T) {
	s, mock := newTestStore(t, 3)

	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := apperrors.New(apperrors.KindIllegalTransition, "ride already completed")
	calls := 0
	err := s.WithTx(context.Background(), func(ctx context.Context, tx Tx) error {
		calls++
		return sentinel
	})

	assert.True(t, errors.Is(err, sentinel) || err == sentinel)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_ContextCancelled(t *testing.T) {
	s, _ := newTestStore(t, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.WithTx(ctx, func(ctx context.Context, tx Tx) error {
		t.Fatal("fn must not run after cancellation")
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}
