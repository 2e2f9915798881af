package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/apperrors"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestInsertTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBillingRepo()
	rideID := uuid.New()

	txn := &models.BalanceTransaction{
		ID:          uuid.New(),
		DriverID:    uuid.New(),
		Amount:      400,
		Kind:        models.TransactionKindPayout,
		Status:      models.TransactionStatusCompleted,
		RideID:      &rideID,
		Description: "payout for ride RQ1A2B3C (FULL)",
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(`INSERT INTO balance_transactions`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.InsertTransaction(context.Background(), db, txn))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPayoutByRide(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBillingRepo()
	rideID := uuid.New()
	driverID := uuid.New()

	rows := sqlmock.NewRows([]string{
		"id", "driver_id", "amount", "kind", "status", "ride_id", "description", "created_at",
	}).AddRow(uuid.New().String(), driverID.String(), int64(400), "PAYOUT", "COMPLETED",
		rideID.String(), "payout for ride RQ1A2B3C (FULL)", time.Now())

	mock.ExpectQuery(`FROM balance_transactions`).
		WithArgs(rideID).
		WillReturnRows(rows)

	txn, err := repo.GetPayoutByRide(context.Background(), db, rideID)

	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, int64(400), txn.Amount)
	assert.Equal(t, models.TransactionKindPayout, txn.Kind)
}

func TestGetPayoutByRide_NoneIsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBillingRepo()
	rideID := uuid.New()

	mock.ExpectQuery(`FROM balance_transactions`).
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "driver_id", "amount", "kind", "status", "ride_id", "description", "created_at",
		}))

	txn, err := repo.GetPayoutByRide(context.Background(), db, rideID)

	require.NoError(t, err)
	assert.Nil(t, txn)
}

func TestApplyDriverSettlement(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBillingRepo()
	driverID := uuid.New()

	mock.ExpectExec(`SET balance = balance \+ \$2`).
		WithArgs(driverID, int64(400), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ApplyDriverSettlement(context.Background(), db, driverID, 400, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyDriverSettlement_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBillingRepo()
	driverID := uuid.New()

	mock.ExpectExec(`UPDATE drivers`).
		WithArgs(driverID, int64(400), 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ApplyDriverSettlement(context.Background(), db, driverID, 400, 2)

	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestRecordDriverRating(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBillingRepo()
	driverID := uuid.New()

	mock.ExpectExec(`SET rating = ROUND`).
		WithArgs(driverID, 4.5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RecordDriverRating(context.Background(), db, driverID, 4.5))
	assert.NoError(t, mock.ExpectationsWereMet())
}
