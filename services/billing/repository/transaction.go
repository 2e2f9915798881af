package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/apperrors"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/store"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/billing"
)

// billingRepo implements the billing.BillingRepo interface over sqlx
type billingRepo struct{}

// NewBillingRepo creates a new billing repository
func NewBillingRepo() billing.BillingRepo {
	return &billingRepo{}
}

func (r *billingRepo) InsertTransaction(ctx context.Context, tx store.Tx, txn *models.BalanceTransaction) error {
	query := `INSERT INTO balance_transactions (id, driver_id, amount, kind, status, ride_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.ExecContext(ctx, query,
		txn.ID, txn.DriverID, txn.Amount, txn.Kind, txn.Status,
		txn.RideID, txn.Description, txn.CreatedAt)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to insert balance transaction", err)
	}
	return nil
}

func (r *billingRepo) GetPayoutByRide(ctx context.Context, tx store.Tx, rideID uuid.UUID) (*models.BalanceTransaction, error) {
	query := `SELECT id, driver_id, amount, kind, status, ride_id, description, created_at
		FROM balance_transactions
		WHERE ride_id = $1 AND kind = 'PAYOUT' AND status = 'COMPLETED'`

	var txn models.BalanceTransaction
	err := sqlx.GetContext(ctx, tx, &txn, query, rideID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to load ride payout", err)
	}
	return &txn, nil
}

func (r *billingRepo) ApplyDriverSettlement(ctx context.Context, tx store.Tx, driverID uuid.UUID, amount int64, activityDelta int) error {
	query := `UPDATE drivers
		SET balance = balance + $2,
			activity = LEAST(100, GREATEST(0, activity + $3)),
			updated_at = now()
		WHERE id = $1`

	result, err := tx.ExecContext(ctx, query, driverID, amount, activityDelta)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to apply driver settlement", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return apperrors.Newf(apperrors.KindNotFound, "driver %s not found", driverID)
	}
	return nil
}

func (r *billingRepo) RecordDriverRating(ctx context.Context, tx store.Tx, driverID uuid.UUID, rating float64) error {
	// Running average over rating_count; ROUND on numeric is half-up, which
	// matches the three-fractional-digit rating column.
	query := `UPDATE drivers
		SET rating = ROUND((rating * rating_count + $2)::numeric / (rating_count + 1), 3),
			rating_count = rating_count + 1,
			updated_at = now()
		WHERE id = $1`

	result, err := tx.ExecContext(ctx, query, driverID, rating)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to record driver rating", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return apperrors.Newf(apperrors.KindNotFound, "driver %s not found", driverID)
	}
	return nil
}
