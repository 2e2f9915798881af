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
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/rides"
)

// driverRepo implements the rides.DriverRepo interface over sqlx
type driverRepo struct{}

// NewDriverRepo creates a new driver repository
func NewDriverRepo() rides.DriverRepo {
	return &driverRepo{}
}

func (r *driverRepo) GetDriverForUpdate(ctx context.Context, tx store.Tx, id uuid.UUID) (*models.Driver, error) {
	query := `SELECT id, name, phone, tariff, eligible, balance, activity, rating,
			rating_count, created_at, updated_at
		FROM drivers WHERE id = $1 FOR UPDATE`

	var driver models.Driver
	err := sqlx.GetContext(ctx, tx, &driver, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.Newf(apperrors.KindNotFound, "driver %s not found", id)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to load driver", err)
	}
	return &driver, nil
}

func (r *driverRepo) AdjustActivity(ctx context.Context, tx store.Tx, driverID uuid.UUID, delta int) error {
	// Clipping happens in SQL so the CHECK constraint can never fire.
	query := `UPDATE drivers
		SET activity = LEAST(100, GREATEST(0, activity + $2)), updated_at = now()
		WHERE id = $1`

	result, err := tx.ExecContext(ctx, query, driverID, delta)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to adjust driver activity", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return apperrors.Newf(apperrors.KindNotFound, "driver %s not found", driverID)
	}
	return nil
}
