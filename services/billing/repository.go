package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/store"
)

// BillingRepo writes the balance ledger and the settlement side of driver
// rows. The ledger is append-only: completed rows are never updated.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/isikjon/taxi.wazir-fastapi-sub000/services/billing BillingRepo
type BillingRepo interface {
	InsertTransaction(ctx context.Context, tx store.Tx, txn *models.BalanceTransaction) error
	GetPayoutByRide(ctx context.Context, tx store.Tx, rideID uuid.UUID) (*models.BalanceTransaction, error)
	ApplyDriverSettlement(ctx context.Context, tx store.Tx, driverID uuid.UUID, amount int64, activityDelta int) error
	RecordDriverRating(ctx context.Context, tx store.Tx, driverID uuid.UUID, rating float64) error
}
