package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/store"
)

// SettlementUC settles a completed ride on the transaction the ride engine
// holds: payout computation, the balance transaction row, the driver balance
// increment, the activity bump, and the rating update commit atomically with
// the ride's terminal transition. A settlement error rolls the whole
// completion back.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/isikjon/taxi.wazir-fastapi-sub000/services/billing SettlementUC
type SettlementUC interface {
	// SettleRide computes the payout for the ride, writes it, and sets
	// ride.ActualPrice; the caller persists the ride row.
	SettleRide(ctx context.Context, tx store.Tx, ride *models.Ride, kind models.CompletionKind, rating float64) (*models.BalanceTransaction, error)

	// PayoutByRide returns the completed payout written for a ride, if any.
	PayoutByRide(ctx context.Context, tx store.Tx, rideID uuid.UUID) (*models.BalanceTransaction, error)
}
