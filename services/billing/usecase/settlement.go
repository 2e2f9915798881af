package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/apperrors"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/store"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/billing"
)

// settlementUC implements the billing.SettlementUC interface
type settlementUC struct {
	cfg  *models.Config
	repo billing.BillingRepo
	now  func() time.Time
}

// NewSettlementUC creates the settlement usecase
func NewSettlementUC(cfg *models.Config, repo billing.BillingRepo) billing.SettlementUC {
	return &settlementUC{cfg: cfg, repo: repo, now: time.Now}
}

// SettleRide writes the payout ledger row, credits the driver's balance,
// applies the completion activity bump, and folds in the rider's rating if
// one was given. Everything rides on the caller's transaction: an error here
// rolls the completion back with it. ride.ActualPrice is set on the passed
// struct; persisting the ride row stays with the caller.
func (uc *settlementUC) SettleRide(ctx context.Context, tx store.Tx, ride *models.Ride, kind models.CompletionKind, rating float64) (*models.BalanceTransaction, error) {
	if ride.DriverID == nil {
		return nil, apperrors.New(apperrors.KindInternal, "cannot settle a ride without a driver")
	}

	amount := billing.PayoutFor(ride, kind, uc.cfg.Dispatch.MinPaymentPct)
	ride.ActualPrice = &amount

	txn := &models.BalanceTransaction{
		ID:          uuid.New(),
		DriverID:    *ride.DriverID,
		Amount:      amount,
		Kind:        models.TransactionKindPayout,
		Status:      models.TransactionStatusCompleted,
		RideID:      &ride.ID,
		Description: fmt.Sprintf("payout for ride %s (%s)", ride.Number, kind),
		CreatedAt:   uc.now(),
	}
	if err := uc.repo.InsertTransaction(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := uc.repo.ApplyDriverSettlement(ctx, tx, *ride.DriverID, amount, uc.cfg.Dispatch.ActivityComplete); err != nil {
		return nil, err
	}

	if rating > 0 {
		if err := uc.repo.RecordDriverRating(ctx, tx, *ride.DriverID, rating); err != nil {
			return nil, err
		}
	}

	return txn, nil
}

// PayoutByRide returns the recorded payout for a ride, nil when none exists
func (uc *settlementUC) PayoutByRide(ctx context.Context, tx store.Tx, rideID uuid.UUID) (*models.BalanceTransaction, error) {
	return uc.repo.GetPayoutByRide(ctx, tx, rideID)
}
