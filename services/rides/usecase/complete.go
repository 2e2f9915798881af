package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/apperrors"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/logger"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/store"
)

// CompleteTrip finishes a ride and settles it in the same transaction. A
// full completion requires an in-progress ride; a partial completion is also
// allowed straight from Accepted, covering trips abandoned at the pickup
// stage with the minimum payment. Completing an already-completed ride is a
// replay that returns the recorded payout.
func (uc *rideUC) CompleteTrip(ctx context.Context, rideID, driverID uuid.UUID, kind models.CompletionKind, rating float64) (*models.CompleteResult, error) {
	if kind != models.CompletionFull && kind != models.CompletionPartial {
		return nil, apperrors.Newf(apperrors.KindInvalidInput, "unknown completion kind %q", kind)
	}
	if rating != 0 && (rating < 1 || rating > 5) {
		return nil, apperrors.New(apperrors.KindInvalidInput, "rating must be between 1 and 5")
	}

	var result *models.CompleteResult
	err := uc.store.WithTx(ctx, func(ctx context.Context, tx store.Tx) error {
		if _, err := uc.drvRepo.GetDriverForUpdate(ctx, tx, driverID); err != nil {
			return err
		}

		ride, err := uc.rideRepo.GetRideForUpdate(ctx, tx, rideID)
		if err != nil {
			return err
		}
		if err := requireRideDriver(ride, driverID); err != nil {
			return err
		}

		if ride.State == models.RideStateCompleted {
			payout, err := uc.settle.PayoutByRide(ctx, tx, ride.ID)
			if err != nil {
				return err
			}
			result = &models.CompleteResult{Ride: ride, Payout: payout, Replay: true}
			return nil
		}

		switch {
		case ride.State == models.RideStateInProgress:
		case ride.State == models.RideStateAccepted && kind == models.CompletionPartial:
		default:
			return apperrors.Newf(apperrors.KindIllegalTransition, "cannot complete ride in state %s", ride.State)
		}

		now := uc.now()
		if kind == models.CompletionFull {
			ride.ProgressPct = 100
			ride.CompletedDistanceKm = ride.TotalDistanceKm
		}
		ride.State = models.RideStateCompleted
		ride.CompletedAt = &now

		payout, err := uc.settle.SettleRide(ctx, tx, ride, kind, rating)
		if err != nil {
			return err
		}
		if err := uc.rideRepo.UpdateRide(ctx, tx, ride); err != nil {
			return err
		}
		if err := uc.audit(ctx, tx, ride.ID, "completed", string(kind)); err != nil {
			return err
		}

		result = &models.CompleteResult{Ride: ride, Payout: payout}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Replay {
		uc.publish(ctx, "ride completed", func() error {
			return uc.rideGW.PublishRideCompleted(ctx, result.Ride, result.Payout)
		})
		logger.Info("Ride completed",
			logger.String("ride_id", result.Ride.ID.String()),
			logger.String("kind", string(kind)),
			logger.Int64("payout", result.Payout.Amount))
	}

	return result, nil
}
