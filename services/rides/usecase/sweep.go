package usecase

import (
	"context"
	"time"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/logger"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/store"
)

// sweepBatchSize caps how many expired offers a single sweep transaction
// reverts, keeping the serialisable footprint small.
const sweepBatchSize = 100

// SweepExpiredOffers reverts rides stuck in Offered past the offer timeout
// back to Requested and returns how many were reverted. Rides locked by a
// concurrent assignment are skipped and picked up on the next tick.
func (uc *rideUC) SweepExpiredOffers(ctx context.Context) (int, error) {
	cutoff := uc.now().Add(-time.Duration(uc.cfg.Dispatch.OfferTimeoutSec) * time.Second)

	var reverted int
	err := uc.store.WithTx(ctx, func(ctx context.Context, tx store.Tx) error {
		reverted = 0
		ids, err := uc.rideRepo.ListExpiredOfferRides(ctx, tx, cutoff, sweepBatchSize)
		if err != nil {
			return err
		}
		for _, id := range ids {
			ride, err := uc.rideRepo.GetRideForUpdate(ctx, tx, id)
			if err != nil {
				return err
			}
			// Re-check under the lock: a concurrent assignment or cancel
			// may have moved the ride since the listing query.
			if !uc.offerExpired(ride) {
				continue
			}
			if err := uc.revertExpiredOffer(ctx, tx, ride); err != nil {
				return err
			}
			reverted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if reverted > 0 {
		logger.Info("Reverted expired ride offers", logger.Int("count", reverted))
	}
	return reverted, nil
}
