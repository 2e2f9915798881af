package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/apperrors"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/logger"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/store"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/utils"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/billing"
)

// UpdateProgress folds a location ping from the assigned driver into the
// in-progress ride. Progress and completed distance are monotonic; a ping
// whose timestamp is not newer than the last applied one is acknowledged as
// stale without touching the ride. The provisional fare in the snapshot is
// advisory and is never persisted.
func (uc *rideUC) UpdateProgress(ctx context.Context, rideID, driverID uuid.UUID, lat, lon float64, ts time.Time) (*models.ProgressSnapshot, error) {
	var snapshot *models.ProgressSnapshot
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
		if ride.State != models.RideStateInProgress {
			return apperrors.Newf(apperrors.KindIllegalTransition, "cannot report progress in state %s", ride.State)
		}

		if ride.LastProgressAt != nil && !ts.After(*ride.LastProgressAt) {
			snapshot = uc.progressSnapshot(ride, true)
			return nil
		}

		uc.applyProgress(ride, lat, lon)
		ride.LastProgressAt = &ts
		if err := uc.rideRepo.UpdateRide(ctx, tx, ride); err != nil {
			return err
		}

		snapshot = uc.progressSnapshot(ride, false)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Presence is best-effort and lives outside the relational transaction;
	// the ping doubles as a heartbeat once the ride update has committed.
	if !snapshot.Stale {
		if _, err := uc.presence.Heartbeat(ctx, driverID, lat, lon, ts); err != nil {
			logger.Warn("Failed to refresh driver presence from progress ping",
				logger.String("driver_id", driverID.String()),
				logger.Err(err))
		}
	}

	return snapshot, nil
}

// applyProgress recomputes distances from the current position. Values only
// ever grow: GPS jitter that would move progress backwards is clipped.
func (uc *rideUC) applyProgress(ride *models.Ride, lat, lon float64) {
	if ride.TotalDistanceKm == 0 && ride.HasOriginCoords() && ride.HasDestinationCoords() {
		ride.TotalDistanceKm = utils.CalculateDistance(
			utils.GeoPoint{Latitude: *ride.OriginLat, Longitude: *ride.OriginLon},
			utils.GeoPoint{Latitude: *ride.DestinationLat, Longitude: *ride.DestinationLon},
		)
	}
	if ride.TotalDistanceKm <= 0 || !ride.HasDestinationCoords() {
		return
	}

	remaining := utils.CalculateDistance(
		utils.GeoPoint{Latitude: lat, Longitude: lon},
		utils.GeoPoint{Latitude: *ride.DestinationLat, Longitude: *ride.DestinationLon},
	)
	completed := utils.Clamp(ride.TotalDistanceKm-remaining, 0, ride.TotalDistanceKm)
	if completed > ride.CompletedDistanceKm {
		ride.CompletedDistanceKm = completed
	}

	pct := utils.Clamp(ride.CompletedDistanceKm/ride.TotalDistanceKm*100, 0, 100)
	if pct > ride.ProgressPct {
		ride.ProgressPct = pct
	}
}

func (uc *rideUC) progressSnapshot(ride *models.Ride, stale bool) *models.ProgressSnapshot {
	s := &models.ProgressSnapshot{
		RideID:              ride.ID,
		State:               ride.State,
		ProgressPct:         ride.ProgressPct,
		TotalDistanceKm:     ride.TotalDistanceKm,
		CompletedDistanceKm: ride.CompletedDistanceKm,
		ProvisionalPrice:    billing.PartialPayout(ride.QuotedPrice, ride.ProgressPct, uc.cfg.Dispatch.MinPaymentPct),
		UpdatedAt:           uc.now(),
		Stale:               stale,
	}
	if ride.LastProgressAt != nil {
		s.UpdatedAt = *ride.LastProgressAt
	}
	return s
}
