package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/apperrors"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/logger"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/store"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/utils"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/billing"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/drivers"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/match"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/rides"
)

// transitions is the closed set of permitted ride state transitions.
// Everything not listed fails with IllegalTransition.
var transitions = map[models.RideState][]models.RideState{
	models.RideStateRequested: {
		models.RideStateOffered,
		models.RideStateAssigned,
		models.RideStateCancelledByRider,
		models.RideStateCancelledByDispatcher,
	},
	models.RideStateOffered: {
		models.RideStateAssigned,
		models.RideStateCancelledByRider,
		models.RideStateCancelledByDispatcher,
		models.RideStateRequested, // offer timeout revert
	},
	models.RideStateAssigned: {
		models.RideStateAccepted,
		models.RideStateCancelledByDriver,
		models.RideStateCancelledByRider,
		models.RideStateCancelledByDispatcher,
	},
	models.RideStateAccepted: {
		models.RideStateInProgress,
		models.RideStateCancelledByDriver,
		models.RideStateCancelledByRider,
		models.RideStateCancelledByDispatcher,
	},
	models.RideStateInProgress: {
		models.RideStateCompleted,
		models.RideStateCancelledByDispatcher,
	},
}

func canTransition(from, to models.RideState) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// rideUC implements the rides.RideUC interface
type rideUC struct {
	cfg      *models.Config
	store    store.Store
	rideRepo rides.RideRepo
	drvRepo  rides.DriverRepo
	policy   match.DispatchPolicy
	settle   billing.SettlementUC
	presence drivers.PresenceUC
	rideGW   rides.RideGW
	now      func() time.Time
}

// NewRideUC creates the ride lifecycle engine
func NewRideUC(
	cfg *models.Config,
	st store.Store,
	rideRepo rides.RideRepo,
	drvRepo rides.DriverRepo,
	policy match.DispatchPolicy,
	settle billing.SettlementUC,
	presence drivers.PresenceUC,
	rideGW rides.RideGW,
) rides.RideUC {
	return &rideUC{
		cfg:      cfg,
		store:    st,
		rideRepo: rideRepo,
		drvRepo:  drvRepo,
		policy:   policy,
		settle:   settle,
		presence: presence,
		rideGW:   rideGW,
		now:      time.Now,
	}
}

// RequestRide creates a new ride in Requested for a verified rider
func (uc *rideUC) RequestRide(ctx context.Context, input models.RequestRideInput) (*models.Ride, error) {
	if !models.ValidTariff(input.Tariff) {
		return nil, apperrors.Newf(apperrors.KindInvalidInput, "unknown tariff %q", input.Tariff)
	}
	if !models.ValidPaymentMethod(input.PaymentMethod) {
		return nil, apperrors.Newf(apperrors.KindInvalidInput, "unknown payment method %q", input.PaymentMethod)
	}
	if input.OriginText == "" || input.DestinationText == "" {
		return nil, apperrors.New(apperrors.KindInvalidInput, "origin and destination are required")
	}
	if input.QuotedPrice < 0 {
		return nil, apperrors.New(apperrors.KindInvalidInput, "quoted price must not be negative")
	}

	ride := &models.Ride{
		ID:              uuid.New(),
		Number:          utils.GenerateRideNumber(),
		RiderID:         input.RiderID,
		OriginText:      input.OriginText,
		OriginLat:       input.OriginLat,
		OriginLon:       input.OriginLon,
		DestinationText: input.DestinationText,
		DestinationLat:  input.DestinationLat,
		DestinationLon:  input.DestinationLon,
		Tariff:          input.Tariff,
		PaymentMethod:   input.PaymentMethod,
		QuotedPrice:     input.QuotedPrice,
		State:           models.RideStateRequested,
		CreatedAt:       uc.now(),
	}
	// Route distance is straight-line geodesic; MapProvider refinements stay
	// outside the engine and arrive precomputed with the request.
	if ride.HasOriginCoords() && ride.HasDestinationCoords() {
		ride.TotalDistanceKm = utils.CalculateDistance(
			utils.GeoPoint{Latitude: *ride.OriginLat, Longitude: *ride.OriginLon},
			utils.GeoPoint{Latitude: *ride.DestinationLat, Longitude: *ride.DestinationLon},
		)
	}

	insert := func() error {
		return uc.store.WithTx(ctx, func(ctx context.Context, tx store.Tx) error {
			rider, err := uc.rideRepo.GetRider(ctx, tx, input.RiderID)
			if err != nil {
				return err
			}
			if !rider.Verified {
				return apperrors.New(apperrors.KindRiderNotVerified, "rider is not verified")
			}
			return uc.rideRepo.InsertRide(ctx, tx, ride)
		})
	}

	err := insert()
	if isUniqueViolation(err) {
		// The short ride number can collide within one millisecond; a fresh
		// number in a fresh transaction resolves it.
		ride.Number = utils.GenerateRideNumber()
		err = insert()
	}
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, "ride requested", func() error {
		return uc.rideGW.PublishRideRequested(ctx, ride)
	})

	logger.Info("Ride requested",
		logger.String("ride_id", ride.ID.String()),
		logger.String("number", ride.Number),
		logger.String("tariff", string(ride.Tariff)))

	return ride, nil
}

// OfferRide broadcasts a Requested ride to the policy's candidate drivers.
// A ride stuck in Offered past the offer timeout is first reverted to
// Requested, so repeated OfferRide calls double as the lazy sweep.
func (uc *rideUC) OfferRide(ctx context.Context, rideID uuid.UUID) (*models.OfferResult, error) {
	// Candidate ranking reads presence and driver snapshots outside the
	// engine transaction; the write transaction re-validates state.
	var snapshot *models.Ride
	err := uc.store.WithTx(ctx, func(ctx context.Context, tx store.Tx) error {
		ride, err := uc.rideRepo.GetRide(ctx, tx, rideID)
		if err != nil {
			return err
		}
		if ride.State != models.RideStateRequested && !uc.offerExpired(ride) {
			return apperrors.Newf(apperrors.KindIllegalTransition, "cannot offer ride in state %s", ride.State)
		}
		snapshot = ride
		return nil
	})
	if err != nil {
		return nil, err
	}

	candidates, err := uc.policy.RankCandidates(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	var result *models.OfferResult
	var noCandidates bool
	err = uc.store.WithTx(ctx, func(ctx context.Context, tx store.Tx) error {
		noCandidates = false
		ride, err := uc.rideRepo.GetRideForUpdate(ctx, tx, rideID)
		if err != nil {
			return err
		}

		if uc.offerExpired(ride) {
			if err := uc.revertExpiredOffer(ctx, tx, ride); err != nil {
				return err
			}
		}
		if ride.State != models.RideStateRequested {
			return apperrors.Newf(apperrors.KindIllegalTransition, "cannot offer ride in state %s", ride.State)
		}

		if len(candidates) == 0 {
			// Commit the lazy revert (if any) but leave the ride in
			// Requested for manual assignment or retry.
			noCandidates = true
			result = &models.OfferResult{Ride: ride}
			return nil
		}

		now := uc.now()
		ride.State = models.RideStateOffered
		ride.OfferedAt = &now
		if err := uc.rideRepo.UpdateRide(ctx, tx, ride); err != nil {
			return err
		}
		if err := uc.rideRepo.InsertOffers(ctx, tx, ride.ID, candidates, now); err != nil {
			return err
		}
		if err := uc.audit(ctx, tx, ride.ID, "offered", ""); err != nil {
			return err
		}

		result = &models.OfferResult{Ride: ride, Candidates: candidates}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if noCandidates {
		return result, apperrors.New(apperrors.KindNoEligibleDrivers, "no eligible drivers for offer")
	}

	uc.publish(ctx, "ride offered", func() error {
		return uc.rideGW.PublishRideStateChanged(ctx, result.Ride)
	})

	return result, nil
}

// AssignDriver binds a specific driver to a ride. The driver row lock is the
// serialisation point for the single-active-ride rule and is always taken
// before the ride lock.
func (uc *rideUC) AssignDriver(ctx context.Context, rideID, driverID uuid.UUID, actor models.Actor) (*models.RideResult, error) {
	presence, err := uc.presence.GetPresence(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if !presence.Online {
		return nil, apperrors.New(apperrors.KindDriverIneligible, "driver is offline")
	}

	var result *models.RideResult
	err = uc.store.WithTx(ctx, func(ctx context.Context, tx store.Tx) error {
		driver, err := uc.drvRepo.GetDriverForUpdate(ctx, tx, driverID)
		if err != nil {
			return err
		}
		if !driver.Eligible {
			return apperrors.New(apperrors.KindDriverIneligible, "driver is not cleared for assignments")
		}

		ride, err := uc.rideRepo.GetRideForUpdate(ctx, tx, rideID)
		if err != nil {
			return err
		}

		if ride.State == models.RideStateAssigned && ride.DriverID != nil && *ride.DriverID == driverID {
			result = &models.RideResult{Ride: ride, Replay: true}
			return nil
		}
		if !canTransition(ride.State, models.RideStateAssigned) {
			return apperrors.Newf(apperrors.KindIllegalTransition, "cannot assign ride in state %s", ride.State)
		}
		if driver.Tariff != ride.Tariff {
			return apperrors.Newf(apperrors.KindTariffMismatch, "driver tariff %s does not match ride tariff %s", driver.Tariff, ride.Tariff)
		}

		active, err := uc.rideRepo.ActiveRideByDriver(ctx, tx, driverID)
		if err != nil {
			return err
		}
		if active != nil {
			return apperrors.Newf(apperrors.KindDriverBusy, "driver already holds active ride %s", active.Number)
		}

		now := uc.now()
		ride.DriverID = &driverID
		ride.State = models.RideStateAssigned
		ride.AssignedAt = &now
		if err := uc.rideRepo.UpdateRide(ctx, tx, ride); err != nil {
			return err
		}
		if err := uc.audit(ctx, tx, ride.ID, "assigned", "by "+string(actor)); err != nil {
			return err
		}

		result = &models.RideResult{Ride: ride}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Replay {
		uc.publish(ctx, "ride assigned", func() error {
			return uc.rideGW.PublishRideStateChanged(ctx, result.Ride)
		})
	}

	return result, nil
}

// AcceptByDriver acknowledges an assignment. Accepting an already-accepted
// ride is a replay, not an error.
func (uc *rideUC) AcceptByDriver(ctx context.Context, rideID, driverID uuid.UUID) (*models.RideResult, error) {
	var result *models.RideResult
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
		if ride.State == models.RideStateAccepted {
			result = &models.RideResult{Ride: ride, Replay: true}
			return nil
		}
		if !canTransition(ride.State, models.RideStateAccepted) {
			return apperrors.Newf(apperrors.KindIllegalTransition, "cannot accept ride in state %s", ride.State)
		}

		now := uc.now()
		ride.State = models.RideStateAccepted
		ride.AcceptedAt = &now
		if err := uc.rideRepo.UpdateRide(ctx, tx, ride); err != nil {
			return err
		}
		if err := uc.drvRepo.AdjustActivity(ctx, tx, driverID, uc.cfg.Dispatch.ActivityAccept); err != nil {
			return err
		}
		if err := uc.audit(ctx, tx, ride.ID, "accepted", ""); err != nil {
			return err
		}

		result = &models.RideResult{Ride: ride}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Replay {
		uc.publish(ctx, "ride accepted", func() error {
			return uc.rideGW.PublishRideStateChanged(ctx, result.Ride)
		})
	}

	return result, nil
}

// DeclineByDriver refuses an assignment. The ride terminates in
// CancelledByDriver and does not re-enter Requested; re-offering is the
// dispatcher's call.
func (uc *rideUC) DeclineByDriver(ctx context.Context, rideID, driverID uuid.UUID, reason string) (*models.RideResult, error) {
	var result *models.RideResult
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
		if ride.State == models.RideStateCancelledByDriver {
			result = &models.RideResult{Ride: ride, Replay: true}
			return nil
		}
		if ride.State != models.RideStateAssigned {
			return apperrors.Newf(apperrors.KindIllegalTransition, "cannot decline ride in state %s", ride.State)
		}

		now := uc.now()
		actor := models.ActorDriver
		ride.State = models.RideStateCancelledByDriver
		ride.CancelledAt = &now
		ride.CancelledBy = &actor
		if reason != "" {
			ride.CancelReason = &reason
		}
		if err := uc.rideRepo.UpdateRide(ctx, tx, ride); err != nil {
			return err
		}
		if err := uc.drvRepo.AdjustActivity(ctx, tx, driverID, -uc.cfg.Dispatch.ActivityDecline); err != nil {
			return err
		}
		if err := uc.audit(ctx, tx, ride.ID, "declined", reason); err != nil {
			return err
		}

		result = &models.RideResult{Ride: ride}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Replay {
		uc.publish(ctx, "ride declined", func() error {
			return uc.rideGW.PublishRideStateChanged(ctx, result.Ride)
		})
	}

	return result, nil
}

// StartTrip marks the pickup: Accepted -> InProgress
func (uc *rideUC) StartTrip(ctx context.Context, rideID, driverID uuid.UUID) (*models.RideResult, error) {
	var result *models.RideResult
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
		if ride.State == models.RideStateInProgress {
			result = &models.RideResult{Ride: ride, Replay: true}
			return nil
		}
		if !canTransition(ride.State, models.RideStateInProgress) {
			return apperrors.Newf(apperrors.KindIllegalTransition, "cannot start trip in state %s", ride.State)
		}

		now := uc.now()
		ride.State = models.RideStateInProgress
		ride.StartedAt = &now
		if err := uc.rideRepo.UpdateRide(ctx, tx, ride); err != nil {
			return err
		}
		if err := uc.audit(ctx, tx, ride.ID, "trip_started", ""); err != nil {
			return err
		}

		result = &models.RideResult{Ride: ride}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Replay {
		uc.publish(ctx, "trip started", func() error {
			return uc.rideGW.PublishRideStateChanged(ctx, result.Ride)
		})
	}

	return result, nil
}

// CancelRide aborts a non-terminal ride on behalf of the given actor.
// Cancelling an already-cancelled ride is a replay.
func (uc *rideUC) CancelRide(ctx context.Context, rideID uuid.UUID, actor models.Actor, reason string) (*models.RideResult, error) {
	target, ok := cancelState(actor)
	if !ok {
		return nil, apperrors.Newf(apperrors.KindInvalidInput, "unknown cancel actor %q", actor)
	}

	var result *models.RideResult
	err := uc.store.WithTx(ctx, func(ctx context.Context, tx store.Tx) error {
		// Peek at the ride to learn the attached driver, then lock in
		// driver-before-ride order.
		peek, err := uc.rideRepo.GetRide(ctx, tx, rideID)
		if err != nil {
			return err
		}
		var lockedDriver *uuid.UUID
		if peek.DriverID != nil {
			if _, err := uc.drvRepo.GetDriverForUpdate(ctx, tx, *peek.DriverID); err != nil {
				return err
			}
			lockedDriver = peek.DriverID
		}

		ride, err := uc.rideRepo.GetRideForUpdate(ctx, tx, rideID)
		if err != nil {
			return err
		}
		if ride.DriverID != nil && (lockedDriver == nil || *ride.DriverID != *lockedDriver) {
			// A driver attached between the peek and the lock; retryable.
			return apperrors.New(apperrors.KindConflict, "driver attachment changed during cancel")
		}

		if ride.State.IsCancelled() {
			result = &models.RideResult{Ride: ride, Replay: true}
			return nil
		}
		if !canTransition(ride.State, target) {
			return apperrors.Newf(apperrors.KindIllegalTransition, "cannot cancel ride in state %s as %s", ride.State, actor)
		}

		now := uc.now()
		ride.State = target
		ride.CancelledAt = &now
		ride.CancelledBy = &actor
		if reason != "" {
			ride.CancelReason = &reason
		}
		if err := uc.rideRepo.UpdateRide(ctx, tx, ride); err != nil {
			return err
		}
		// Rider-side cancellation never touches driver standing; a driver
		// abandoning an accepted ride takes the decline penalty.
		if actor == models.ActorDriver && ride.DriverID != nil {
			if err := uc.drvRepo.AdjustActivity(ctx, tx, *ride.DriverID, -uc.cfg.Dispatch.ActivityDecline); err != nil {
				return err
			}
		}
		if err := uc.audit(ctx, tx, ride.ID, "cancelled", string(actor)+": "+reason); err != nil {
			return err
		}

		result = &models.RideResult{Ride: ride}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Replay {
		uc.publish(ctx, "ride cancelled", func() error {
			return uc.rideGW.PublishRideStateChanged(ctx, result.Ride)
		})
	}

	return result, nil
}

// isUniqueViolation reports whether the error chain carries SQLSTATE 23505
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func cancelState(actor models.Actor) (models.RideState, bool) {
	switch actor {
	case models.ActorRider:
		return models.RideStateCancelledByRider, true
	case models.ActorDriver:
		return models.RideStateCancelledByDriver, true
	case models.ActorDispatcher, models.ActorSystem:
		return models.RideStateCancelledByDispatcher, true
	}
	return "", false
}

// requireRideDriver checks that the ride is bound to the calling driver
func requireRideDriver(ride *models.Ride, driverID uuid.UUID) error {
	if ride.DriverID == nil || *ride.DriverID != driverID {
		return apperrors.New(apperrors.KindInvalidInput, "ride is not assigned to this driver")
	}
	return nil
}

func (uc *rideUC) offerExpired(ride *models.Ride) bool {
	if ride.State != models.RideStateOffered || ride.OfferedAt == nil {
		return false
	}
	timeout := time.Duration(uc.cfg.Dispatch.OfferTimeoutSec) * time.Second
	return uc.now().Sub(*ride.OfferedAt) > timeout
}

func (uc *rideUC) revertExpiredOffer(ctx context.Context, tx store.Tx, ride *models.Ride) error {
	ride.State = models.RideStateRequested
	ride.OfferedAt = nil
	if err := uc.rideRepo.UpdateRide(ctx, tx, ride); err != nil {
		return err
	}
	return uc.audit(ctx, tx, ride.ID, "offer_expired", "reverted to requested")
}

func (uc *rideUC) audit(ctx context.Context, tx store.Tx, rideID uuid.UUID, event, detail string) error {
	return uc.rideRepo.InsertAuditEntry(ctx, tx, &models.AuditEntry{
		ID:        uuid.New(),
		RideID:    rideID,
		Event:     event,
		Detail:    detail,
		CreatedAt: uc.now(),
	})
}

// publish runs a gateway publish after commit; failures are logged, never
// surfaced, because the state change has already taken effect.
func (uc *rideUC) publish(ctx context.Context, what string, fn func() error) {
	if err := fn(); err != nil {
		logger.Warn("Failed to publish lifecycle event",
			logger.String("event", what),
			logger.Err(err))
	}
}
