package rides

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
)

// RideUC is the ride lifecycle engine: it owns every state transition and is
// the only writer of ride rows. Each operation runs in a single serialisable
// transaction; ctx is the abort signal, honoured up to commit.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/isikjon/taxi.wazir-fastapi-sub000/services/rides RideUC
type RideUC interface {
	RequestRide(ctx context.Context, input models.RequestRideInput) (*models.Ride, error)
	OfferRide(ctx context.Context, rideID uuid.UUID) (*models.OfferResult, error)
	AssignDriver(ctx context.Context, rideID, driverID uuid.UUID, actor models.Actor) (*models.RideResult, error)
	AcceptByDriver(ctx context.Context, rideID, driverID uuid.UUID) (*models.RideResult, error)
	DeclineByDriver(ctx context.Context, rideID, driverID uuid.UUID, reason string) (*models.RideResult, error)
	StartTrip(ctx context.Context, rideID, driverID uuid.UUID) (*models.RideResult, error)
	UpdateProgress(ctx context.Context, rideID, driverID uuid.UUID, lat, lon float64, ts time.Time) (*models.ProgressSnapshot, error)
	CompleteTrip(ctx context.Context, rideID, driverID uuid.UUID, kind models.CompletionKind, rating float64) (*models.CompleteResult, error)
	CancelRide(ctx context.Context, rideID uuid.UUID, actor models.Actor, reason string) (*models.RideResult, error)
	SweepExpiredOffers(ctx context.Context) (int, error)
}
