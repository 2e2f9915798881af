package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/drivers"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/rides"
)

// Facade is the single flat surface the transport adapters call. It composes
// the ride engine and driver presence; no business rules live here.
type Facade struct {
	rides    rides.RideUC
	presence drivers.PresenceUC
}

// NewFacade creates the dispatch facade
func NewFacade(rideUC rides.RideUC, presenceUC drivers.PresenceUC) *Facade {
	return &Facade{rides: rideUC, presence: presenceUC}
}

// RequestRide creates a new ride for a verified rider
func (f *Facade) RequestRide(ctx context.Context, input models.RequestRideInput) (*models.Ride, error) {
	return f.rides.RequestRide(ctx, input)
}

// OfferRide broadcasts a requested ride to ranked candidate drivers
func (f *Facade) OfferRide(ctx context.Context, rideID uuid.UUID) (*models.OfferResult, error) {
	return f.rides.OfferRide(ctx, rideID)
}

// AssignDriver binds a driver to a ride on behalf of the given actor
func (f *Facade) AssignDriver(ctx context.Context, rideID, driverID uuid.UUID, actor models.Actor) (*models.RideResult, error) {
	return f.rides.AssignDriver(ctx, rideID, driverID, actor)
}

// AcceptRide acknowledges an assignment as the driver
func (f *Facade) AcceptRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.RideResult, error) {
	return f.rides.AcceptByDriver(ctx, rideID, driverID)
}

// DeclineRide refuses an assignment as the driver
func (f *Facade) DeclineRide(ctx context.Context, rideID, driverID uuid.UUID, reason string) (*models.RideResult, error) {
	return f.rides.DeclineByDriver(ctx, rideID, driverID, reason)
}

// StartTrip marks the pickup as the driver
func (f *Facade) StartTrip(ctx context.Context, rideID, driverID uuid.UUID) (*models.RideResult, error) {
	return f.rides.StartTrip(ctx, rideID, driverID)
}

// UpdateProgress folds a location ping into the in-progress ride
func (f *Facade) UpdateProgress(ctx context.Context, rideID, driverID uuid.UUID, lat, lon float64, ts time.Time) (*models.ProgressSnapshot, error) {
	return f.rides.UpdateProgress(ctx, rideID, driverID, lat, lon, ts)
}

// CompleteTrip finishes and settles a ride as the driver
func (f *Facade) CompleteTrip(ctx context.Context, rideID, driverID uuid.UUID, kind models.CompletionKind, rating float64) (*models.CompleteResult, error) {
	return f.rides.CompleteTrip(ctx, rideID, driverID, kind, rating)
}

// CancelRide aborts a ride on behalf of the given actor
func (f *Facade) CancelRide(ctx context.Context, rideID uuid.UUID, actor models.Actor, reason string) (*models.RideResult, error) {
	return f.rides.CancelRide(ctx, rideID, actor, reason)
}

// Heartbeat records a driver position ping
func (f *Facade) Heartbeat(ctx context.Context, driverID uuid.UUID, lat, lon float64, ts time.Time) (*models.PresenceSnapshot, error) {
	return f.presence.Heartbeat(ctx, driverID, lat, lon, ts)
}

// GoOnline flags a driver available for offers
func (f *Facade) GoOnline(ctx context.Context, driverID uuid.UUID) error {
	return f.presence.GoOnline(ctx, driverID)
}

// GoOffline removes a driver from dispatch consideration
func (f *Facade) GoOffline(ctx context.Context, driverID uuid.UUID) error {
	return f.presence.GoOffline(ctx, driverID)
}

// GetPresence returns the TTL-gated presence view of a driver
func (f *Facade) GetPresence(ctx context.Context, driverID uuid.UUID) (*models.PresenceSnapshot, error) {
	return f.presence.GetPresence(ctx, driverID)
}
