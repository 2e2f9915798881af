package rides

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/store"
)

// RideRepo defines the typed data access surface for rides. All methods
// operate on the transaction the engine holds; *ForUpdate variants take a
// row-level write lock.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/isikjon/taxi.wazir-fastapi-sub000/services/rides RideRepo,DriverRepo
type RideRepo interface {
	GetRide(ctx context.Context, tx store.Tx, id uuid.UUID) (*models.Ride, error)
	GetRideForUpdate(ctx context.Context, tx store.Tx, id uuid.UUID) (*models.Ride, error)
	InsertRide(ctx context.Context, tx store.Tx, ride *models.Ride) error
	UpdateRide(ctx context.Context, tx store.Tx, ride *models.Ride) error
	ActiveRideByDriver(ctx context.Context, tx store.Tx, driverID uuid.UUID) (*models.Ride, error)
	InsertOffers(ctx context.Context, tx store.Tx, rideID uuid.UUID, driverIDs []uuid.UUID, at time.Time) error
	ListExpiredOfferRides(ctx context.Context, tx store.Tx, cutoff time.Time, limit int) ([]uuid.UUID, error)
	GetRider(ctx context.Context, tx store.Tx, id uuid.UUID) (*models.Rider, error)
	InsertAuditEntry(ctx context.Context, tx store.Tx, entry *models.AuditEntry) error
}

// DriverRepo is the ride engine's view of driver rows. The driver row is the
// serialisation point for the single-active-ride rule, so it is always locked
// before the ride row.
type DriverRepo interface {
	GetDriverForUpdate(ctx context.Context, tx store.Tx, id uuid.UUID) (*models.Driver, error)
	AdjustActivity(ctx context.Context, tx store.Tx, driverID uuid.UUID, delta int) error
}
