package drivers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
)

// PresenceUC tracks driver online state and last known location. Online is
// TTL-gated on read: a driver not seen within the presence TTL reads as
// offline. Presence lives beside the relational store; cross-transaction
// staleness is acceptable by contract.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/isikjon/taxi.wazir-fastapi-sub000/services/drivers PresenceUC
type PresenceUC interface {
	Heartbeat(ctx context.Context, driverID uuid.UUID, lat, lon float64, ts time.Time) (*models.PresenceSnapshot, error)
	GoOnline(ctx context.Context, driverID uuid.UUID) error
	GoOffline(ctx context.Context, driverID uuid.UUID) error
	GetPresence(ctx context.Context, driverID uuid.UUID) (*models.PresenceSnapshot, error)
}
