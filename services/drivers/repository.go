package drivers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
)

// PresenceRepo stores presence records and maintains the geo index the
// dispatch policy searches.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/isikjon/taxi.wazir-fastapi-sub000/services/drivers PresenceRepo
type PresenceRepo interface {
	SavePresence(ctx context.Context, snapshot *models.PresenceSnapshot) error
	GetPresence(ctx context.Context, driverID uuid.UUID) (*models.PresenceSnapshot, error)
	SetOnline(ctx context.Context, driverID uuid.UUID, online bool, at time.Time) error
	RemoveFromGeoIndex(ctx context.Context, driverID uuid.UUID) error
}
