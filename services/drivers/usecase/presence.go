package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/apperrors"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/drivers"
)

// presenceUC implements the drivers.PresenceUC interface
type presenceUC struct {
	cfg  *models.Config
	repo drivers.PresenceRepo
	now  func() time.Time
}

// NewPresenceUC creates the presence usecase
func NewPresenceUC(cfg *models.Config, repo drivers.PresenceRepo) drivers.PresenceUC {
	return &presenceUC{cfg: cfg, repo: repo, now: time.Now}
}

// Heartbeat records a driver position ping. A ping refreshes location and
// last_seen but never changes the online flag: GoOnline and GoOffline are
// the only toggles, so a driver who went offline stays out of the online
// set and geo index no matter how many pings still arrive.
func (uc *presenceUC) Heartbeat(ctx context.Context, driverID uuid.UUID, lat, lon float64, ts time.Time) (*models.PresenceSnapshot, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, apperrors.New(apperrors.KindInvalidInput, "coordinates out of range")
	}
	if ts.IsZero() {
		ts = uc.now()
	}

	current, err := uc.repo.GetPresence(ctx, driverID)
	if err != nil {
		return nil, err
	}

	snapshot := &models.PresenceSnapshot{
		DriverID: driverID,
		Online:   current.Online,
		Location: models.Location{Latitude: lat, Longitude: lon, Timestamp: ts},
		Geohash:  geohash.Encode(lat, lon),
		LastSeen: ts,
	}
	if err := uc.repo.SavePresence(ctx, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// GoOnline flags the driver available for offers. The position stays unknown
// until the first heartbeat, so the driver joins the geo index then.
func (uc *presenceUC) GoOnline(ctx context.Context, driverID uuid.UUID) error {
	return uc.repo.SetOnline(ctx, driverID, true, uc.now())
}

// GoOffline removes the driver from dispatch consideration
func (uc *presenceUC) GoOffline(ctx context.Context, driverID uuid.UUID) error {
	if err := uc.repo.SetOnline(ctx, driverID, false, uc.now()); err != nil {
		return err
	}
	return uc.repo.RemoveFromGeoIndex(ctx, driverID)
}

// GetPresence returns the TTL-gated presence view: a driver whose last ping
// is older than the presence window reads as offline.
func (uc *presenceUC) GetPresence(ctx context.Context, driverID uuid.UUID) (*models.PresenceSnapshot, error) {
	snapshot, err := uc.repo.GetPresence(ctx, driverID)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.cfg.Dispatch.PresenceTTLSec) * time.Second
	if snapshot.Online && uc.now().Sub(snapshot.LastSeen) > ttl {
		snapshot.Online = false
	}
	return snapshot, nil
}
