package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/apperrors"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/database"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/drivers"
)

// presenceRepo implements the drivers.PresenceRepo interface over Redis.
// The record lives in a per-driver hash with a TTL slightly above the
// presence window; the geo index and online set are maintained alongside.
type presenceRepo struct {
	redis *database.RedisClient
	ttl   time.Duration
}

// NewPresenceRepo creates a new presence repository
func NewPresenceRepo(redisClient *database.RedisClient, ttl time.Duration) drivers.PresenceRepo {
	return &presenceRepo{redis: redisClient, ttl: ttl}
}

func (r *presenceRepo) SavePresence(ctx context.Context, snapshot *models.PresenceSnapshot) error {
	client := r.redis.GetClient()
	key := drivers.PresenceKey(snapshot.DriverID)

	pipe := client.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"online":    snapshot.Online,
		"latitude":  snapshot.Location.Latitude,
		"longitude": snapshot.Location.Longitude,
		"geohash":   snapshot.Geohash,
		"last_seen": snapshot.LastSeen.Format(time.RFC3339Nano),
	})
	// Records linger twice the presence window so a driver flapping around
	// the TTL boundary still reads as a known-offline record, not a miss.
	pipe.Expire(ctx, key, 2*r.ttl)
	if snapshot.Online {
		pipe.SAdd(ctx, drivers.OnlineSetKey, snapshot.DriverID.String())
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to save driver presence", err)
	}

	if snapshot.Online {
		if err := r.redis.GeoAdd(ctx, drivers.GeoIndexKey,
			snapshot.Location.Longitude, snapshot.Location.Latitude,
			snapshot.DriverID.String()); err != nil {
			return apperrors.Wrap(apperrors.KindInternal, "failed to update driver geo index", err)
		}
	}
	return nil
}

func (r *presenceRepo) GetPresence(ctx context.Context, driverID uuid.UUID) (*models.PresenceSnapshot, error) {
	client := r.redis.GetClient()

	fields, err := client.HGetAll(ctx, drivers.PresenceKey(driverID)).Result()
	if err != nil && err != redis.Nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to load driver presence", err)
	}

	snapshot := &models.PresenceSnapshot{DriverID: driverID}
	if len(fields) == 0 {
		return snapshot, nil
	}

	snapshot.Online = fields["online"] == "1" || fields["online"] == "true"
	snapshot.Geohash = fields["geohash"]
	if v, err := time.Parse(time.RFC3339Nano, fields["last_seen"]); err == nil {
		snapshot.LastSeen = v
	}
	if lat, lon, ok := parseCoords(fields["latitude"], fields["longitude"]); ok {
		snapshot.Location = models.Location{Latitude: lat, Longitude: lon, Timestamp: snapshot.LastSeen}
	}
	return snapshot, nil
}

func (r *presenceRepo) SetOnline(ctx context.Context, driverID uuid.UUID, online bool, at time.Time) error {
	client := r.redis.GetClient()
	key := drivers.PresenceKey(driverID)

	pipe := client.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"online":    online,
		"last_seen": at.Format(time.RFC3339Nano),
	})
	pipe.Expire(ctx, key, 2*r.ttl)
	if online {
		pipe.SAdd(ctx, drivers.OnlineSetKey, driverID.String())
	} else {
		pipe.SRem(ctx, drivers.OnlineSetKey, driverID.String())
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to set driver online flag", err)
	}
	return nil
}

func (r *presenceRepo) RemoveFromGeoIndex(ctx context.Context, driverID uuid.UUID) error {
	client := r.redis.GetClient()
	if err := client.ZRem(ctx, drivers.GeoIndexKey, driverID.String()).Err(); err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to remove driver from geo index", err)
	}
	return nil
}

func parseCoords(latStr, lonStr string) (float64, float64, bool) {
	if latStr == "" || lonStr == "" {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
