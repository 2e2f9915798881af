package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/apperrors"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/database"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/drivers"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/match"
)

// candidateRepo implements the match.CandidateRepo interface: presence and
// distance come from the Redis geo index, eligibility from driver rows.
type candidateRepo struct {
	db       *sqlx.DB
	redis    *database.RedisClient
	presence drivers.PresenceRepo
	ttl      time.Duration
	now      func() time.Time
}

// NewCandidateRepo creates a new candidate repository
func NewCandidateRepo(db *sqlx.DB, redisClient *database.RedisClient, presenceRepo drivers.PresenceRepo, ttl time.Duration) match.CandidateRepo {
	return &candidateRepo{
		db:       db,
		redis:    redisClient,
		presence: presenceRepo,
		ttl:      ttl,
		now:      time.Now,
	}
}

// located pairs a geo index hit with its distance from the pickup point
type located struct {
	location models.Location
	distance float64
}

func (r *candidateRepo) OnlineCandidates(ctx context.Context, tariff models.Tariff, near *models.Location, radiusKm float64) ([]models.CandidateDriver, error) {
	hits, err := r.geoHits(ctx, near, radiusKm)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, nil
	}

	// TTL-gate each hit: the geo index is only cleaned lazily, so a stale
	// entry may outlive the driver's presence window.
	ids := make([]uuid.UUID, 0, len(hits))
	for id := range hits {
		snapshot, err := r.presence.GetPresence(ctx, id)
		if err != nil {
			return nil, err
		}
		if snapshot.Online && r.now().Sub(snapshot.LastSeen) <= r.ttl {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.eligibleDrivers(ctx, ids, tariff)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.CandidateDriver, 0, len(rows))
	for _, row := range rows {
		hit := hits[row.ID]
		row.Location = hit.location
		row.DistanceKm = hit.distance
		candidates = append(candidates, row)
	}
	return candidates, nil
}

// geoHits resolves online drivers near the pickup point. Without pickup
// coordinates every online driver qualifies, at distance -1.
func (r *candidateRepo) geoHits(ctx context.Context, near *models.Location, radiusKm float64) (map[uuid.UUID]located, error) {
	hits := make(map[uuid.UUID]located)

	if near != nil {
		locations, err := r.redis.GeoRadius(ctx, drivers.GeoIndexKey, near.Longitude, near.Latitude, radiusKm)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.KindInternal, "failed to search driver geo index", err)
		}
		for _, loc := range locations {
			id, err := uuid.Parse(loc.Name)
			if err != nil {
				continue
			}
			hits[id] = located{
				location: models.Location{Latitude: loc.Latitude, Longitude: loc.Longitude},
				distance: loc.Dist,
			}
		}
		return hits, nil
	}

	members, err := r.redis.GetClient().SMembers(ctx, drivers.OnlineSetKey).Result()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to list online drivers", err)
	}
	for _, member := range members {
		id, err := uuid.Parse(member)
		if err != nil {
			continue
		}
		hits[id] = located{distance: -1}
	}
	return hits, nil
}

func (r *candidateRepo) eligibleDrivers(ctx context.Context, ids []uuid.UUID, tariff models.Tariff) ([]models.CandidateDriver, error) {
	query, args, err := sqlx.In(`
		SELECT d.id, d.tariff, d.activity, d.rating
		FROM drivers d
		WHERE d.id IN (?)
		  AND d.eligible = TRUE
		  AND d.tariff = ?
		  AND NOT EXISTS (
			SELECT 1 FROM rides r
			WHERE r.driver_id = d.id
			  AND r.state IN ('ASSIGNED', 'ACCEPTED', 'IN_PROGRESS')
		  )`, ids, tariff)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to build candidate query", err)
	}

	var rows []models.CandidateDriver
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to load candidate drivers", err)
	}
	return rows, nil
}
