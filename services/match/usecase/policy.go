package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/logger"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/match"
)

// Score weights: proximity dominates, activity keeps busy drivers rotating,
// rating breaks near-ties.
const (
	weightProximity = 0.6
	weightActivity  = 0.3
	weightRating    = 0.1
)

// proximityPolicy implements the match.DispatchPolicy interface
type proximityPolicy struct {
	cfg  *models.Config
	repo match.CandidateRepo
}

// NewProximityPolicy creates the default proximity-weighted dispatch policy
func NewProximityPolicy(cfg *models.Config, repo match.CandidateRepo) match.DispatchPolicy {
	return &proximityPolicy{cfg: cfg, repo: repo}
}

// RankCandidates returns up to MaxOffers driver IDs ordered by score. Rides
// without pickup coordinates are ranked on activity and rating alone.
func (p *proximityPolicy) RankCandidates(ctx context.Context, ride *models.Ride) ([]uuid.UUID, error) {
	var near *models.Location
	if ride.HasOriginCoords() {
		near = &models.Location{Latitude: *ride.OriginLat, Longitude: *ride.OriginLon}
	}

	radius := p.cfg.Dispatch.ProximityRadiusKm
	candidates, err := p.repo.OnlineCandidates(ctx, ride.Tariff, near, radius)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	type scored struct {
		id    uuid.UUID
		score float64
	}
	ranked := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, scored{id: c.ID, score: p.score(c, radius)})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		// Deterministic tie-break so repeated ranking of the same
		// snapshot yields the same order.
		return ranked[i].id.String() < ranked[j].id.String()
	})

	limit := p.cfg.Dispatch.MaxOffers
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	ids := make([]uuid.UUID, len(ranked))
	for i, s := range ranked {
		ids[i] = s.id
	}

	logger.Debug("Ranked dispatch candidates",
		logger.String("ride_id", ride.ID.String()),
		logger.Int("considered", len(candidates)),
		logger.Int("selected", len(ids)))

	return ids, nil
}

func (p *proximityPolicy) score(c models.CandidateDriver, radiusKm float64) float64 {
	proximity := 0.0
	if c.DistanceKm >= 0 && radiusKm > 0 {
		proximity = 1 - c.DistanceKm/radiusKm
		if proximity < 0 {
			proximity = 0
		}
	}
	return weightProximity*proximity +
		weightActivity*float64(c.Activity)/100 +
		weightRating*c.Rating/5
}
