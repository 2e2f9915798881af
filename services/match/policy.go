package match

import (
	"context"

	"github.com/google/uuid"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
)

// DispatchPolicy decides which drivers a new ride is offered to. It reads a
// snapshot and returns an ordered candidate list; it never mutates state.
// Replacement policies must respect the same contract.
//
//go:generate mockgen -destination=mocks/mock_policy.go -package=mocks github.com/isikjon/taxi.wazir-fastapi-sub000/services/match DispatchPolicy,CandidateRepo
type DispatchPolicy interface {
	RankCandidates(ctx context.Context, ride *models.Ride) ([]uuid.UUID, error)
}

// CandidateRepo assembles the candidate snapshot: online presence from the
// geo index joined with driver rows filtered to eligible, tariff-matching
// drivers without an active ride. DistanceKm is -1 when the pickup point has
// no coordinates.
type CandidateRepo interface {
	OnlineCandidates(ctx context.Context, tariff models.Tariff, near *models.Location, radiusKm float64) ([]models.CandidateDriver, error)
}
