package billing

import (
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/utils"
)

// PartialPayout prices an early settlement: the quoted fare scaled by trip
// progress, never below the minimum payment floor. Both candidates round
// half-up to whole currency units before comparison.
func PartialPayout(quoted int64, progressPct, minPct float64) int64 {
	floor := utils.RoundHalfUp(float64(quoted) * minPct)
	scaled := utils.RoundHalfUp(float64(quoted) * progressPct / 100)
	if scaled > floor {
		return scaled
	}
	return floor
}

// PayoutFor returns the amount owed for a completed ride
func PayoutFor(ride *models.Ride, kind models.CompletionKind, minPct float64) int64 {
	if kind == models.CompletionFull {
		return ride.QuotedPrice
	}
	return PartialPayout(ride.QuotedPrice, ride.ProgressPct, minPct)
}
