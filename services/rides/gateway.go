package rides

import (
	"context"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
)

// RideGW publishes lifecycle events after commit. Publish failures are
// logged by the caller and never fail the operation that produced them.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/isikjon/taxi.wazir-fastapi-sub000/services/rides RideGW
type RideGW interface {
	PublishRideRequested(ctx context.Context, ride *models.Ride) error
	PublishRideStateChanged(ctx context.Context, ride *models.Ride) error
	PublishRideCompleted(ctx context.Context, ride *models.Ride, payout *models.BalanceTransaction) error
}
