package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/apperrors"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	natspkg "github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/nats"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/rides"
)

// Lifecycle event subjects
const (
	SubjectRideRequested    = "rides.requested"
	SubjectRideStateChanged = "rides.state_changed"
	SubjectRideCompleted    = "rides.completed"
)

// RideEvent is the wire envelope for lifecycle events
type RideEvent struct {
	Ride       *models.Ride               `json:"ride"`
	Payout     *models.BalanceTransaction `json:"payout,omitempty"`
	OccurredAt time.Time                  `json:"occurred_at"`
}

// rideGW implements the rides.RideGW interface over NATS
type rideGW struct {
	nats *natspkg.Client
	now  func() time.Time
}

// NewRideGW creates a new ride event gateway
func NewRideGW(natsClient *natspkg.Client) rides.RideGW {
	return &rideGW{nats: natsClient, now: time.Now}
}

func (g *rideGW) PublishRideRequested(ctx context.Context, ride *models.Ride) error {
	return g.publish(SubjectRideRequested, &RideEvent{Ride: ride, OccurredAt: g.now()})
}

func (g *rideGW) PublishRideStateChanged(ctx context.Context, ride *models.Ride) error {
	return g.publish(SubjectRideStateChanged, &RideEvent{Ride: ride, OccurredAt: g.now()})
}

func (g *rideGW) PublishRideCompleted(ctx context.Context, ride *models.Ride, payout *models.BalanceTransaction) error {
	return g.publish(SubjectRideCompleted, &RideEvent{Ride: ride, Payout: payout, OccurredAt: g.now()})
}

func (g *rideGW) publish(subject string, event *RideEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to marshal ride event", err)
	}
	if err := g.nats.Publish(subject, data); err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to publish ride event", err)
	}
	return nil
}
