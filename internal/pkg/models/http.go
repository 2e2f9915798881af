package models

import (
	"time"

	"github.com/google/uuid"
)

// AssignDriverRequest is the dispatcher's manual assignment payload
type AssignDriverRequest struct {
	DriverID uuid.UUID `json:"driver_id"`
	Actor    Actor     `json:"actor"`
}

// DeclineRideRequest carries the driver's decline reason
type DeclineRideRequest struct {
	Reason string `json:"reason"`
}

// CancelRideRequest identifies who cancels and why
type CancelRideRequest struct {
	Actor  Actor  `json:"actor"`
	Reason string `json:"reason"`
}

// ProgressRequest is one location ping from the assigned driver
type ProgressRequest struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// CompleteTripRequest finishes a trip, optionally rating the driver
type CompleteTripRequest struct {
	Kind   CompletionKind `json:"kind"`
	Rating float64        `json:"rating,omitempty"`
}

// HeartbeatRequest is a driver presence ping
type HeartbeatRequest struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}
