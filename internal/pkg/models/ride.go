package models

import (
	"time"

	"github.com/google/uuid"
)

// RideState represents the lifecycle state of a ride
type RideState string

const (
	RideStateRequested             RideState = "REQUESTED"
	RideStateOffered               RideState = "OFFERED"
	RideStateAssigned              RideState = "ASSIGNED"
	RideStateAccepted              RideState = "ACCEPTED"
	RideStateInProgress            RideState = "IN_PROGRESS"
	RideStateCompleted             RideState = "COMPLETED"
	RideStateCancelledByRider      RideState = "CANCELLED_BY_RIDER"
	RideStateCancelledByDriver     RideState = "CANCELLED_BY_DRIVER"
	RideStateCancelledByDispatcher RideState = "CANCELLED_BY_DISPATCHER"
)

// IsTerminal reports whether no further transitions are allowed from the state
func (s RideState) IsTerminal() bool {
	switch s {
	case RideStateCompleted, RideStateCancelledByRider, RideStateCancelledByDriver, RideStateCancelledByDispatcher:
		return true
	}
	return false
}

// IsCancelled reports whether the state is one of the cancelled terminals
func (s RideState) IsCancelled() bool {
	switch s {
	case RideStateCancelledByRider, RideStateCancelledByDriver, RideStateCancelledByDispatcher:
		return true
	}
	return false
}

// ActiveRideStates are the states that occupy a driver's single active ride slot
var ActiveRideStates = []RideState{RideStateAssigned, RideStateAccepted, RideStateInProgress}

// Tariff is a named service class; rides and drivers must match by tariff
type Tariff string

const (
	TariffEconomy     Tariff = "ECONOMY"
	TariffComfort     Tariff = "COMFORT"
	TariffComfortPlus Tariff = "COMFORT_PLUS"
	TariffBusiness    Tariff = "BUSINESS"
)

// ValidTariff reports whether the tariff is one of the recognised classes
func ValidTariff(t Tariff) bool {
	switch t {
	case TariffEconomy, TariffComfort, TariffComfortPlus, TariffBusiness:
		return true
	}
	return false
}

// PaymentMethod is how the rider pays for the trip
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "CASH"
	PaymentMethodCard PaymentMethod = "CARD"
)

// ValidPaymentMethod reports whether the payment method is recognised
func ValidPaymentMethod(m PaymentMethod) bool {
	return m == PaymentMethodCash || m == PaymentMethodCard
}

// Actor identifies who initiated an operation on a ride
type Actor string

const (
	ActorRider      Actor = "RIDER"
	ActorDriver     Actor = "DRIVER"
	ActorDispatcher Actor = "DISPATCHER"
	ActorSystem     Actor = "SYSTEM"
)

// CompletionKind distinguishes a fully driven trip from an early settlement
type CompletionKind string

const (
	CompletionFull    CompletionKind = "FULL"
	CompletionPartial CompletionKind = "PARTIAL"
)

// Ride is a single transportation request. All mutation goes through the
// ride engine; the struct itself carries no behaviour beyond state predicates.
type Ride struct {
	ID                  uuid.UUID     `json:"id" db:"id"`
	Number              string        `json:"number" db:"number"`
	RiderID             uuid.UUID     `json:"rider_id" db:"rider_id"`
	DriverID            *uuid.UUID    `json:"driver_id,omitempty" db:"driver_id"`
	OriginText          string        `json:"origin_text" db:"origin_text"`
	OriginLat           *float64      `json:"origin_lat,omitempty" db:"origin_lat"`
	OriginLon           *float64      `json:"origin_lon,omitempty" db:"origin_lon"`
	DestinationText     string        `json:"destination_text" db:"destination_text"`
	DestinationLat      *float64      `json:"destination_lat,omitempty" db:"destination_lat"`
	DestinationLon      *float64      `json:"destination_lon,omitempty" db:"destination_lon"`
	Tariff              Tariff        `json:"tariff" db:"tariff"`
	PaymentMethod       PaymentMethod `json:"payment_method" db:"payment_method"`
	QuotedPrice         int64         `json:"quoted_price" db:"quoted_price"`
	ActualPrice         *int64        `json:"actual_price,omitempty" db:"actual_price"`
	ProgressPct         float64       `json:"progress_pct" db:"progress_pct"`
	TotalDistanceKm     float64       `json:"total_distance_km" db:"total_distance_km"`
	CompletedDistanceKm float64       `json:"completed_distance_km" db:"completed_distance_km"`
	State               RideState     `json:"state" db:"state"`
	CreatedAt           time.Time     `json:"created_at" db:"created_at"`
	OfferedAt           *time.Time    `json:"offered_at,omitempty" db:"offered_at"`
	AssignedAt          *time.Time    `json:"assigned_at,omitempty" db:"assigned_at"`
	AcceptedAt          *time.Time    `json:"accepted_at,omitempty" db:"accepted_at"`
	StartedAt           *time.Time    `json:"started_at,omitempty" db:"started_at"`
	CompletedAt         *time.Time    `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt         *time.Time    `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CancelReason        *string       `json:"cancel_reason,omitempty" db:"cancel_reason"`
	CancelledBy         *Actor        `json:"cancelled_by,omitempty" db:"cancelled_by"`
	LastProgressAt      *time.Time    `json:"last_progress_at,omitempty" db:"last_progress_at"`
}

// HasOriginCoords reports whether the pickup point was geocoded
func (r *Ride) HasOriginCoords() bool {
	return r.OriginLat != nil && r.OriginLon != nil
}

// HasDestinationCoords reports whether the dropoff point was geocoded
func (r *Ride) HasDestinationCoords() bool {
	return r.DestinationLat != nil && r.DestinationLon != nil
}

// RideOffer records that a ride was broadcast to a candidate driver
type RideOffer struct {
	RideID    uuid.UUID `json:"ride_id" db:"ride_id"`
	DriverID  uuid.UUID `json:"driver_id" db:"driver_id"`
	OfferedAt time.Time `json:"offered_at" db:"offered_at"`
}

// RequestRideInput carries the validated parameters of a new ride request.
// Coordinates are optional: geocoding happens in the map provider outside
// the core, so a request may arrive with text addresses only.
type RequestRideInput struct {
	RiderID         uuid.UUID     `json:"rider_id"`
	OriginText      string        `json:"origin_text"`
	OriginLat       *float64      `json:"origin_lat,omitempty"`
	OriginLon       *float64      `json:"origin_lon,omitempty"`
	DestinationText string        `json:"destination_text"`
	DestinationLat  *float64      `json:"destination_lat,omitempty"`
	DestinationLon  *float64      `json:"destination_lon,omitempty"`
	Tariff          Tariff        `json:"tariff"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	QuotedPrice     int64         `json:"quoted_price"`
}

// RideResult wraps a ride together with the replay marker: true means the
// operation was a no-op because the ride was already in the requested state.
type RideResult struct {
	Ride   *Ride `json:"ride"`
	Replay bool  `json:"replay"`
}

// OfferResult is returned by OfferRide with the ordered candidate set
type OfferResult struct {
	Ride       *Ride       `json:"ride"`
	Candidates []uuid.UUID `json:"candidate_driver_ids"`
}

// CompleteResult is returned by CompleteTrip with the settlement outcome
type CompleteResult struct {
	Ride    *Ride               `json:"ride"`
	Payout  *BalanceTransaction `json:"payout,omitempty"`
	Replay  bool                `json:"replay"`
}

// ProgressSnapshot is the caller-visible view after a progress update. The
// provisional fare is informational only; actual_price is persisted solely
// on completion.
type ProgressSnapshot struct {
	RideID              uuid.UUID `json:"ride_id"`
	State               RideState `json:"state"`
	ProgressPct         float64   `json:"progress_pct"`
	TotalDistanceKm     float64   `json:"total_distance_km"`
	CompletedDistanceKm float64   `json:"completed_distance_km"`
	ProvisionalPrice    int64     `json:"provisional_price"`
	UpdatedAt           time.Time `json:"updated_at"`
	Stale               bool      `json:"stale"`
}
