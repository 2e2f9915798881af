package models

import (
	"time"

	"github.com/google/uuid"
)

// Driver represents a driver row. The core mutates only balance, activity,
// rating and presence; the rest is owned by the onboarding collaborator.
type Driver struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Phone       string    `json:"phone" db:"phone"`
	Tariff      Tariff    `json:"tariff" db:"tariff"`
	Eligible    bool      `json:"eligible" db:"eligible"`
	Balance     int64     `json:"balance" db:"balance"`
	Activity    int       `json:"activity" db:"activity"`
	Rating      float64   `json:"rating" db:"rating"`
	RatingCount int       `json:"rating_count" db:"rating_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// PresenceSnapshot is the read view of a driver's presence. Online is
// TTL-gated: a driver not seen within the presence TTL reads as offline
// regardless of the stored flag.
type PresenceSnapshot struct {
	DriverID uuid.UUID `json:"driver_id"`
	Online   bool      `json:"online"`
	Location Location  `json:"location"`
	Geohash  string    `json:"geohash,omitempty"`
	LastSeen time.Time `json:"last_seen"`
}

// CandidateDriver is the dispatch policy's snapshot of one ranked candidate
type CandidateDriver struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Tariff     Tariff    `json:"tariff" db:"tariff"`
	Activity   int       `json:"activity" db:"activity"`
	Rating     float64   `json:"rating" db:"rating"`
	Location   Location  `json:"location"`
	DistanceKm float64   `json:"distance_km"`
}
