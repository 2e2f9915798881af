package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry records a lifecycle event against a ride: terminal transitions,
// offer expiries reverted by the sweep, and dispatcher interventions.
type AuditEntry struct {
	ID        uuid.UUID `json:"id" db:"id"`
	RideID    uuid.UUID `json:"ride_id" db:"ride_id"`
	Event     string    `json:"event" db:"event"`
	Detail    string    `json:"detail" db:"detail"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
