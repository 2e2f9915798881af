package models

import (
	"time"

	"github.com/google/uuid"
)

// Rider is the minimal rider view the core needs. Verification itself is
// performed by the identity collaborator; the core only reads the flag.
type Rider struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Phone       string    `json:"phone" db:"phone"`
	DisplayName string    `json:"display_name" db:"display_name"`
	Verified    bool      `json:"verified" db:"verified"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
