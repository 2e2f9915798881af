package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind classifies a balance transaction
type TransactionKind string

const (
	TransactionKindDeposit    TransactionKind = "DEPOSIT"
	TransactionKindPayout     TransactionKind = "PAYOUT"
	TransactionKindCommission TransactionKind = "COMMISSION"
	TransactionKindCorrection TransactionKind = "CORRECTION"
)

// TransactionStatus is the settlement status of a balance transaction.
// Completed rows are never updated again; the ledger is append-only.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
)

// BalanceTransaction is one entry in a driver's balance ledger. The sum of a
// driver's completed transactions equals the driver's balance; every balance
// mutation co-commits with its matching row.
type BalanceTransaction struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	DriverID    uuid.UUID         `json:"driver_id" db:"driver_id"`
	Amount      int64             `json:"amount" db:"amount"`
	Kind        TransactionKind   `json:"kind" db:"kind"`
	Status      TransactionStatus `json:"status" db:"status"`
	RideID      *uuid.UUID        `json:"ride_id,omitempty" db:"ride_id"`
	Description string            `json:"description" db:"description"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
}
