// Package apperrors defines the closed set of business error kinds returned
// by the dispatch core. Invariant violations become typed errors at the
// facade boundary; raw storage errors never escape.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind discriminates business errors at the facade boundary
type Kind string

const (
	KindNotFound          Kind = "NOT_FOUND"
	KindIllegalTransition Kind = "ILLEGAL_TRANSITION"
	KindDriverBusy        Kind = "DRIVER_BUSY"
	KindDriverIneligible  Kind = "DRIVER_INELIGIBLE"
	KindTariffMismatch    Kind = "TARIFF_MISMATCH"
	KindNoEligibleDrivers Kind = "NO_ELIGIBLE_DRIVERS"
	KindInvalidInput      Kind = "INVALID_INPUT"
	KindRiderNotVerified  Kind = "RIDER_NOT_VERIFIED"
	KindConflict          Kind = "CONFLICT"
	KindInternal          Kind = "INTERNAL"
)

// Error is a kinded business error with a short message for the rider/driver
// apps and a longer one for the dispatcher console.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a business error of the given kind
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf creates a business error with a formatted message
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying cause
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the kind from an error chain; unrecognised errors are Internal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether the error chain carries the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Retryable reports whether the caller may retry the operation as-is
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindConflict, KindInternal:
		return true
	}
	return false
}

// shortMessages are the single-line messages shown in the rider/driver apps
var shortMessages = map[Kind]string{
	KindNotFound:          "Not found",
	KindIllegalTransition: "Action not possible right now",
	KindDriverBusy:        "Driver already has a ride",
	KindDriverIneligible:  "Driver unavailable",
	KindTariffMismatch:    "Tariff does not match",
	KindNoEligibleDrivers: "No drivers nearby",
	KindInvalidInput:      "Invalid request",
	KindRiderNotVerified:  "Phone not verified",
	KindConflict:          "Busy, try again",
	KindInternal:          "Something went wrong",
}

// operatorMessages are the longer messages shown on the dispatcher console
var operatorMessages = map[Kind]string{
	KindNotFound:          "The referenced entity does not exist or is not visible to this operation.",
	KindIllegalTransition: "The ride is not in a state that permits this transition; refresh and review its current state.",
	KindDriverBusy:        "The driver already holds an active ride; a driver may participate in at most one non-terminal ride.",
	KindDriverIneligible:  "The driver is offline or not cleared for new assignments by onboarding.",
	KindTariffMismatch:    "The driver's tariff class does not match the ride's tariff.",
	KindNoEligibleDrivers: "No online, eligible, tariff-matching driver is inside the configured radius; retry or assign manually.",
	KindInvalidInput:      "One or more request fields failed validation.",
	KindRiderNotVerified:  "The rider's identity has not been verified; verification is required before requesting rides.",
	KindConflict:          "The transaction lost a serialisation conflict after all retries; the operation can be safely retried.",
	KindInternal:          "An unexpected internal error occurred; see logs for the correlation id.",
}

// ShortMessage returns the app-facing message for the error's kind
func ShortMessage(err error) string {
	return shortMessages[KindOf(err)]
}

// OperatorMessage returns the dispatcher-console message for the error's kind
func OperatorMessage(err error) string {
	return operatorMessages[KindOf(err)]
}
