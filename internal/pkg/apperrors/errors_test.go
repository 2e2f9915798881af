package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_TypedError(t *testing.T) {
	err := New(KindDriverBusy, "driver has an active ride")
	assert.Equal(t, KindDriverBusy, KindOf(err))
	assert.True(t, IsKind(err, KindDriverBusy))
	assert.False(t, IsKind(err, KindNotFound))
}

func TestKindOf_WrappedChain(t *testing.T) {
	cause := errors.New("pq: deadlock detected")
	err := fmt.Errorf("complete trip: %w", Wrap(KindConflict, "serialisation retries exhausted", cause))

	assert.Equal(t, KindConflict, KindOf(err))
	assert.True(t, errors.Is(err, err))

	var typed *Error
	assert.True(t, errors.As(err, &typed))
	assert.Equal(t, cause, typed.Unwrap())
}

func TestKindOf_PlainErrorIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("connection refused")))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(New(KindConflict, "retries exhausted")))
	assert.True(t, Retryable(errors.New("io error")))
	assert.False(t, Retryable(New(KindIllegalTransition, "ride already completed")))
	assert.False(t, Retryable(New(KindRiderNotVerified, "rider not verified")))
}

func TestMessages_CoverAllKinds(t *testing.T) {
	kinds := []Kind{
		KindNotFound, KindIllegalTransition, KindDriverBusy, KindDriverIneligible,
		KindTariffMismatch, KindNoEligibleDrivers, KindInvalidInput,
		KindRiderNotVerified, KindConflict, KindInternal,
	}
	for _, k := range kinds {
		err := New(k, "x")
		assert.NotEmpty(t, ShortMessage(err), "short message missing for %s", k)
		assert.NotEmpty(t, OperatorMessage(err), "operator message missing for %s", k)
	}
}
