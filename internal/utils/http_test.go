package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/apperrors"
)

func TestKindStatus(t *testing.T) {
	cases := []struct {
		kind apperrors.Kind
		want int
	}{
		{apperrors.KindNotFound, http.StatusNotFound},
		{apperrors.KindIllegalTransition, http.StatusConflict},
		{apperrors.KindDriverBusy, http.StatusConflict},
		{apperrors.KindDriverIneligible, http.StatusUnprocessableEntity},
		{apperrors.KindTariffMismatch, http.StatusUnprocessableEntity},
		{apperrors.KindNoEligibleDrivers, http.StatusUnprocessableEntity},
		{apperrors.KindInvalidInput, http.StatusBadRequest},
		{apperrors.KindRiderNotVerified, http.StatusForbidden},
		{apperrors.KindConflict, http.StatusConflict},
		{apperrors.KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, KindStatus(apperrors.New(tc.kind, "x")), string(tc.kind))
	}
}

func TestBusinessErrorResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := BusinessErrorResponse(c, apperrors.New(apperrors.KindConflict, "assignment raced"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "CONFLICT", body.Kind)
	assert.True(t, body.Retryable)
	assert.NotEmpty(t, body.Message)
	assert.NotEmpty(t, body.Detail)
}
