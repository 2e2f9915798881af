package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/apperrors"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response. Message is the short app-facing
// text; Detail carries the longer dispatcher-console text. Retryable flags
// errors the caller may safely retry.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Detail    string `json:"detail,omitempty"`
	Retryable bool   `json:"retryable"`
	Code      int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Kind:    string(apperrors.KindInvalidInput),
		Message: errorMessage,
		Code:    http.StatusBadRequest,
	})
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Success: false,
		Kind:    string(apperrors.KindInvalidInput),
		Message: errorMessage,
		Code:    http.StatusUnauthorized,
	})
}

// kindStatus maps business error kinds to HTTP statuses
var kindStatus = map[apperrors.Kind]int{
	apperrors.KindNotFound:          http.StatusNotFound,
	apperrors.KindIllegalTransition: http.StatusConflict,
	apperrors.KindDriverBusy:        http.StatusConflict,
	apperrors.KindDriverIneligible:  http.StatusUnprocessableEntity,
	apperrors.KindTariffMismatch:    http.StatusUnprocessableEntity,
	apperrors.KindNoEligibleDrivers: http.StatusUnprocessableEntity,
	apperrors.KindInvalidInput:      http.StatusBadRequest,
	apperrors.KindRiderNotVerified:  http.StatusForbidden,
	apperrors.KindConflict:          http.StatusConflict,
	apperrors.KindInternal:          http.StatusInternalServerError,
}

// KindStatus returns the HTTP status for a business error
func KindStatus(err error) int {
	if status, ok := kindStatus[apperrors.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// BusinessErrorResponse maps a business error onto the standard error payload
func BusinessErrorResponse(c echo.Context, err error) error {
	status := KindStatus(err)
	return c.JSON(status, ErrorResponse{
		Success:   false,
		Kind:      string(apperrors.KindOf(err)),
		Message:   apperrors.ShortMessage(err),
		Detail:    apperrors.OperatorMessage(err),
		Retryable: apperrors.Retryable(err),
		Code:      status,
	})
}
