package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	nrpkg "github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/newrelic"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/utils"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/dispatch"
)

// DriversHandler handles HTTP requests for driver presence
type DriversHandler struct {
	facade *dispatch.Facade
}

// NewDriversHandler creates a new driver HTTP handler
func NewDriversHandler(facade *dispatch.Facade) *DriversHandler {
	return &DriversHandler{facade: facade}
}

// Heartbeat records a driver position ping
func (h *DriversHandler) Heartbeat(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.Heartbeat")

	driverID, err := parseDriverID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.HeartbeatRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Timestamp.IsZero() {
		req.Timestamp = time.Now()
	}

	snapshot, err := h.facade.Heartbeat(c.Request().Context(), driverID,
		req.Latitude, req.Longitude, req.Timestamp)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BusinessErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Heartbeat recorded", snapshot)
}

// GoOnline flags the driver available for offers
func (h *DriversHandler) GoOnline(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.GoOnline")

	driverID, err := parseDriverID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.facade.GoOnline(c.Request().Context(), driverID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BusinessErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver online", nil)
}

// GoOffline removes the driver from dispatch consideration
func (h *DriversHandler) GoOffline(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.GoOffline")

	driverID, err := parseDriverID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.facade.GoOffline(c.Request().Context(), driverID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BusinessErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver offline", nil)
}

// GetPresence returns the TTL-gated presence view of a driver
func (h *DriversHandler) GetPresence(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.GetPresence")

	driverID, err := parseDriverID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	snapshot, err := h.facade.GetPresence(c.Request().Context(), driverID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BusinessErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver presence", snapshot)
}

func parseDriverID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return uuid.Nil, errors.New("invalid driver ID")
	}
	return id, nil
}
