package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/logger"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	nrpkg "github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/newrelic"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/utils"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/dispatch"
)

// RidesHandler handles HTTP requests for ride lifecycle operations
type RidesHandler struct {
	facade *dispatch.Facade
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(facade *dispatch.Facade) *RidesHandler {
	return &RidesHandler{facade: facade}
}

// RequestRide handles a rider's new ride request
func (h *RidesHandler) RequestRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.RequestRide")

	var req models.RequestRideInput
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	ride, err := h.facade.RequestRide(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to request ride",
			logger.String("rider_id", req.RiderID.String()),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BusinessErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride requested", ride)
}

// OfferRide broadcasts a requested ride to candidate drivers
func (h *RidesHandler) OfferRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.OfferRide")

	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.facade.OfferRide(c.Request().Context(), rideID)
	if err != nil {
		logger.Error("Failed to offer ride",
			logger.String("ride_id", rideID.String()),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BusinessErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride offered", result)
}

// AssignDriver handles a manual dispatcher assignment
func (h *RidesHandler) AssignDriver(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.AssignDriver")

	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.AssignDriverRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.DriverID == uuid.Nil {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}
	if req.Actor == "" {
		req.Actor = models.ActorDispatcher
	}

	result, err := h.facade.AssignDriver(c.Request().Context(), rideID, req.DriverID, req.Actor)
	if err != nil {
		logger.Error("Failed to assign driver",
			logger.String("ride_id", rideID.String()),
			logger.String("driver_id", req.DriverID.String()),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BusinessErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver assigned", result)
}

// AcceptRide handles the driver accepting an assignment
func (h *RidesHandler) AcceptRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.AcceptRide")

	rideID, driverID, err := parseRideAndDriver(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.facade.AcceptRide(c.Request().Context(), rideID, driverID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BusinessErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride accepted", result)
}

// DeclineRide handles the driver refusing an assignment
func (h *RidesHandler) DeclineRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.DeclineRide")

	rideID, driverID, err := parseRideAndDriver(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.DeclineRideRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.facade.DeclineRide(c.Request().Context(), rideID, driverID, req.Reason)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BusinessErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride declined", result)
}

// StartTrip handles the driver marking the pickup
func (h *RidesHandler) StartTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.StartTrip")

	rideID, driverID, err := parseRideAndDriver(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.facade.StartTrip(c.Request().Context(), rideID, driverID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BusinessErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip started", result)
}

// UpdateProgress handles a location ping from the assigned driver
func (h *RidesHandler) UpdateProgress(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.UpdateProgress")

	rideID, driverID, err := parseRideAndDriver(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.ProgressRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Timestamp.IsZero() {
		req.Timestamp = time.Now()
	}

	snapshot, err := h.facade.UpdateProgress(c.Request().Context(), rideID, driverID,
		req.Latitude, req.Longitude, req.Timestamp)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BusinessErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Progress recorded", snapshot)
}

// CompleteTrip handles the driver finishing a trip
func (h *RidesHandler) CompleteTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.CompleteTrip")

	rideID, driverID, err := parseRideAndDriver(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.CompleteTripRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Kind == "" {
		req.Kind = models.CompletionFull
	}

	result, err := h.facade.CompleteTrip(c.Request().Context(), rideID, driverID, req.Kind, req.Rating)
	if err != nil {
		logger.Error("Failed to complete trip",
			logger.String("ride_id", rideID.String()),
			logger.String("driver_id", driverID.String()),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BusinessErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip completed", result)
}

// CancelRide handles cancellation by rider, driver or dispatcher
func (h *RidesHandler) CancelRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.CancelRide")

	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.CancelRideRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Actor == "" {
		return utils.BadRequestResponse(c, "Cancel actor is required")
	}

	result, err := h.facade.CancelRide(c.Request().Context(), rideID, req.Actor, req.Reason)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BusinessErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled", result)
}

func parseRideID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return uuid.Nil, errors.New("invalid ride ID")
	}
	return id, nil
}

func parseRideAndDriver(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid ride ID")
	}
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid driver ID")
	}
	return rideID, driverID, nil
}
