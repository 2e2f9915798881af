package http

import (
	"github.com/labstack/echo/v4"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/middleware"
)

// RegisterRoutes binds the dispatch API onto the echo instance. Rider and
// driver routes authenticate at the edge proxy; dispatcher routes require a
// dispatcher JWT and internal routes the service API key.
func RegisterRoutes(e *echo.Echo, mw *middleware.Middleware, ridesHandler *RidesHandler, driversHandler *DriversHandler) {
	riderGroup := e.Group("/rides")
	riderGroup.POST("", ridesHandler.RequestRide)
	riderGroup.POST("/:rideID/cancel", ridesHandler.CancelRide)

	driverGroup := e.Group("/driver/:driverID")
	driverGroup.POST("/heartbeat", driversHandler.Heartbeat)
	driverGroup.POST("/online", driversHandler.GoOnline)
	driverGroup.POST("/offline", driversHandler.GoOffline)
	driverGroup.GET("/presence", driversHandler.GetPresence)
	driverGroup.POST("/rides/:rideID/accept", ridesHandler.AcceptRide)
	driverGroup.POST("/rides/:rideID/decline", ridesHandler.DeclineRide)
	driverGroup.POST("/rides/:rideID/start", ridesHandler.StartTrip)
	driverGroup.POST("/rides/:rideID/progress", ridesHandler.UpdateProgress)
	driverGroup.POST("/rides/:rideID/complete", ridesHandler.CompleteTrip)

	dispatchGroup := e.Group("/dispatch", mw.JWTHandler("dispatcher"))
	dispatchGroup.POST("/rides/:rideID/offer", ridesHandler.OfferRide)
	dispatchGroup.POST("/rides/:rideID/assign", ridesHandler.AssignDriver)
	dispatchGroup.POST("/rides/:rideID/cancel", ridesHandler.CancelRide)

	internalGroup := e.Group("/internal", mw.APIKeyHandler())
	internalGroup.POST("/rides/:rideID/offer", ridesHandler.OfferRide)
}
