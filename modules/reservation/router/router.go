package router

import (
	"court-reservation-api/core/constants"
	"court-reservation-api/core/middleware"
	"court-reservation-api/modules/reservation/controller"

	"github.com/labstack/echo/v4"
)

type ReservationRouter struct {
	ReservationController *controller.ReservationController
}

func NewReservationRouter(reservationController *controller.ReservationController) *ReservationRouter {
	return &ReservationRouter{ReservationController: reservationController}
}

func (r *ReservationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	routes := v1.Group("/private/reservations", mw.AuthMiddleware())

	routes.GET("", r.ReservationController.GetReservations, mw.RequireRole(constants.RoleAdmin))
	routes.GET("/me", r.ReservationController.GetMyReservations)
	routes.GET("/:id", r.ReservationController.GetReservation)
	routes.POST("", r.ReservationController.CreateReservation)
	routes.PUT("/:id", r.ReservationController.UpdateReservation)
	routes.DELETE("/:id", r.ReservationController.DeleteReservation)
}
