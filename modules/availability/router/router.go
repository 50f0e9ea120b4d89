package router

import (
	"court-reservation-api/modules/availability/controller"

	"github.com/labstack/echo/v4"
)

type AvailabilityRouter struct {
	AvailabilityController *controller.AvailabilityController
}

func NewAvailabilityRouter(availabilityController *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{
		AvailabilityController: availabilityController,
	}
}

func (r *AvailabilityRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	publicRoutes := v1.Group("/public")

	scheduleRoutes := publicRoutes.Group("/schedules")
	scheduleRoutes.GET("", r.AvailabilityController.PublicGetAvailability)
	scheduleRoutes.GET("/:date/:court_id", r.AvailabilityController.PublicGetAvailability)
}
