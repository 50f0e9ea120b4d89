package router

import (
	"court-reservation-api/core/constants"
	"court-reservation-api/core/middleware"
	"court-reservation-api/modules/court/controller"

	"github.com/labstack/echo/v4"
)

type CourtRouter struct {
	CourtController *controller.CourtController
}

func NewCourtRouter(courtController *controller.CourtController) *CourtRouter {
	return &CourtRouter{CourtController: courtController}
}

func (r *CourtRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public/courts")
	publicRoutes.GET("", r.CourtController.GetCourts)
	publicRoutes.GET("/:id", r.CourtController.GetCourt)

	adminRoutes := v1.Group("/private/courts", mw.AuthMiddleware(), mw.RequireRole(constants.RoleAdmin))
	adminRoutes.POST("", r.CourtController.CreateCourt)
	adminRoutes.PUT("/:id", r.CourtController.UpdateCourt)
	adminRoutes.DELETE("/:id", r.CourtController.DeleteCourt)
}
