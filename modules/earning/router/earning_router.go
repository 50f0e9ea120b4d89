package router

import (
	"court-reservation-api/core/constants"
	"court-reservation-api/core/middleware"
	"court-reservation-api/modules/earning/controller"

	"github.com/labstack/echo/v4"
)

type EarningRouter struct {
	EarningController *controller.EarningController
}

func NewEarningRouter(earningController *controller.EarningController) *EarningRouter {
	return &EarningRouter{EarningController: earningController}
}

func (r *EarningRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	routes := v1.Group("/private/earnings", mw.AuthMiddleware(), mw.RequireRole(constants.RoleAdmin))

	routes.GET("", r.EarningController.GetEarnings)
	routes.GET("/:id", r.EarningController.GetEarning)
	routes.POST("", r.EarningController.CreateEarning)
	routes.POST("/recalculate", r.EarningController.Recalculate)
	routes.PUT("/:id", r.EarningController.UpdateEarning)
	routes.DELETE("/:id", r.EarningController.DeleteEarning)
}
