package router

import (
	"court-reservation-api/core/constants"
	"court-reservation-api/core/middleware"
	"court-reservation-api/modules/report/controller"

	"github.com/labstack/echo/v4"
)

type ReportRouter struct {
	ReportController *controller.ReportController
}

func NewReportRouter(reportController *controller.ReportController) *ReportRouter {
	return &ReportRouter{ReportController: reportController}
}

func (r *ReportRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	routes := v1.Group("/private/reports", mw.AuthMiddleware())
	adminOnly := mw.RequireRole(constants.RoleAdmin)

	routes.GET("/statistics", r.ReportController.GetStatistics, adminOnly)
	routes.POST("/statistics/export", r.ReportController.ExportStatistics, adminOnly)

	routes.GET("", r.ReportController.GetReports, adminOnly)
	routes.GET("/:id", r.ReportController.GetReport, adminOnly)
	routes.POST("", r.ReportController.CreateReport)
	routes.PUT("/:id", r.ReportController.UpdateReport, adminOnly)
	routes.DELETE("/:id", r.ReportController.DeleteReport, adminOnly)
}
