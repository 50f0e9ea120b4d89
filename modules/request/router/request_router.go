package router

import (
	"court-reservation-api/core/constants"
	"court-reservation-api/core/middleware"
	"court-reservation-api/modules/request/controller"

	"github.com/labstack/echo/v4"
)

type RequestRouter struct {
	RequestController *controller.RequestController
}

func NewRequestRouter(requestController *controller.RequestController) *RequestRouter {
	return &RequestRouter{RequestController: requestController}
}

func (r *RequestRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	routes := v1.Group("/private/requests", mw.AuthMiddleware())
	adminOnly := mw.RequireRole(constants.RoleAdmin)

	routes.GET("", r.RequestController.GetRequests, adminOnly)
	routes.GET("/me", r.RequestController.GetMyRequests)
	routes.GET("/:id", r.RequestController.GetRequest)
	routes.POST("", r.RequestController.CreateRequest)
	routes.PUT("/:id", r.RequestController.UpdateRequest)
	routes.DELETE("/:id", r.RequestController.DeleteRequest)

	routes.GET("/:id/response", r.RequestController.GetAnswer)
	routes.POST("/:id/response", r.RequestController.AnswerRequest, adminOnly)
}
