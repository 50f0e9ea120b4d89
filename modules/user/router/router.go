package router

import (
	"court-reservation-api/core/constants"
	"court-reservation-api/core/middleware"
	"court-reservation-api/modules/user/controller"

	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	UserController *controller.UserController
}

func NewUserRouter(userController *controller.UserController) *UserRouter {
	return &UserRouter{UserController: userController}
}

func (r *UserRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public/users")
	publicRoutes.POST("/register", r.UserController.Register)
	publicRoutes.POST("/login", r.UserController.Login)

	privateRoutes := v1.Group("/private/users", mw.AuthMiddleware())
	privateRoutes.POST("/logout", r.UserController.Logout)
	privateRoutes.GET("/me", r.UserController.Profile)
	privateRoutes.GET("", r.UserController.GetUsers, mw.RequireRole(constants.RoleAdmin))
	privateRoutes.GET("/:rut", r.UserController.GetUser)
	privateRoutes.PUT("/:rut", r.UserController.UpdateUser)
	privateRoutes.DELETE("/:rut", r.UserController.DeleteUser, mw.RequireRole(constants.RoleAdmin))
}
