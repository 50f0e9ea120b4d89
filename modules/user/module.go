package user

import (
	"court-reservation-api/core/cache"
	"court-reservation-api/core/database"
	"court-reservation-api/core/middleware"
	"court-reservation-api/modules/user/controller"
	"court-reservation-api/modules/user/repository"
	"court-reservation-api/modules/user/router"
	"court-reservation-api/modules/user/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, svc service.UserServiceInterface, mw *middleware.Middleware) {
	ctrl := controller.NewUserController(svc)
	router.NewUserRouter(ctrl).Setup(e, mw)
}

// GetService builds the user service. The server also uses it as the token
// validator for the auth middleware.
func GetService(db database.IDatabase, c cache.Cache) service.UserServiceInterface {
	return service.NewUserService(repository.NewUserRepository(db), c)
}
