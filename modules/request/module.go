package request

import (
	"court-reservation-api/core/database"
	"court-reservation-api/core/middleware"
	"court-reservation-api/modules/request/controller"
	"court-reservation-api/modules/request/repository"
	"court-reservation-api/modules/request/router"
	"court-reservation-api/modules/request/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewRequestRepository(db)
	svc := service.NewRequestService(repo)
	ctrl := controller.NewRequestController(svc)
	router.NewRequestRouter(ctrl).Setup(e, mw)
}
