package court

import (
	"court-reservation-api/core/cache"
	"court-reservation-api/core/database"
	"court-reservation-api/core/middleware"
	"court-reservation-api/modules/court/controller"
	"court-reservation-api/modules/court/repository"
	"court-reservation-api/modules/court/router"
	"court-reservation-api/modules/court/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, c cache.Cache, mw *middleware.Middleware) {
	repo := repository.NewCourtRepository(db)
	svc := service.NewCourtService(repo, c)
	ctrl := controller.NewCourtController(svc)
	router.NewCourtRouter(ctrl).Setup(e, mw)
}
