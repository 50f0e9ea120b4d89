package reservation

import (
	"court-reservation-api/core/database"
	"court-reservation-api/core/middleware"
	"court-reservation-api/modules/reservation/controller"
	"court-reservation-api/modules/reservation/repository"
	"court-reservation-api/modules/reservation/router"
	"court-reservation-api/modules/reservation/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewReservationRepository(db)
	svc := service.NewReservationService(repo)
	ctrl := controller.NewReservationController(svc)
	router.NewReservationRouter(ctrl).Setup(e, mw)
}
