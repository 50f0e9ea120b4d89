package earning

import (
	"time"

	"court-reservation-api/core/database"
	"court-reservation-api/core/middleware"
	"court-reservation-api/modules/earning/controller"
	"court-reservation-api/modules/earning/repository"
	"court-reservation-api/modules/earning/router"
	"court-reservation-api/modules/earning/service"
	"court-reservation-api/modules/earning/task"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, loc *time.Location, mw *middleware.Middleware) {
	svc := GetService(db, loc)
	ctrl := controller.NewEarningController(svc)
	router.NewEarningRouter(ctrl).Setup(e, mw)
}

// RegisterTasks binds the earning worker handlers to mux.
func RegisterTasks(mux *asynq.ServeMux, db database.IDatabase, loc *time.Location) {
	task.NewEarningTaskHandler(GetService(db, loc)).Register(mux)
}

func GetService(db database.IDatabase, loc *time.Location) service.EarningServiceInterface {
	return service.NewEarningService(repository.NewEarningRepository(db), loc)
}
