package report

import (
	"time"

	"court-reservation-api/core/database"
	"court-reservation-api/core/middleware"
	"court-reservation-api/core/storage"
	"court-reservation-api/core/worker"
	"court-reservation-api/modules/report/controller"
	"court-reservation-api/modules/report/repository"
	"court-reservation-api/modules/report/router"
	"court-reservation-api/modules/report/service"
	"court-reservation-api/modules/report/task"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, enqueuer worker.Enqueuer, loc *time.Location, mw *middleware.Middleware) {
	svc := service.NewReportService(repository.NewReportRepository(db), nil, enqueuer, loc)
	ctrl := controller.NewReportController(svc)
	router.NewReportRouter(ctrl).Setup(e, mw)
}

// RegisterTasks binds the export handler. store may be nil, in which case
// export tasks fail and are retried by asynq.
func RegisterTasks(mux *asynq.ServeMux, db database.IDatabase, store storage.ObjectStore, loc *time.Location) {
	svc := service.NewReportService(repository.NewReportRepository(db), store, nil, loc)
	task.NewReportTaskHandler(svc).Register(mux)
}
