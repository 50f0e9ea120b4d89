package availability

import (
	"court-reservation-api/core/config"
	"court-reservation-api/core/database"
	"court-reservation-api/core/metrics"
	"court-reservation-api/core/utils"
	"court-reservation-api/modules/availability/controller"
	"court-reservation-api/modules/availability/repository"
	"court-reservation-api/modules/availability/router"
	"court-reservation-api/modules/availability/service"

	"github.com/labstack/echo/v4"
)

// Init wires the availability engine and registers its public routes.
func Init(e *echo.Echo, db database.IDatabase, cfg *config.Config, m metrics.Metrics) {
	repo := repository.NewAvailabilityRepository(db)
	svc := service.NewAvailabilityService(repo,
		service.WithLocation(utils.LoadLocation(cfg.Availability.Timezone)),
		service.WithOpeningHour(cfg.Availability.OpeningHour),
		service.WithMetrics(m),
	)
	ctrl := controller.NewAvailabilityController(svc)
	router.NewAvailabilityRouter(ctrl).Setup(e)
}
