package payment

import (
	"court-reservation-api/core/config"
	"court-reservation-api/core/database"
	"court-reservation-api/core/logger"
	"court-reservation-api/core/metrics"
	"court-reservation-api/core/middleware"
	"court-reservation-api/core/utils"
	"court-reservation-api/core/worker"
	"court-reservation-api/modules/payment/controller"
	"court-reservation-api/modules/payment/gateway"
	"court-reservation-api/modules/payment/repository"
	"court-reservation-api/modules/payment/router"
	"court-reservation-api/modules/payment/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, cfg *config.Config, enqueuer worker.Enqueuer, m metrics.Metrics, mw *middleware.Middleware) {
	var gw gateway.Gateway
	if cfg.Stripe.SecretKey != "" {
		gw = gateway.NewStripeGateway(cfg.Stripe)
	} else {
		logger.Warn("Payment:Init", "message", "stripe.secret_key not set, checkout and webhook are disabled")
	}

	repo := repository.NewPaymentRepository(db)
	svc := service.NewPaymentService(repo, gw, enqueuer, m, utils.LoadLocation(cfg.Availability.Timezone))
	ctrl := controller.NewPaymentController(svc)
	router.NewPaymentRouter(ctrl).Setup(e, mw)
}
