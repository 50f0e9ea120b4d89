package router

import (
	"court-reservation-api/core/constants"
	"court-reservation-api/core/middleware"
	"court-reservation-api/modules/payment/controller"

	"github.com/labstack/echo/v4"
)

type PaymentRouter struct {
	PaymentController *controller.PaymentController
}

func NewPaymentRouter(paymentController *controller.PaymentController) *PaymentRouter {
	return &PaymentRouter{PaymentController: paymentController}
}

func (r *PaymentRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	public := v1.Group("/public/payments")
	public.POST("/webhook", r.PaymentController.Webhook)

	routes := v1.Group("/private/payments", mw.AuthMiddleware())
	adminOnly := mw.RequireRole(constants.RoleAdmin)

	routes.GET("", r.PaymentController.GetPayments, adminOnly)
	routes.GET("/detailed", r.PaymentController.GetDetailedPayments, adminOnly)
	routes.GET("/statistics", r.PaymentController.GetStatistics, adminOnly)
	routes.GET("/status/:status", r.PaymentController.GetPaymentsByStatus, adminOnly)
	routes.GET("/date", r.PaymentController.GetPaymentsByDateRange, adminOnly)
	routes.GET("/me", r.PaymentController.GetMyPayments)
	routes.GET("/:id", r.PaymentController.GetPayment)
	routes.POST("", r.PaymentController.CreatePayment)
	routes.POST("/:id/checkout", r.PaymentController.Checkout)
	routes.PUT("/:id", r.PaymentController.UpdatePayment, adminOnly)
	routes.DELETE("/:id", r.PaymentController.DeletePayment, adminOnly)
}
