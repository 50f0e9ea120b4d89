package controller

import (
	"io"

	"court-reservation-api/core/controller"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/utils"
	"court-reservation-api/modules/payment/dto"
	"court-reservation-api/modules/payment/service"
	"court-reservation-api/modules/payment/validator"

	"github.com/labstack/echo/v4"
)

const maxWebhookBody = 64 << 10

type PaymentController struct {
	controller.BaseController
	PaymentService service.PaymentServiceInterface
}

func NewPaymentController(svc service.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		BaseController: controller.NewBaseController(),
		PaymentService: svc,
	}
}

func (controller *PaymentController) GetPayments(c echo.Context) error {
	items, err := controller.PaymentService.GetPayments(c.Request().Context())
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, items, "get payments success")
}

func (controller *PaymentController) GetDetailedPayments(c echo.Context) error {
	items, err := controller.PaymentService.GetDetailedPayments(c.Request().Context())
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, items, "get payments success")
}

func (controller *PaymentController) GetPaymentsByStatus(c echo.Context) error {
	status := c.Param("status")
	validationResult := validator.ValidateStatus(status)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	items, err := controller.PaymentService.GetPaymentsByStatus(c.Request().Context(), status)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, items, "get payments success")
}

func (controller *PaymentController) GetPaymentsByDateRange(c echo.Context) error {
	requestData := new(dto.DateRangeRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateDateRange(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	items, err := controller.PaymentService.GetPaymentsByDateRange(c.Request().Context(), requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, items, "get payments success")
}

func (controller *PaymentController) GetStatistics(c echo.Context) error {
	stats, err := controller.PaymentService.GetStatistics(c.Request().Context())
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, stats, "get payment statistics success")
}

func (controller *PaymentController) GetMyPayments(c echo.Context) error {
	items, err := controller.PaymentService.GetMyPayments(c.Request().Context(), utils.GetTokenData(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, items, "get payments success")
}

func (controller *PaymentController) GetPayment(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid payment id")
	}

	item, err := controller.PaymentService.GetPayment(c.Request().Context(), id, utils.GetTokenData(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, item, "get payment success")
}

func (controller *PaymentController) CreatePayment(c echo.Context) error {
	requestData := new(dto.PaymentRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidatePaymentRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	item, err := controller.PaymentService.CreatePayment(c.Request().Context(), requestData, utils.GetTokenData(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.CreatedResponse(c, item, "create payment success")
}

func (controller *PaymentController) UpdatePayment(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid payment id")
	}

	requestData := new(dto.PaymentRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidatePaymentRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	item, err := controller.PaymentService.UpdatePayment(c.Request().Context(), id, requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, item, "update payment success")
}

func (controller *PaymentController) DeletePayment(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid payment id")
	}

	if err := controller.PaymentService.DeletePayment(c.Request().Context(), id); err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, nil, "delete payment success")
}

func (controller *PaymentController) Checkout(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid payment id")
	}

	item, err := controller.PaymentService.Checkout(c.Request().Context(), id, utils.GetTokenData(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.CreatedResponse(c, item, "create checkout success")
}

// Webhook needs the raw body for signature verification, so it skips Bind.
func (controller *PaymentController) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	result, appErr := controller.PaymentService.HandleWebhook(c.Request().Context(), payload, c.Request().Header.Get("Stripe-Signature"))
	if appErr != nil {
		return controller.ErrorResponse(c, appErr)
	}
	return controller.SuccessResponse(c, result, "webhook processed")
}
