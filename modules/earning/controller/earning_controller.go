package controller

import (
	"court-reservation-api/core/controller"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/utils"
	"court-reservation-api/modules/earning/dto"
	"court-reservation-api/modules/earning/service"
	"court-reservation-api/modules/earning/validator"

	"github.com/labstack/echo/v4"
)

type EarningController struct {
	controller.BaseController
	EarningService service.EarningServiceInterface
}

func NewEarningController(svc service.EarningServiceInterface) *EarningController {
	return &EarningController{
		BaseController: controller.NewBaseController(),
		EarningService: svc,
	}
}

func (controller *EarningController) GetEarnings(c echo.Context) error {
	items, err := controller.EarningService.GetEarnings(c.Request().Context())
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, items, "get earnings success")
}

func (controller *EarningController) GetEarning(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid earning id")
	}

	item, err := controller.EarningService.GetEarning(c.Request().Context(), id)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, item, "get earning success")
}

func (controller *EarningController) CreateEarning(c echo.Context) error {
	requestData := new(dto.EarningRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateCreateEarning(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	item, err := controller.EarningService.CreateEarning(c.Request().Context(), requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.CreatedResponse(c, item, "create earning success")
}

func (controller *EarningController) UpdateEarning(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid earning id")
	}

	requestData := new(dto.EarningRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateUpdateEarning(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	item, err := controller.EarningService.UpdateEarning(c.Request().Context(), id, requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, item, "update earning success")
}

func (controller *EarningController) DeleteEarning(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid earning id")
	}

	if err := controller.EarningService.DeleteEarning(c.Request().Context(), id); err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, nil, "delete earning success")
}

// Recalculate rebuilds a period synchronously. The worker does the same on
// payment changes.
func (controller *EarningController) Recalculate(c echo.Context) error {
	requestData := new(dto.RecalculateRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateRecalculate(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	item, err := controller.EarningService.Recalculate(c.Request().Context(), requestData.Period)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, item, "recalculate earning success")
}
