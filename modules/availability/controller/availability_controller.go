package controller

import (
	"court-reservation-api/core/controller"
	"court-reservation-api/core/errors"
	"court-reservation-api/modules/availability/dto"
	"court-reservation-api/modules/availability/service"
	"court-reservation-api/modules/availability/validator"

	"github.com/labstack/echo/v4"
)

type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
}

func NewAvailabilityController(svc service.AvailabilityServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
	}
}

// PublicGetAvailability serves both /schedules/:date/:court_id and /schedules?date=&court_id=.
func (controller *AvailabilityController) PublicGetAvailability(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.AvailabilityRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateAvailabilityRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	availability, err := controller.AvailabilityService.GetAvailability(ctx, requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}

	return controller.SuccessResponse(c, availability, "get availability success")
}
