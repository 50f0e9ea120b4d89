package controller

import (
	"court-reservation-api/core/controller"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/utils"
	"court-reservation-api/modules/court/dto"
	"court-reservation-api/modules/court/service"
	"court-reservation-api/modules/court/validator"

	"github.com/labstack/echo/v4"
)

type CourtController struct {
	controller.BaseController
	CourtService service.CourtServiceInterface
}

func NewCourtController(svc service.CourtServiceInterface) *CourtController {
	return &CourtController{
		BaseController: controller.NewBaseController(),
		CourtService:   svc,
	}
}

func (controller *CourtController) GetCourts(c echo.Context) error {
	courts, err := controller.CourtService.GetCourts(c.Request().Context())
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, courts, "get courts success")
}

func (controller *CourtController) GetCourt(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid court id")
	}

	court, err := controller.CourtService.GetCourt(c.Request().Context(), id)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, court, "get court success")
}

func (controller *CourtController) CreateCourt(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.CourtRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateCourtRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	court, err := controller.CourtService.CreateCourt(ctx, requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.CreatedResponse(c, court, "create court success")
}

func (controller *CourtController) UpdateCourt(c echo.Context) error {
	ctx := c.Request().Context()

	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid court id")
	}

	requestData := new(dto.CourtRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateCourtRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	court, err := controller.CourtService.UpdateCourt(ctx, id, requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, court, "update court success")
}

func (controller *CourtController) DeleteCourt(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid court id")
	}

	if err := controller.CourtService.DeleteCourt(c.Request().Context(), id); err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, nil, "delete court success")
}
