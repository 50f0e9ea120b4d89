package controller

import (
	"court-reservation-api/core/controller"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/utils"
	coreValidator "court-reservation-api/core/validator"
	"court-reservation-api/modules/reservation/dto"
	"court-reservation-api/modules/reservation/service"
	"court-reservation-api/modules/reservation/validator"

	"github.com/labstack/echo/v4"
)

type ReservationController struct {
	controller.BaseController
	ReservationService service.ReservationServiceInterface
}

func NewReservationController(svc service.ReservationServiceInterface) *ReservationController {
	return &ReservationController{
		BaseController:     controller.NewBaseController(),
		ReservationService: svc,
	}
}

func (controller *ReservationController) GetReservations(c echo.Context) error {
	date := c.QueryParam("date")
	if date != "" {
		check := coreValidator.NewValidationResult()
		check.Date("date", date)
		if check.HasError() {
			return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", check)
		}
	}

	items, err := controller.ReservationService.GetReservations(c.Request().Context(), date)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, items, "get reservations success")
}

func (controller *ReservationController) GetMyReservations(c echo.Context) error {
	items, err := controller.ReservationService.GetMyReservations(c.Request().Context(), utils.GetTokenData(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, items, "get reservations success")
}

func (controller *ReservationController) GetReservation(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid reservation id")
	}

	item, err := controller.ReservationService.GetReservation(c.Request().Context(), id, utils.GetTokenData(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, item, "get reservation success")
}

func (controller *ReservationController) CreateReservation(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.ReservationRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateReservationRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	item, err := controller.ReservationService.CreateReservation(ctx, requestData, utils.GetTokenData(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.CreatedResponse(c, item, "create reservation success")
}

func (controller *ReservationController) UpdateReservation(c echo.Context) error {
	ctx := c.Request().Context()

	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid reservation id")
	}

	requestData := new(dto.ReservationRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateReservationRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	item, err := controller.ReservationService.UpdateReservation(ctx, id, requestData, utils.GetTokenData(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, item, "update reservation success")
}

func (controller *ReservationController) DeleteReservation(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid reservation id")
	}

	if err := controller.ReservationService.DeleteReservation(c.Request().Context(), id, utils.GetTokenData(c)); err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, nil, "delete reservation success")
}
