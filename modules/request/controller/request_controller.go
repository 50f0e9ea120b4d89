package controller

import (
	"court-reservation-api/core/controller"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/utils"
	"court-reservation-api/modules/request/dto"
	"court-reservation-api/modules/request/service"
	"court-reservation-api/modules/request/validator"

	"github.com/labstack/echo/v4"
)

type RequestController struct {
	controller.BaseController
	RequestService service.RequestServiceInterface
}

func NewRequestController(svc service.RequestServiceInterface) *RequestController {
	return &RequestController{
		BaseController: controller.NewBaseController(),
		RequestService: svc,
	}
}

func (controller *RequestController) GetRequests(c echo.Context) error {
	items, err := controller.RequestService.GetRequests(c.Request().Context())
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, items, "get requests success")
}

func (controller *RequestController) GetMyRequests(c echo.Context) error {
	items, err := controller.RequestService.GetMyRequests(c.Request().Context(), utils.GetTokenData(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, items, "get requests success")
}

func (controller *RequestController) GetRequest(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid request id")
	}

	item, err := controller.RequestService.GetRequest(c.Request().Context(), id, utils.GetTokenData(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, item, "get request success")
}

func (controller *RequestController) CreateRequest(c echo.Context) error {
	requestData := new(dto.CreateRequestRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateCreateRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	item, err := controller.RequestService.CreateRequest(c.Request().Context(), requestData, utils.GetTokenData(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.CreatedResponse(c, item, "create request success")
}

func (controller *RequestController) UpdateRequest(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid request id")
	}

	requestData := new(dto.UpdateRequestRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateUpdateRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	item, err := controller.RequestService.UpdateRequest(c.Request().Context(), id, requestData, utils.GetTokenData(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, item, "update request success")
}

func (controller *RequestController) DeleteRequest(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid request id")
	}

	if err := controller.RequestService.DeleteRequest(c.Request().Context(), id, utils.GetTokenData(c)); err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, nil, "delete request success")
}

func (controller *RequestController) GetAnswer(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid request id")
	}

	item, err := controller.RequestService.GetAnswer(c.Request().Context(), id, utils.GetTokenData(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, item, "get response success")
}

func (controller *RequestController) AnswerRequest(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid request id")
	}

	requestData := new(dto.CreateAnswerRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateCreateAnswer(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	item, err := controller.RequestService.AnswerRequest(c.Request().Context(), id, requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.CreatedResponse(c, item, "create response success")
}
