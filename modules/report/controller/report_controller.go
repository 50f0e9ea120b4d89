package controller

import (
	"court-reservation-api/core/controller"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/utils"
	"court-reservation-api/modules/report/dto"
	"court-reservation-api/modules/report/service"
	"court-reservation-api/modules/report/validator"

	"github.com/labstack/echo/v4"
)

type ReportController struct {
	controller.BaseController
	ReportService service.ReportServiceInterface
}

func NewReportController(svc service.ReportServiceInterface) *ReportController {
	return &ReportController{
		BaseController: controller.NewBaseController(),
		ReportService:  svc,
	}
}

func (controller *ReportController) GetReports(c echo.Context) error {
	items, err := controller.ReportService.GetReports(c.Request().Context())
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, items, "get reports success")
}

func (controller *ReportController) GetReport(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid report id")
	}

	item, err := controller.ReportService.GetReport(c.Request().Context(), id)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, item, "get report success")
}

func (controller *ReportController) CreateReport(c echo.Context) error {
	requestData := new(dto.ReportRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateCreateReport(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	item, err := controller.ReportService.CreateReport(c.Request().Context(), requestData, utils.GetTokenData(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.CreatedResponse(c, item, "create report success")
}

func (controller *ReportController) UpdateReport(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid report id")
	}

	requestData := new(dto.ReportRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateUpdateReport(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	item, err := controller.ReportService.UpdateReport(c.Request().Context(), id, requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, item, "update report success")
}

func (controller *ReportController) DeleteReport(c echo.Context) error {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		return controller.BadRequest(errors.ErrInvalidInput, "invalid report id")
	}

	if err := controller.ReportService.DeleteReport(c.Request().Context(), id); err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, nil, "delete report success")
}

func (controller *ReportController) GetStatistics(c echo.Context) error {
	stats, err := controller.ReportService.GetStatistics(c.Request().Context())
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, stats, "get statistics success")
}

func (controller *ReportController) ExportStatistics(c echo.Context) error {
	result, err := controller.ReportService.RequestExport(c.Request().Context(), utils.GetTokenData(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.AcceptedResponse(c, result, "export queued")
}
