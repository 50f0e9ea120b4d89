package controller

import (
	"court-reservation-api/core/controller"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/params"
	"court-reservation-api/core/utils"
	"court-reservation-api/modules/user/dto"
	"court-reservation-api/modules/user/service"
	"court-reservation-api/modules/user/validator"

	"github.com/labstack/echo/v4"
)

type UserController struct {
	controller.BaseController
	UserService service.UserServiceInterface
}

func NewUserController(svc service.UserServiceInterface) *UserController {
	return &UserController{
		BaseController: controller.NewBaseController(),
		UserService:    svc,
	}
}

func (controller *UserController) Register(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.RegisterRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateRegisterRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	user, err := controller.UserService.Register(ctx, requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}

	return controller.CreatedResponse(c, user, "register success")
}

func (controller *UserController) Login(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.LoginRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateLoginRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	resp, err := controller.UserService.Login(ctx, requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}

	return controller.SuccessResponse(c, resp, "login success")
}

func (controller *UserController) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	token, err := utils.GetTokenFromHeader(c)
	if err != nil {
		return controller.Unauthorized(errors.ErrMissingAuthorizationHeader, err.Error())
	}

	if errLogout := controller.UserService.Logout(ctx, token, utils.GetTokenData(c)); errLogout != nil {
		return controller.ErrorResponse(c, errLogout)
	}

	return controller.SuccessResponse(c, nil, "logout success")
}

func (controller *UserController) Profile(c echo.Context) error {
	ctx := c.Request().Context()

	claims := utils.GetTokenData(c)
	if claims == nil {
		return controller.Unauthorized(errors.ErrUnauthorized, "unauthorized")
	}

	user, err := controller.UserService.GetUser(ctx, claims.UserID)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}

	return controller.SuccessResponse(c, user, "get profile success")
}

func (controller *UserController) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := controller.UserService.GetUsers(ctx, *params.NewQueryParams(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}

	return controller.SuccessResponse(c, users, "get users success")
}

func (controller *UserController) GetUser(c echo.Context) error {
	ctx := c.Request().Context()

	rut := c.Param("rut")
	claims := utils.GetTokenData(c)
	if claims == nil || (claims.UserID != rut && !claims.IsAdmin()) {
		return controller.Forbidden(errors.ErrForbidden, "not allowed to view this user")
	}

	user, err := controller.UserService.GetUser(ctx, rut)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}

	return controller.SuccessResponse(c, user, "get user success")
}

func (controller *UserController) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.UpdateUserRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateUpdateUserRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	user, err := controller.UserService.UpdateUser(ctx, c.Param("rut"), requestData, utils.GetTokenData(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}

	return controller.SuccessResponse(c, user, "update user success")
}

func (controller *UserController) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	if err := controller.UserService.DeleteUser(ctx, c.Param("rut")); err != nil {
		return controller.ErrorResponse(c, err)
	}

	return controller.SuccessResponse(c, nil, "delete user success")
}
