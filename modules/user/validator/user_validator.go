package validator

import (
	"court-reservation-api/core/constants"
	coreValidator "court-reservation-api/core/validator"
	"court-reservation-api/modules/user/dto"
	"court-reservation-api/modules/user/mapper"
)

const minPasswordLength = 6

func ValidateRegisterRequest(req *dto.RegisterRequest) *coreValidator.ValidationResult {
	result := coreValidator.NewValidationResult()

	result.Required("rut", req.Rut)
	result.Required("name", req.Name)
	result.Required("last_name", req.LastName)
	result.Required("email", req.Email)
	result.Required("password", req.Password)

	result.RUT("rut", req.Rut)
	result.Email("email", req.Email)
	if req.Password != "" && len(req.Password) < minPasswordLength {
		result.Add("password", "password must have at least 6 characters")
	}

	return result
}

func ValidateLoginRequest(req *dto.LoginRequest) *coreValidator.ValidationResult {
	result := coreValidator.NewValidationResult()

	result.Required("email", req.Email)
	result.Required("password", req.Password)

	return result
}

func ValidateUpdateUserRequest(req *dto.UpdateUserRequest) *coreValidator.ValidationResult {
	result := coreValidator.NewValidationResult()

	result.Email("email", req.Email)
	result.OneOf("role", req.Role, constants.RoleAdmin, constants.RoleClient)
	if req.Status != "" {
		if _, ok := mapper.NormalizeStatus(req.Status); !ok {
			result.Add("status", "status must be Activo or Inactivo")
		}
	}
	if req.Password != "" && len(req.Password) < minPasswordLength {
		result.Add("password", "password must have at least 6 characters")
	}

	return result
}
