package validator

import (
	coreValidator "court-reservation-api/core/validator"
	"court-reservation-api/modules/report/dto"
)

func ValidateCreateReport(req *dto.ReportRequest) *coreValidator.ValidationResult {
	result := coreValidator.NewValidationResult()

	result.Required("type", req.Type)
	result.Required("description", req.Description)
	result.Required("user_rut", req.UserRut)
	result.RUT("user_rut", req.UserRut)
	result.Date("date", req.Date)

	return result
}

func ValidateUpdateReport(req *dto.ReportRequest) *coreValidator.ValidationResult {
	result := coreValidator.NewValidationResult()

	result.RUT("user_rut", req.UserRut)
	result.Date("date", req.Date)

	return result
}
