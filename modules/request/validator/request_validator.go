package validator

import (
	"court-reservation-api/core/constants"
	coreValidator "court-reservation-api/core/validator"
	"court-reservation-api/modules/request/dto"
)

var requestStatuses = []string{
	constants.RequestStatusPending,
	constants.RequestStatusApproved,
	constants.RequestStatusRejected,
}

func ValidateCreateRequest(req *dto.CreateRequestRequest) *coreValidator.ValidationResult {
	result := coreValidator.NewValidationResult()

	result.Required("reason", req.Reason)
	result.Required("type", req.Type)
	result.Time("new_start_time", req.NewStartTime)
	result.Time("new_end_time", req.NewEndTime)
	result.RUT("user_rut", req.UserRut)

	return result
}

func ValidateUpdateRequest(req *dto.UpdateRequestRequest) *coreValidator.ValidationResult {
	result := coreValidator.NewValidationResult()

	result.Time("new_start_time", req.NewStartTime)
	result.Time("new_end_time", req.NewEndTime)
	result.OneOf("status", req.Status, requestStatuses...)

	return result
}

func ValidateCreateAnswer(req *dto.CreateAnswerRequest) *coreValidator.ValidationResult {
	result := coreValidator.NewValidationResult()

	result.Required("message", req.Message)
	result.Required("status", req.Status)
	result.OneOf("status", req.Status, requestStatuses...)

	return result
}
