package validator

import (
	"court-reservation-api/core/constants"
	coreValidator "court-reservation-api/core/validator"
	"court-reservation-api/modules/payment/dto"
)

var PaymentStatuses = []string{
	constants.PaymentStatusPending,
	constants.PaymentStatusProcessed,
	constants.PaymentStatusFailed,
	constants.PaymentStatusRefunded,
}

func ValidatePaymentRequest(req *dto.PaymentRequest) *coreValidator.ValidationResult {
	result := coreValidator.NewValidationResult()

	if req.Amount <= 0 {
		result.Add("amount", "amount must be greater than 0")
	}
	result.Required("method", req.Method)
	result.Required("user_rut", req.UserRut)
	result.RUT("user_rut", req.UserRut)
	if req.ReservationID <= 0 {
		result.Add("reservation_id", "reservation_id is required")
	}
	result.OneOf("status", req.Status, PaymentStatuses...)

	return result
}

func ValidateStatus(status string) *coreValidator.ValidationResult {
	result := coreValidator.NewValidationResult()
	result.Required("status", status)
	result.OneOf("status", status, PaymentStatuses...)
	return result
}

func ValidateDateRange(req *dto.DateRangeRequest) *coreValidator.ValidationResult {
	result := coreValidator.NewValidationResult()

	result.Required("start_date", req.StartDate)
	result.Required("end_date", req.EndDate)
	result.Date("start_date", req.StartDate)
	result.Date("end_date", req.EndDate)

	return result
}
