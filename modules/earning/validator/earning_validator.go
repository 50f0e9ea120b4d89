package validator

import (
	"time"

	"court-reservation-api/core/constants"
	coreValidator "court-reservation-api/core/validator"
	"court-reservation-api/modules/earning/dto"
)

func ValidateCreateEarning(req *dto.EarningRequest) *coreValidator.ValidationResult {
	result := coreValidator.NewValidationResult()

	if req.Bookings == nil {
		result.Add("bookings", "bookings is required")
	}
	result.Required("period", req.Period)
	if req.Total == nil {
		result.Add("total_amount", "total_amount is required")
	}
	validateValues(result, req)

	return result
}

func ValidateUpdateEarning(req *dto.EarningRequest) *coreValidator.ValidationResult {
	result := coreValidator.NewValidationResult()
	validateValues(result, req)
	return result
}

func ValidateRecalculate(req *dto.RecalculateRequest) *coreValidator.ValidationResult {
	result := coreValidator.NewValidationResult()

	result.Required("period", req.Period)
	if req.Period != "" {
		if _, err := time.Parse(constants.PeriodLayout, req.Period); err != nil {
			result.Add("period", "period must be in YYYY-MM format")
		}
	}

	return result
}

func validateValues(result *coreValidator.ValidationResult, req *dto.EarningRequest) {
	if req.Bookings != nil && *req.Bookings < 0 {
		result.Add("bookings", "bookings must not be negative")
	}
	if req.Total != nil && *req.Total < 0 {
		result.Add("total_amount", "total_amount must not be negative")
	}
	result.Date("date", req.Date)
}
