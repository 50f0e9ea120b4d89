package validator

import (
	coreValidator "court-reservation-api/core/validator"
	"court-reservation-api/modules/court/dto"
)

func ValidateCourtRequest(req *dto.CourtRequest) *coreValidator.ValidationResult {
	result := coreValidator.NewValidationResult()

	result.Required("name", req.Name)
	result.Required("location", req.Location)
	result.Required("type", req.Type)
	if req.PricePerHour <= 0 {
		result.Add("price_per_hour", "price_per_hour must be greater than 0")
	}

	return result
}
