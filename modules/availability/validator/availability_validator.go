package validator

import (
	"time"

	"court-reservation-api/core/constants"
	"court-reservation-api/core/utils"
	coreValidator "court-reservation-api/core/validator"
	"court-reservation-api/modules/availability/dto"
)

func ValidateAvailabilityRequest(req *dto.AvailabilityRequest) *coreValidator.ValidationResult {
	result := coreValidator.NewValidationResult()

	result.Required("date", req.Date)
	result.Required("court_id", req.CourtID)

	if req.Date != "" {
		if _, err := utils.ParseDate(req.Date, time.UTC); err != nil {
			result.Add("date", "date must be DD-MM-YYYY or "+constants.DateLayout)
		}
	}
	if req.CourtID != "" && utils.ParseID(req.CourtID) == 0 {
		result.Add("court_id", "court_id must be a positive integer")
	}

	return result
}
