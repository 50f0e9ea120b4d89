package validator

import (
	"court-reservation-api/core/constants"
	coreValidator "court-reservation-api/core/validator"
	"court-reservation-api/modules/reservation/dto"
)

const midnight = "00:00:00"

func ValidateReservationRequest(req *dto.ReservationRequest) *coreValidator.ValidationResult {
	result := coreValidator.NewValidationResult()

	result.Required("date", req.Date)
	result.Required("start_time", req.StartTime)
	result.Required("end_time", req.EndTime)
	result.Date("date", req.Date)
	result.Time("start_time", req.StartTime)
	result.Time("end_time", req.EndTime)
	result.OneOf("status", req.Status,
		constants.ReservationStatusPending,
		constants.ReservationStatusConfirmed,
		constants.ReservationStatusCancelled,
	)
	result.RUT("user_rut", req.UserRut)

	if req.CourtID <= 0 {
		result.Add("court_id", "court_id must be a positive integer")
	}

	// HH:MM:SS strings compare in time order. A block may end at midnight.
	if req.StartTime != "" && req.EndTime != "" && req.EndTime != midnight && req.EndTime <= req.StartTime {
		result.Add("end_time", "end_time must be after start_time")
	}

	return result
}
