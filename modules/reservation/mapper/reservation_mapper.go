package mapper

import (
	"strings"

	"court-reservation-api/core/constants"
	"court-reservation-api/modules/reservation/dto"
	"court-reservation-api/modules/reservation/entity"
)

func ToReservationEntity(req *dto.ReservationRequest) *entity.Reservation {
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = constants.ReservationStatusPending
	}
	return &entity.Reservation{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    status,
		CourtID:   req.CourtID,
		UserRut:   strings.TrimSpace(req.UserRut),
	}
}

func ToReservationResponse(r *entity.Reservation) *dto.ReservationResponse {
	resp := &dto.ReservationResponse{
		ID:        r.ID,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Status:    r.Status,
		CourtID:   r.CourtID,
		UserRut:   r.UserRut,
	}
	if r.CourtName != nil {
		resp.Court = &dto.CourtSummary{ID: r.CourtID, Name: *r.CourtName}
		if r.CourtType != nil {
			resp.Court.Type = *r.CourtType
		}
	}
	if r.UserFullName != nil {
		resp.User = &dto.UserSummary{Rut: r.UserRut, FullName: *r.UserFullName}
		if r.UserEmail != nil {
			resp.User.Email = *r.UserEmail
		}
	}
	return resp
}

func ToReservationResponses(items []entity.Reservation) []dto.ReservationResponse {
	out := make([]dto.ReservationResponse, len(items))
	for i := range items {
		out[i] = *ToReservationResponse(&items[i])
	}
	return out
}
