package mapper

import (
	"strings"

	"court-reservation-api/modules/court/dto"
	"court-reservation-api/modules/court/entity"

	"github.com/gosimple/slug"
)

const defaultCourtStatus = "disponible"

func ToCourtEntity(req *dto.CourtRequest) *entity.Court {
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = defaultCourtStatus
	}
	return &entity.Court{
		Name:         strings.TrimSpace(req.Name),
		Location:     strings.TrimSpace(req.Location),
		Type:         strings.TrimSpace(req.Type),
		PricePerHour: req.PricePerHour,
		Status:       status,
	}
}

func ToCourtResponse(court *entity.Court) *dto.CourtResponse {
	return &dto.CourtResponse{
		ID:           court.ID,
		Slug:         slug.MakeLang(court.Name, "es"),
		Name:         court.Name,
		Location:     court.Location,
		Type:         court.Type,
		PricePerHour: court.PricePerHour,
		Status:       court.Status,
	}
}

func ToCourtResponses(courts []entity.Court) []dto.CourtResponse {
	out := make([]dto.CourtResponse, len(courts))
	for i := range courts {
		out[i] = *ToCourtResponse(&courts[i])
	}
	return out
}
