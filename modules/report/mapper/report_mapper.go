package mapper

import (
	"strings"
	"time"

	"court-reservation-api/modules/report/dto"
	"court-reservation-api/modules/report/entity"
)

func ToReportEntity(req *dto.ReportRequest, rut string, date time.Time) *entity.Report {
	return &entity.Report{
		Date:        date,
		Type:        strings.TrimSpace(req.Type),
		Description: strings.TrimSpace(req.Description),
		UserRut:     rut,
	}
}

func ApplyReportUpdate(r *entity.Report, req *dto.ReportRequest, date *time.Time) {
	if v := strings.TrimSpace(req.Type); v != "" {
		r.Type = v
	}
	if v := strings.TrimSpace(req.Description); v != "" {
		r.Description = v
	}
	if v := strings.TrimSpace(req.UserRut); v != "" {
		r.UserRut = v
	}
	if date != nil {
		r.Date = *date
	}
}

func ToReportResponse(r *entity.Report) *dto.ReportResponse {
	resp := &dto.ReportResponse{
		ID:          r.ID,
		Date:        r.Date,
		Type:        r.Type,
		Description: r.Description,
		UserRut:     r.UserRut,
	}
	if r.UserName != nil {
		resp.UserName = *r.UserName
		if r.UserLastName != nil {
			resp.UserName += " " + *r.UserLastName
		}
	}
	return resp
}

func ToReportResponses(items []entity.Report) []dto.ReportResponse {
	out := make([]dto.ReportResponse, len(items))
	for i := range items {
		out[i] = *ToReportResponse(&items[i])
	}
	return out
}
