package mapper

import (
	"strings"
	"time"

	"court-reservation-api/core/constants"
	"court-reservation-api/modules/request/dto"
	"court-reservation-api/modules/request/entity"
)

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func ToRequestEntity(req *dto.CreateRequestRequest, rut string, now time.Time) *entity.Request {
	return &entity.Request{
		RequestedAt:  now,
		Reason:       strings.TrimSpace(req.Reason),
		NewStartTime: optional(req.NewStartTime),
		NewEndTime:   optional(req.NewEndTime),
		Type:         strings.TrimSpace(req.Type),
		Status:       constants.RequestStatusPending,
		UserRut:      rut,
	}
}

// ApplyRequestUpdate copies non-empty fields of req onto r.
func ApplyRequestUpdate(r *entity.Request, req *dto.UpdateRequestRequest) {
	if v := strings.TrimSpace(req.Reason); v != "" {
		r.Reason = v
	}
	if v := optional(req.NewStartTime); v != nil {
		r.NewStartTime = v
	}
	if v := optional(req.NewEndTime); v != nil {
		r.NewEndTime = v
	}
	if v := strings.TrimSpace(req.Type); v != "" {
		r.Type = v
	}
	if v := strings.TrimSpace(req.Status); v != "" {
		r.Status = v
	}
}

func ToRequestResponse(r *entity.Request) *dto.RequestResponse {
	resp := &dto.RequestResponse{
		ID:           r.ID,
		RequestedAt:  r.RequestedAt,
		Reason:       r.Reason,
		NewStartTime: r.NewStartTime,
		NewEndTime:   r.NewEndTime,
		Type:         r.Type,
		Status:       r.Status,
		UserRut:      r.UserRut,
	}
	if r.UserName != nil {
		resp.UserName = *r.UserName
		if r.UserLastName != nil {
			resp.UserName += " " + *r.UserLastName
		}
	}
	return resp
}

func ToRequestResponses(items []entity.Request) []dto.RequestResponse {
	out := make([]dto.RequestResponse, len(items))
	for i := range items {
		out[i] = *ToRequestResponse(&items[i])
	}
	return out
}

func ToAnswerResponse(a *entity.Response) *dto.AnswerResponse {
	return &dto.AnswerResponse{
		ID:          a.ID,
		RespondedAt: a.RespondedAt,
		Message:     a.Message,
		Status:      a.Status,
		RequestID:   a.RequestID,
	}
}
