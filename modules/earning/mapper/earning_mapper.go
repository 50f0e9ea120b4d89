package mapper

import (
	"strings"
	"time"

	"court-reservation-api/core/constants"
	"court-reservation-api/modules/earning/dto"
	"court-reservation-api/modules/earning/entity"
)

// ToEarningEntity builds a new row. The date defaults to today.
func ToEarningEntity(req *dto.EarningRequest, now time.Time) *entity.Earning {
	e := &entity.Earning{
		Period: strings.TrimSpace(req.Period),
		Date:   strings.TrimSpace(req.Date),
	}
	if req.Bookings != nil {
		e.Bookings = *req.Bookings
	}
	if req.Total != nil {
		e.Total = *req.Total
	}
	if e.Date == "" {
		e.Date = now.Format(constants.DateLayout)
	}
	return e
}

func ApplyEarningUpdate(e *entity.Earning, req *dto.EarningRequest) {
	if req.Bookings != nil {
		e.Bookings = *req.Bookings
	}
	if v := strings.TrimSpace(req.Period); v != "" {
		e.Period = v
	}
	if req.Total != nil {
		e.Total = *req.Total
	}
	if v := strings.TrimSpace(req.Date); v != "" {
		e.Date = v
	}
}

func ToEarningResponse(e *entity.Earning) *dto.EarningResponse {
	return &dto.EarningResponse{
		ID:       e.ID,
		Bookings: e.Bookings,
		Period:   e.Period,
		Total:    e.Total,
		Date:     e.Date,
	}
}

func ToEarningListResponse(items []entity.Earning) *dto.EarningListResponse {
	out := &dto.EarningListResponse{Total: len(items), Earnings: make([]dto.EarningResponse, len(items))}
	for i := range items {
		out.Earnings[i] = *ToEarningResponse(&items[i])
	}
	return out
}
