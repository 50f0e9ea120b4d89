package mapper

import (
	"strings"
	"time"

	"court-reservation-api/core/constants"
	"court-reservation-api/modules/payment/dto"
	"court-reservation-api/modules/payment/entity"
)

func ToPaymentEntity(req *dto.PaymentRequest, rut string, now time.Time) *entity.Payment {
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = constants.PaymentStatusPending
	}
	return &entity.Payment{
		Amount:        req.Amount,
		PaidAt:        now,
		Method:        strings.TrimSpace(req.Method),
		Status:        status,
		UserRut:       rut,
		ReservationID: req.ReservationID,
		EarningID:     req.EarningID,
	}
}

func ApplyPaymentUpdate(p *entity.Payment, req *dto.PaymentRequest) {
	p.Amount = req.Amount
	p.Method = strings.TrimSpace(req.Method)
	if v := strings.TrimSpace(req.Status); v != "" {
		p.Status = v
	}
	if v := strings.TrimSpace(req.UserRut); v != "" {
		p.UserRut = v
	}
	p.ReservationID = req.ReservationID
	if req.EarningID != nil {
		p.EarningID = req.EarningID
	}
}

func ToPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:            p.ID,
		Amount:        p.Amount,
		PaidAt:        p.PaidAt,
		Method:        p.Method,
		Status:        p.Status,
		UserRut:       p.UserRut,
		ReservationID: p.ReservationID,
		EarningID:     p.EarningID,
	}
}

func ToPaymentResponses(items []entity.Payment) []dto.PaymentResponse {
	out := make([]dto.PaymentResponse, len(items))
	for i := range items {
		out[i] = *ToPaymentResponse(&items[i])
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ToPaymentDetailResponse(d *entity.PaymentDetail) *dto.PaymentDetailResponse {
	resp := &dto.PaymentDetailResponse{PaymentResponse: *ToPaymentResponse(&d.Payment)}
	if d.UserName != nil || d.UserLastName != nil {
		resp.User = &dto.PaymentUserSummary{Name: deref(d.UserName), LastName: deref(d.UserLastName)}
	}
	if d.ReservationDate != nil {
		resp.Reservation = &dto.PaymentReservationSummary{
			Date:      *d.ReservationDate,
			StartTime: deref(d.ReservationStart),
			EndTime:   deref(d.ReservationEnd),
		}
	}
	if d.EarningPeriod != nil {
		resp.Earning = &dto.PaymentEarningSummary{Period: *d.EarningPeriod}
		if d.EarningTotal != nil {
			resp.Earning.Total = *d.EarningTotal
		}
	}
	return resp
}

func ToPaymentDetailResponses(items []entity.PaymentDetail) []dto.PaymentDetailResponse {
	out := make([]dto.PaymentDetailResponse, len(items))
	for i := range items {
		out[i] = *ToPaymentDetailResponse(&items[i])
	}
	return out
}

// ToStatistics sums amounts and counts payments per status and method.
func ToStatistics(items []entity.PaymentSummary) *dto.PaymentStatisticsResponse {
	stats := &dto.PaymentStatisticsResponse{
		ByStatus: map[string]int{},
		ByMethod: map[string]int{},
	}
	for _, it := range items {
		stats.Total += it.Amount
		stats.ByStatus[it.Status]++
		stats.ByMethod[it.Method]++
	}
	return stats
}

func ToCheckoutResponse(paymentID int64, intent *entity.Intent) *dto.CheckoutResponse {
	return &dto.CheckoutResponse{
		PaymentID:    paymentID,
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       intent.Status,
		Amount:       intent.Amount,
		Currency:     intent.Currency,
	}
}
