package dto

import "time"

type PaymentRequest struct {
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	UserRut       string  `json:"user_rut"`
	ReservationID int64   `json:"reservation_id"`
	EarningID     *int64  `json:"earning_id"`
}

type PaymentResponse struct {
	ID            int64     `json:"id"`
	Amount        float64   `json:"amount"`
	PaidAt        time.Time `json:"paid_at"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	UserRut       string    `json:"user_rut"`
	ReservationID int64     `json:"reservation_id"`
	EarningID     *int64    `json:"earning_id"`
}

type PaymentUserSummary struct {
	Name     string `json:"name"`
	LastName string `json:"last_name"`
}

type PaymentReservationSummary struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type PaymentEarningSummary struct {
	Period string  `json:"period"`
	Total  float64 `json:"total_amount"`
}

type PaymentDetailResponse struct {
	PaymentResponse
	User        *PaymentUserSummary        `json:"user,omitempty"`
	Reservation *PaymentReservationSummary `json:"reservation,omitempty"`
	Earning     *PaymentEarningSummary     `json:"earning,omitempty"`
}

type PaymentStatisticsResponse struct {
	Total    float64        `json:"total"`
	ByStatus map[string]int `json:"by_status"`
	ByMethod map[string]int `json:"by_method"`
}

type DateRangeRequest struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

type CheckoutResponse struct {
	PaymentID    int64  `json:"payment_id"`
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type WebhookResponse struct {
	Event     string `json:"event"`
	PaymentID int64  `json:"payment_id,omitempty"`
	Status    string `json:"status,omitempty"`
}
