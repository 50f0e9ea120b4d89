package entity

import "time"

type Payment struct {
	ID            int64     `db:"id_pago"`
	Amount        float64   `db:"monto"`
	PaidAt        time.Time `db:"fecha_pago"`
	Method        string    `db:"metodo_pago"`
	Status        string    `db:"estado"`
	UserRut       string    `db:"rut_usuario"`
	ReservationID int64     `db:"id_reserva"`
	EarningID     *int64    `db:"id_ganancia"`
}

// PaymentDetail is a payment joined with its user, reservation and earning.
type PaymentDetail struct {
	Payment

	UserName         *string  `db:"usuario_nombre"`
	UserLastName     *string  `db:"usuario_apellido"`
	ReservationDate  *string  `db:"reserva_fecha"`
	ReservationStart *string  `db:"reserva_hora_inicio"`
	ReservationEnd   *string  `db:"reserva_hora_fin"`
	EarningPeriod    *string  `db:"ganancia_periodo"`
	EarningTotal     *float64 `db:"ganancia_monto_total"`
}

// PaymentSummary is the projection used for statistics.
type PaymentSummary struct {
	Amount float64 `db:"monto"`
	Status string  `db:"estado"`
	Method string  `db:"metodo_pago"`
}

// Intent is a checkout session opened with the payment gateway.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
	Currency     string
}

// GatewayEvent is a verified webhook notification.
type GatewayEvent struct {
	Type      string
	IntentID  string
	PaymentID int64
}

const (
	GatewayEventSucceeded = "succeeded"
	GatewayEventFailed    = "failed"
	GatewayEventIgnored   = "ignored"
)
