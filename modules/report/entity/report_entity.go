package entity

import "time"

type Report struct {
	ID          int64     `db:"id_reporte"`
	Date        time.Time `db:"fecha_reporte"`
	Type        string    `db:"tipo_reporte"`
	Description string    `db:"descripcion"`
	UserRut     string    `db:"rut_usuario"`

	UserName     *string `db:"usuario_nombre"`
	UserLastName *string `db:"usuario_apellido"`
}

// PaidBooking is a processed payment joined with the booking it paid for.
type PaidBooking struct {
	Amount    float64   `db:"monto"`
	PaidAt    time.Time `db:"fecha_pago"`
	StartTime string    `db:"hora_inicio"`
	CourtName string    `db:"cancha_nombre"`
}
