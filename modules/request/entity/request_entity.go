package entity

import "time"

// Request is a schedule-change request (solicitudes).
type Request struct {
	ID           int64     `db:"id_solicitud"`
	RequestedAt  time.Time `db:"fecha_solicitud"`
	Reason       string    `db:"motivo"`
	NewStartTime *string   `db:"nueva_hora_inicio"`
	NewEndTime   *string   `db:"nueva_hora_fin"`
	Type         string    `db:"tipo_solicitud"`
	Status       string    `db:"estado_solicitud"`
	UserRut      string    `db:"rut_usuario"`

	UserName     *string `db:"usuario_nombre"`
	UserLastName *string `db:"usuario_apellido"`
}

// Response is the staff answer to a request (respuesta_solicitud).
type Response struct {
	ID          int64     `db:"id_respuesta"`
	RespondedAt time.Time `db:"fecha_respuesta"`
	Message     string    `db:"respuesta"`
	Status      string    `db:"estado"`
	RequestID   int64     `db:"id_solicitud"`
}
