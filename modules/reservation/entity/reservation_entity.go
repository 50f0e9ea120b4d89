package entity

type Reservation struct {
	ID        int64  `db:"id_reserva"`
	Date      string `db:"fecha"`
	StartTime string `db:"hora_inicio"`
	EndTime   string `db:"hora_fin"`
	Status    string `db:"estado"`
	CourtID   int64  `db:"id_cancha"`
	UserRut   string `db:"rut_usuario"`

	// Filled by joined reads only.
	CourtName    *string `db:"cancha_nombre"`
	CourtType    *string `db:"cancha_tipo"`
	UserFullName *string `db:"usuario_nombre"`
	UserEmail    *string `db:"usuario_correo"`
}
