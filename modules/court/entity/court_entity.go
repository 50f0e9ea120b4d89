package entity

type Court struct {
	ID           int64   `db:"id_cancha"`
	Name         string  `db:"nombre"`
	Location     string  `db:"ubicacion"`
	Type         string  `db:"tipo"`
	PricePerHour float64 `db:"precio_hora"`
	Status       string  `db:"estado"`
}
