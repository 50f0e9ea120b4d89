package entity

// Earning is a revenue summary for one period (ganancias).
type Earning struct {
	ID       int64   `db:"id_ganancia"`
	Bookings int     `db:"numero_reservas"`
	Period   string  `db:"periodo"`
	Total    float64 `db:"monto_total"`
	Date     string  `db:"fecha"`
}

// PeriodTotals is the aggregate of processed payments inside a period.
type PeriodTotals struct {
	Bookings int     `db:"numero_reservas"`
	Total    float64 `db:"monto_total"`
}
