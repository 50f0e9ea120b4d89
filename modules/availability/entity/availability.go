package entity

import "time"

// TimeBlock is a one-hour bookable window formatted as HH:MM:SS.
type TimeBlock struct {
	Start string
	End   string
}

// ReservationWindow is the start/end of a confirmed reservation.
type ReservationWindow struct {
	Start string `db:"hora_inicio"`
	End   string `db:"hora_fin"`
}

type AvailabilityQuery struct {
	Date    time.Time
	CourtID int64
}

type Availability struct {
	Date    time.Time
	CourtID int64
	Blocks  []TimeBlock
}
