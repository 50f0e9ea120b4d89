package repository

import (
	"context"
	"time"

	"court-reservation-api/core/constants"
	"court-reservation-api/core/database"
	"court-reservation-api/core/logger"
	"court-reservation-api/modules/availability/entity"
)

// ReservationStore is the read side the availability engine needs.
type ReservationStore interface {
	FetchConfirmed(ctx context.Context, date time.Time, courtID int64) ([]entity.ReservationWindow, error)
}

type AvailabilityRepository struct {
	DB database.IDatabase
}

func NewAvailabilityRepository(db database.IDatabase) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

// FetchConfirmed returns confirmed reservations for one court on one date,
// ordered by start time.
func (r *AvailabilityRepository) FetchConfirmed(ctx context.Context, date time.Time, courtID int64) ([]entity.ReservationWindow, error) {
	query := `
		SELECT
			to_char(hora_inicio, 'HH24:MI:SS') AS hora_inicio,
			to_char(hora_fin, 'HH24:MI:SS') AS hora_fin
		FROM reservas
		WHERE fecha = $1
		AND id_cancha = $2
		AND estado = $3
		ORDER BY 1
	`

	windows := []entity.ReservationWindow{}
	err := r.DB.SelectContext(ctx, &windows, query,
		date.Format(constants.DateLayout), courtID, constants.ReservationStatusConfirmed)
	if err != nil {
		logger.Error("AvailabilityRepository:FetchConfirmed:Error:", "court_id", courtID, "error", err)
		return nil, err
	}
	return windows, nil
}
