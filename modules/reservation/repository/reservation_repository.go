package repository

import (
	"context"
	"database/sql"

	"court-reservation-api/core/constants"
	"court-reservation-api/core/database"
	"court-reservation-api/core/logger"
	"court-reservation-api/modules/reservation/entity"
)

type ReservationRepository struct {
	DB database.IDatabase
}

func NewReservationRepository(db database.IDatabase) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

type ReservationRepositoryInterface interface {
	Create(ctx context.Context, r *entity.Reservation) (*entity.Reservation, error)
	GetByID(ctx context.Context, id int64) (*entity.Reservation, error)
	List(ctx context.Context) ([]entity.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]entity.Reservation, error)
	ListByUser(ctx context.Context, rut string) ([]entity.Reservation, error)
	Update(ctx context.Context, r *entity.Reservation) (*entity.Reservation, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ExistsConfirmed(ctx context.Context, r *entity.Reservation) (bool, error)
}

const reservationColumns = `
	r.id_reserva,
	to_char(r.fecha, 'YYYY-MM-DD') AS fecha,
	to_char(r.hora_inicio, 'HH24:MI:SS') AS hora_inicio,
	to_char(r.hora_fin, 'HH24:MI:SS') AS hora_fin,
	r.estado,
	r.id_cancha,
	r.rut_usuario`

const courtJoinColumns = `,
	c.nombre AS cancha_nombre,
	c.tipo AS cancha_tipo`

const userJoinColumns = `,
	u.nombre || ' ' || u.apellido AS usuario_nombre,
	u.correo AS usuario_correo`

func (r *ReservationRepository) Create(ctx context.Context, res *entity.Reservation) (*entity.Reservation, error) {
	query := `
		WITH r AS (
			INSERT INTO reservas (fecha, hora_inicio, hora_fin, estado, id_cancha, rut_usuario)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING *
		)
		SELECT ` + reservationColumns + ` FROM r`

	var created entity.Reservation
	err := r.DB.GetContext(ctx, &created, query,
		res.Date, res.StartTime, res.EndTime, res.Status, res.CourtID, res.UserRut)
	if err != nil {
		logger.Error("ReservationRepository:Create:Error:", err)
		return nil, err
	}
	return &created, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + courtJoinColumns + userJoinColumns + `
		FROM reservas r
		LEFT JOIN canchas c ON c.id_cancha = r.id_cancha
		LEFT JOIN usuarios u ON u.rut = r.rut_usuario
		WHERE r.id_reserva = $1`

	var res entity.Reservation
	if err := r.DB.GetContext(ctx, &res, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ReservationRepository:GetByID:Error:", "id", id, "error", err)
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + courtJoinColumns + `
		FROM reservas r
		LEFT JOIN canchas c ON c.id_cancha = r.id_cancha
		ORDER BY r.fecha DESC, r.hora_inicio`

	items := []entity.Reservation{}
	if err := r.DB.SelectContext(ctx, &items, query); err != nil {
		logger.Error("ReservationRepository:List:Error:", err)
		return nil, err
	}
	return items, nil
}

func (r *ReservationRepository) ListByDate(ctx context.Context, date string) ([]entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + courtJoinColumns + userJoinColumns + `
		FROM reservas r
		LEFT JOIN canchas c ON c.id_cancha = r.id_cancha
		LEFT JOIN usuarios u ON u.rut = r.rut_usuario
		WHERE r.fecha = $1
		ORDER BY r.hora_inicio`

	items := []entity.Reservation{}
	if err := r.DB.SelectContext(ctx, &items, query, date); err != nil {
		logger.Error("ReservationRepository:ListByDate:Error:", "date", date, "error", err)
		return nil, err
	}
	return items, nil
}

func (r *ReservationRepository) ListByUser(ctx context.Context, rut string) ([]entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + courtJoinColumns + `
		FROM reservas r
		LEFT JOIN canchas c ON c.id_cancha = r.id_cancha
		WHERE r.rut_usuario = $1
		ORDER BY r.fecha DESC, r.hora_inicio`

	items := []entity.Reservation{}
	if err := r.DB.SelectContext(ctx, &items, query, rut); err != nil {
		logger.Error("ReservationRepository:ListByUser:Error:", "rut", rut, "error", err)
		return nil, err
	}
	return items, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *entity.Reservation) (*entity.Reservation, error) {
	query := `
		WITH r AS (
			UPDATE reservas
			SET fecha = $2, hora_inicio = $3, hora_fin = $4, estado = $5, id_cancha = $6, rut_usuario = $7
			WHERE id_reserva = $1
			RETURNING *
		)
		SELECT ` + reservationColumns + ` FROM r`

	var updated entity.Reservation
	err := r.DB.GetContext(ctx, &updated, query,
		res.ID, res.Date, res.StartTime, res.EndTime, res.Status, res.CourtID, res.UserRut)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ReservationRepository:Update:Error:", "id", res.ID, "error", err)
		return nil, err
	}
	return &updated, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.DB.NamedExecContext(ctx, `DELETE FROM reservas WHERE id_reserva = :id`, map[string]any{"id": id})
	if err != nil {
		logger.Error("ReservationRepository:Delete:Error:", "id", id, "error", err)
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ExistsConfirmed reports whether another confirmed reservation holds exactly
// the same court, date and hours.
func (r *ReservationRepository) ExistsConfirmed(ctx context.Context, res *entity.Reservation) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reservas
			WHERE fecha = $1 AND id_cancha = $2
			AND hora_inicio = $3 AND hora_fin = $4
			AND estado = $5 AND id_reserva <> $6
		)`

	var exists bool
	err := r.DB.GetContext(ctx, &exists, query,
		res.Date, res.CourtID, res.StartTime, res.EndTime, constants.ReservationStatusConfirmed, res.ID)
	if err != nil {
		logger.Error("ReservationRepository:ExistsConfirmed:Error:", err)
		return false, err
	}
	return exists, nil
}
