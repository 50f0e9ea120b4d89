package repository

import (
	"context"
	"database/sql"
	"time"

	"court-reservation-api/core/constants"
	"court-reservation-api/core/database"
	"court-reservation-api/core/logger"
	"court-reservation-api/modules/report/entity"
)

type ReportRepository struct {
	DB database.IDatabase
}

func NewReportRepository(db database.IDatabase) *ReportRepository {
	return &ReportRepository{DB: db}
}

type ReportRepositoryInterface interface {
	Create(ctx context.Context, r *entity.Report) (*entity.Report, error)
	GetByID(ctx context.Context, id int64) (*entity.Report, error)
	List(ctx context.Context) ([]entity.Report, error)
	Update(ctx context.Context, r *entity.Report) (*entity.Report, error)
	Delete(ctx context.Context, id int64) (bool, error)
	PaidBookings(ctx context.Context, from, to time.Time) ([]entity.PaidBooking, error)
}

// The column name carries an accent in the hosted schema.
const reportColumns = `id_reporte, fecha_reporte, tipo_reporte, "descripción" AS descripcion, rut_usuario`

const reportSelect = `
	SELECT rp.id_reporte, rp.fecha_reporte, rp.tipo_reporte, rp."descripción" AS descripcion, rp.rut_usuario,
		u.nombre AS usuario_nombre, u.apellido AS usuario_apellido
	FROM reportes rp
	LEFT JOIN usuarios u ON u.rut = rp.rut_usuario`

func (r *ReportRepository) Create(ctx context.Context, rep *entity.Report) (*entity.Report, error) {
	query := `
		INSERT INTO reportes (fecha_reporte, tipo_reporte, "descripción", rut_usuario)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + reportColumns

	var created entity.Report
	if err := r.DB.GetContext(ctx, &created, query, rep.Date, rep.Type, rep.Description, rep.UserRut); err != nil {
		logger.Error("ReportRepository:Create:Error:", err)
		return nil, err
	}
	return &created, nil
}

func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*entity.Report, error) {
	var rep entity.Report
	if err := r.DB.GetContext(ctx, &rep, reportSelect+` WHERE rp.id_reporte = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ReportRepository:GetByID:Error:", "id", id, "error", err)
		return nil, err
	}
	return &rep, nil
}

func (r *ReportRepository) List(ctx context.Context) ([]entity.Report, error) {
	items := []entity.Report{}
	if err := r.DB.SelectContext(ctx, &items, reportSelect+` ORDER BY rp.fecha_reporte DESC`); err != nil {
		logger.Error("ReportRepository:List:Error:", err)
		return nil, err
	}
	return items, nil
}

func (r *ReportRepository) Update(ctx context.Context, rep *entity.Report) (*entity.Report, error) {
	query := `
		UPDATE reportes
		SET fecha_reporte = $2, tipo_reporte = $3, "descripción" = $4, rut_usuario = $5
		WHERE id_reporte = $1
		RETURNING ` + reportColumns

	var updated entity.Report
	err := r.DB.GetContext(ctx, &updated, query, rep.ID, rep.Date, rep.Type, rep.Description, rep.UserRut)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ReportRepository:Update:Error:", "id", rep.ID, "error", err)
		return nil, err
	}
	return &updated, nil
}

func (r *ReportRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.DB.NamedExecContext(ctx, `DELETE FROM reportes WHERE id_reporte = :id`, map[string]any{"id": id})
	if err != nil {
		logger.Error("ReportRepository:Delete:Error:", "id", id, "error", err)
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// PaidBookings returns processed payments with from <= fecha_pago <= to.
func (r *ReportRepository) PaidBookings(ctx context.Context, from, to time.Time) ([]entity.PaidBooking, error) {
	query := `
		SELECT
			p.monto,
			p.fecha_pago,
			to_char(rs.hora_inicio, 'HH24:MI:SS') AS hora_inicio,
			c.nombre AS cancha_nombre
		FROM pagos p
		INNER JOIN reservas rs ON rs.id_reserva = p.id_reserva
		INNER JOIN canchas c ON c.id_cancha = rs.id_cancha
		WHERE p.estado = $1 AND p.fecha_pago >= $2 AND p.fecha_pago <= $3
		ORDER BY p.fecha_pago
	`
	items := []entity.PaidBooking{}
	if err := r.DB.SelectContext(ctx, &items, query, constants.PaymentStatusProcessed, from, to); err != nil {
		logger.Error("ReportRepository:PaidBookings:Error:", err)
		return nil, err
	}
	return items, nil
}
