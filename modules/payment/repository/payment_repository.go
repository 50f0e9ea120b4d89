package repository

import (
	"context"
	"database/sql"
	"time"

	"court-reservation-api/core/database"
	"court-reservation-api/core/logger"
	"court-reservation-api/modules/payment/entity"
)

type PaymentRepository struct {
	DB database.IDatabase
}

func NewPaymentRepository(db database.IDatabase) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

type PaymentRepositoryInterface interface {
	Create(ctx context.Context, p *entity.Payment) (*entity.Payment, error)
	GetByID(ctx context.Context, id int64) (*entity.Payment, error)
	List(ctx context.Context) ([]entity.Payment, error)
	ListDetailed(ctx context.Context) ([]entity.PaymentDetail, error)
	ListByStatus(ctx context.Context, status string) ([]entity.Payment, error)
	ListByUser(ctx context.Context, rut string) ([]entity.Payment, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]entity.Payment, error)
	Summaries(ctx context.Context) ([]entity.PaymentSummary, error)
	Update(ctx context.Context, p *entity.Payment) (*entity.Payment, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*entity.Payment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

const paymentColumns = `id_pago, monto, fecha_pago, metodo_pago, estado, rut_usuario, id_reserva, id_ganancia`

func (r *PaymentRepository) Create(ctx context.Context, p *entity.Payment) (*entity.Payment, error) {
	query := `
		INSERT INTO pagos (monto, fecha_pago, metodo_pago, estado, rut_usuario, id_reserva, id_ganancia)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + paymentColumns

	var created entity.Payment
	err := r.DB.GetContext(ctx, &created, query,
		p.Amount, p.PaidAt, p.Method, p.Status, p.UserRut, p.ReservationID, p.EarningID)
	if err != nil {
		logger.Error("PaymentRepository:Create:Error:", err)
		return nil, err
	}
	return &created, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.GetContext(ctx, &p, `SELECT `+paymentColumns+` FROM pagos WHERE id_pago = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("PaymentRepository:GetByID:Error:", "id", id, "error", err)
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]entity.Payment, error) {
	return r.selectPayments(ctx, "List", `SELECT `+paymentColumns+` FROM pagos ORDER BY fecha_pago DESC`)
}

func (r *PaymentRepository) ListByStatus(ctx context.Context, status string) ([]entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM pagos WHERE estado = $1 ORDER BY fecha_pago DESC`
	return r.selectPayments(ctx, "ListByStatus", query, status)
}

func (r *PaymentRepository) ListByUser(ctx context.Context, rut string) ([]entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM pagos WHERE rut_usuario = $1 ORDER BY fecha_pago DESC`
	return r.selectPayments(ctx, "ListByUser", query, rut)
}

// ListBetween returns payments with from <= fecha_pago < to, newest first.
func (r *PaymentRepository) ListBetween(ctx context.Context, from, to time.Time) ([]entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM pagos WHERE fecha_pago >= $1 AND fecha_pago < $2 ORDER BY fecha_pago DESC`
	return r.selectPayments(ctx, "ListBetween", query, from, to)
}

func (r *PaymentRepository) selectPayments(ctx context.Context, op, query string, args ...any) ([]entity.Payment, error) {
	items := []entity.Payment{}
	if err := r.DB.SelectContext(ctx, &items, query, args...); err != nil {
		logger.Error("PaymentRepository:"+op+":Error:", err)
		return nil, err
	}
	return items, nil
}

func (r *PaymentRepository) ListDetailed(ctx context.Context) ([]entity.PaymentDetail, error) {
	query := `
		SELECT
			p.id_pago, p.monto, p.fecha_pago, p.metodo_pago, p.estado, p.rut_usuario, p.id_reserva, p.id_ganancia,
			u.nombre AS usuario_nombre,
			u.apellido AS usuario_apellido,
			to_char(r.fecha, 'YYYY-MM-DD') AS reserva_fecha,
			to_char(r.hora_inicio, 'HH24:MI:SS') AS reserva_hora_inicio,
			to_char(r.hora_fin, 'HH24:MI:SS') AS reserva_hora_fin,
			g.periodo AS ganancia_periodo,
			g.monto_total AS ganancia_monto_total
		FROM pagos p
		LEFT JOIN usuarios u ON u.rut = p.rut_usuario
		LEFT JOIN reservas r ON r.id_reserva = p.id_reserva
		LEFT JOIN ganancias g ON g.id_ganancia = p.id_ganancia
		ORDER BY p.fecha_pago DESC
	`
	items := []entity.PaymentDetail{}
	if err := r.DB.SelectContext(ctx, &items, query); err != nil {
		logger.Error("PaymentRepository:ListDetailed:Error:", err)
		return nil, err
	}
	return items, nil
}

func (r *PaymentRepository) Summaries(ctx context.Context) ([]entity.PaymentSummary, error) {
	items := []entity.PaymentSummary{}
	if err := r.DB.SelectContext(ctx, &items, `SELECT monto, estado, metodo_pago FROM pagos`); err != nil {
		logger.Error("PaymentRepository:Summaries:Error:", err)
		return nil, err
	}
	return items, nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *entity.Payment) (*entity.Payment, error) {
	query := `
		UPDATE pagos
		SET monto = $2, metodo_pago = $3, estado = $4, rut_usuario = $5, id_reserva = $6, id_ganancia = $7
		WHERE id_pago = $1
		RETURNING ` + paymentColumns

	var updated entity.Payment
	err := r.DB.GetContext(ctx, &updated, query,
		p.ID, p.Amount, p.Method, p.Status, p.UserRut, p.ReservationID, p.EarningID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("PaymentRepository:Update:Error:", "id", p.ID, "error", err)
		return nil, err
	}
	return &updated, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Payment, error) {
	var updated entity.Payment
	err := r.DB.GetContext(ctx, &updated,
		`UPDATE pagos SET estado = $2 WHERE id_pago = $1 RETURNING `+paymentColumns, id, status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("PaymentRepository:UpdateStatus:Error:", "id", id, "error", err)
		return nil, err
	}
	return &updated, nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.DB.NamedExecContext(ctx, `DELETE FROM pagos WHERE id_pago = :id`, map[string]any{"id": id})
	if err != nil {
		logger.Error("PaymentRepository:Delete:Error:", "id", id, "error", err)
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
