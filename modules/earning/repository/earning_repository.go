package repository

import (
	"context"
	"database/sql"
	"time"

	"court-reservation-api/core/constants"
	"court-reservation-api/core/database"
	"court-reservation-api/core/logger"
	"court-reservation-api/modules/earning/entity"

	"github.com/jmoiron/sqlx"
)

type EarningRepository struct {
	DB database.IDatabase
}

func NewEarningRepository(db database.IDatabase) *EarningRepository {
	return &EarningRepository{DB: db}
}

type EarningRepositoryInterface interface {
	Create(ctx context.Context, e *entity.Earning) (*entity.Earning, error)
	GetByID(ctx context.Context, id int64) (*entity.Earning, error)
	List(ctx context.Context) ([]entity.Earning, error)
	Update(ctx context.Context, e *entity.Earning) (*entity.Earning, error)
	Delete(ctx context.Context, id int64) (bool, error)
	UpsertPeriod(ctx context.Context, period string, from, to time.Time, today string) (*entity.Earning, error)
}

const earningColumns = `id_ganancia, numero_reservas, periodo, monto_total, to_char(fecha, 'YYYY-MM-DD') AS fecha`

func (r *EarningRepository) Create(ctx context.Context, e *entity.Earning) (*entity.Earning, error) {
	query := `
		INSERT INTO ganancias (numero_reservas, periodo, monto_total, fecha)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + earningColumns

	var created entity.Earning
	if err := r.DB.GetContext(ctx, &created, query, e.Bookings, e.Period, e.Total, e.Date); err != nil {
		logger.Error("EarningRepository:Create:Error:", err)
		return nil, err
	}
	return &created, nil
}

func (r *EarningRepository) GetByID(ctx context.Context, id int64) (*entity.Earning, error) {
	var e entity.Earning
	err := r.DB.GetContext(ctx, &e, `SELECT `+earningColumns+` FROM ganancias WHERE id_ganancia = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EarningRepository:GetByID:Error:", "id", id, "error", err)
		return nil, err
	}
	return &e, nil
}

func (r *EarningRepository) List(ctx context.Context) ([]entity.Earning, error) {
	items := []entity.Earning{}
	if err := r.DB.SelectContext(ctx, &items, `SELECT `+earningColumns+` FROM ganancias ORDER BY fecha DESC`); err != nil {
		logger.Error("EarningRepository:List:Error:", err)
		return nil, err
	}
	return items, nil
}

func (r *EarningRepository) Update(ctx context.Context, e *entity.Earning) (*entity.Earning, error) {
	query := `
		UPDATE ganancias
		SET numero_reservas = $2, periodo = $3, monto_total = $4, fecha = $5
		WHERE id_ganancia = $1
		RETURNING ` + earningColumns

	var updated entity.Earning
	if err := r.DB.GetContext(ctx, &updated, query, e.ID, e.Bookings, e.Period, e.Total, e.Date); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EarningRepository:Update:Error:", "id", e.ID, "error", err)
		return nil, err
	}
	return &updated, nil
}

func (r *EarningRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.DB.NamedExecContext(ctx, `DELETE FROM ganancias WHERE id_ganancia = :id`, map[string]any{"id": id})
	if err != nil {
		logger.Error("EarningRepository:Delete:Error:", "id", id, "error", err)
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// UpsertPeriod totals the processed payments in [from, to) and writes them to
// the period's row, creating it when absent.
func (r *EarningRepository) UpsertPeriod(ctx context.Context, period string, from, to time.Time, today string) (*entity.Earning, error) {
	var saved entity.Earning
	err := r.DB.WithTx(ctx, func(tx *sqlx.Tx) error {
		var totals entity.PeriodTotals
		err := tx.GetContext(ctx, &totals, `
			SELECT COUNT(DISTINCT id_reserva) AS numero_reservas, COALESCE(SUM(monto), 0) AS monto_total
			FROM pagos
			WHERE estado = $1 AND fecha_pago >= $2 AND fecha_pago < $3`,
			constants.PaymentStatusProcessed, from, to)
		if err != nil {
			return err
		}

		err = tx.GetContext(ctx, &saved, `
			UPDATE ganancias
			SET numero_reservas = $2, monto_total = $3, fecha = $4
			WHERE periodo = $1
			RETURNING `+earningColumns,
			period, totals.Bookings, totals.Total, today)
		if err != sql.ErrNoRows {
			return err
		}

		return tx.GetContext(ctx, &saved, `
			INSERT INTO ganancias (numero_reservas, periodo, monto_total, fecha)
			VALUES ($1, $2, $3, $4)
			RETURNING `+earningColumns,
			totals.Bookings, period, totals.Total, today)
	})
	if err != nil {
		logger.Error("EarningRepository:UpsertPeriod:Error:", "period", period, "error", err)
		return nil, err
	}
	return &saved, nil
}
