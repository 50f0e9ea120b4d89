package repository

import (
	"context"
	"database/sql"

	"court-reservation-api/core/database"
	"court-reservation-api/core/logger"
	"court-reservation-api/modules/court/entity"
)

type CourtRepository struct {
	DB database.IDatabase
}

func NewCourtRepository(db database.IDatabase) *CourtRepository {
	return &CourtRepository{DB: db}
}

type CourtRepositoryInterface interface {
	Create(ctx context.Context, court *entity.Court) (*entity.Court, error)
	GetByID(ctx context.Context, id int64) (*entity.Court, error)
	List(ctx context.Context) ([]entity.Court, error)
	Update(ctx context.Context, court *entity.Court) (*entity.Court, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

const courtColumns = `id_cancha, nombre, ubicacion, tipo, precio_hora, estado`

func (r *CourtRepository) Create(ctx context.Context, court *entity.Court) (*entity.Court, error) {
	query := `
		INSERT INTO canchas (nombre, ubicacion, tipo, precio_hora, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + courtColumns

	var created entity.Court
	err := r.DB.GetContext(ctx, &created, query, court.Name, court.Location, court.Type, court.PricePerHour, court.Status)
	if err != nil {
		logger.Error("CourtRepository:Create:Error:", err)
		return nil, err
	}
	return &created, nil
}

func (r *CourtRepository) GetByID(ctx context.Context, id int64) (*entity.Court, error) {
	var court entity.Court
	err := r.DB.GetContext(ctx, &court, `SELECT `+courtColumns+` FROM canchas WHERE id_cancha = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CourtRepository:GetByID:Error:", "id", id, "error", err)
		return nil, err
	}
	return &court, nil
}

func (r *CourtRepository) List(ctx context.Context) ([]entity.Court, error) {
	courts := []entity.Court{}
	err := r.DB.SelectContext(ctx, &courts, `SELECT `+courtColumns+` FROM canchas ORDER BY id_cancha`)
	if err != nil {
		logger.Error("CourtRepository:List:Error:", err)
		return nil, err
	}
	return courts, nil
}

func (r *CourtRepository) Update(ctx context.Context, court *entity.Court) (*entity.Court, error) {
	query := `
		UPDATE canchas
		SET nombre = $2, ubicacion = $3, tipo = $4, precio_hora = $5, estado = $6
		WHERE id_cancha = $1
		RETURNING ` + courtColumns

	var updated entity.Court
	err := r.DB.GetContext(ctx, &updated, query,
		court.ID, court.Name, court.Location, court.Type, court.PricePerHour, court.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CourtRepository:Update:Error:", "id", court.ID, "error", err)
		return nil, err
	}
	return &updated, nil
}

func (r *CourtRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.DB.NamedExecContext(ctx, `DELETE FROM canchas WHERE id_cancha = :id`, map[string]any{"id": id})
	if err != nil {
		logger.Error("CourtRepository:Delete:Error:", "id", id, "error", err)
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
