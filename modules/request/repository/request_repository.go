package repository

import (
	"context"
	"database/sql"
	stdErrors "errors"

	"court-reservation-api/core/database"
	"court-reservation-api/core/logger"
	"court-reservation-api/modules/request/entity"

	"github.com/jmoiron/sqlx"
)

// ErrRequestNotFound is returned when an answer targets a missing request.
var ErrRequestNotFound = stdErrors.New("request not found")

type RequestRepository struct {
	DB database.IDatabase
}

func NewRequestRepository(db database.IDatabase) *RequestRepository {
	return &RequestRepository{DB: db}
}

type RequestRepositoryInterface interface {
	Create(ctx context.Context, r *entity.Request) (*entity.Request, error)
	GetByID(ctx context.Context, id int64) (*entity.Request, error)
	List(ctx context.Context) ([]entity.Request, error)
	ListByUser(ctx context.Context, rut string) ([]entity.Request, error)
	Update(ctx context.Context, r *entity.Request) error
	Delete(ctx context.Context, id int64) (bool, error)
	GetAnswer(ctx context.Context, requestID int64) (*entity.Response, error)
	CreateAnswer(ctx context.Context, a *entity.Response) (*entity.Response, error)
}

const requestColumns = `
	s.id_solicitud,
	s.fecha_solicitud,
	s.motivo,
	to_char(s.nueva_hora_inicio, 'HH24:MI:SS') AS nueva_hora_inicio,
	to_char(s.nueva_hora_fin, 'HH24:MI:SS') AS nueva_hora_fin,
	s.tipo_solicitud,
	s.estado_solicitud,
	s.rut_usuario`

const requestSelect = `SELECT ` + requestColumns + `,
		u.nombre AS usuario_nombre,
		u.apellido AS usuario_apellido
	FROM solicitudes s
	LEFT JOIN usuarios u ON u.rut = s.rut_usuario`

func (r *RequestRepository) Create(ctx context.Context, req *entity.Request) (*entity.Request, error) {
	query := `
		WITH s AS (
			INSERT INTO solicitudes (fecha_solicitud, motivo, nueva_hora_inicio, nueva_hora_fin, tipo_solicitud, estado_solicitud, rut_usuario)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)
		SELECT ` + requestColumns + ` FROM s`

	var created entity.Request
	err := r.DB.GetContext(ctx, &created, query,
		req.RequestedAt, req.Reason, req.NewStartTime, req.NewEndTime, req.Type, req.Status, req.UserRut)
	if err != nil {
		logger.Error("RequestRepository:Create:Error:", err)
		return nil, err
	}
	return &created, nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*entity.Request, error) {
	var req entity.Request
	if err := r.DB.GetContext(ctx, &req, requestSelect+` WHERE s.id_solicitud = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RequestRepository:GetByID:Error:", "id", id, "error", err)
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepository) List(ctx context.Context) ([]entity.Request, error) {
	items := []entity.Request{}
	if err := r.DB.SelectContext(ctx, &items, requestSelect+` ORDER BY s.fecha_solicitud DESC`); err != nil {
		logger.Error("RequestRepository:List:Error:", err)
		return nil, err
	}
	return items, nil
}

func (r *RequestRepository) ListByUser(ctx context.Context, rut string) ([]entity.Request, error) {
	items := []entity.Request{}
	query := requestSelect + ` WHERE s.rut_usuario = $1 ORDER BY s.fecha_solicitud DESC`
	if err := r.DB.SelectContext(ctx, &items, query, rut); err != nil {
		logger.Error("RequestRepository:ListByUser:Error:", "rut", rut, "error", err)
		return nil, err
	}
	return items, nil
}

func (r *RequestRepository) Update(ctx context.Context, req *entity.Request) error {
	query := `
		UPDATE solicitudes
		SET motivo = $2, nueva_hora_inicio = $3, nueva_hora_fin = $4, tipo_solicitud = $5, estado_solicitud = $6
		WHERE id_solicitud = $1
	`
	if err := r.DB.ExecContext(ctx, query,
		req.ID, req.Reason, req.NewStartTime, req.NewEndTime, req.Type, req.Status); err != nil {
		logger.Error("RequestRepository:Update:Error:", "id", req.ID, "error", err)
		return err
	}
	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.DB.NamedExecContext(ctx, `DELETE FROM solicitudes WHERE id_solicitud = :id`, map[string]any{"id": id})
	if err != nil {
		logger.Error("RequestRepository:Delete:Error:", "id", id, "error", err)
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *RequestRepository) GetAnswer(ctx context.Context, requestID int64) (*entity.Response, error) {
	query := `
		SELECT id_respuesta, fecha_respuesta, respuesta, estado, id_solicitud
		FROM respuesta_solicitud
		WHERE id_solicitud = $1
		ORDER BY fecha_respuesta DESC
		LIMIT 1
	`
	var answer entity.Response
	if err := r.DB.GetContext(ctx, &answer, query, requestID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RequestRepository:GetAnswer:Error:", "request_id", requestID, "error", err)
		return nil, err
	}
	return &answer, nil
}

// CreateAnswer stores the answer and moves the request to the answer's status
// in one transaction.
func (r *RequestRepository) CreateAnswer(ctx context.Context, a *entity.Response) (*entity.Response, error) {
	var created entity.Response
	err := r.DB.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE solicitudes SET estado_solicitud = $2 WHERE id_solicitud = $1`, a.RequestID, a.Status)
		if err != nil {
			return err
		}
		if affected, err := result.RowsAffected(); err != nil {
			return err
		} else if affected == 0 {
			return ErrRequestNotFound
		}

		return tx.GetContext(ctx, &created, `
			INSERT INTO respuesta_solicitud (fecha_respuesta, respuesta, estado, id_solicitud)
			VALUES ($1, $2, $3, $4)
			RETURNING id_respuesta, fecha_respuesta, respuesta, estado, id_solicitud`,
			a.RespondedAt, a.Message, a.Status, a.RequestID)
	})
	if err != nil {
		if !stdErrors.Is(err, ErrRequestNotFound) {
			logger.Error("RequestRepository:CreateAnswer:Error:", "request_id", a.RequestID, "error", err)
		}
		return nil, err
	}
	return &created, nil
}
