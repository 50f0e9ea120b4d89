package repository

import (
	"context"
	"database/sql"
	"fmt"

	"court-reservation-api/core/database"
	"court-reservation-api/core/logger"
	"court-reservation-api/core/params"
	"court-reservation-api/modules/user/entity"
)

type UserRepository struct {
	DB database.IDatabase
}

func NewUserRepository(db database.IDatabase) *UserRepository {
	return &UserRepository{DB: db}
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entity.User) error
	GetByRut(ctx context.Context, rut string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, params params.QueryParams) (*entity.PaginatedUserResponse, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, rut string) (bool, error)
}

const userColumns = `rut, nombre, apellido, correo, "contraseña" AS contrasena, rol, estado, telefono`

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO usuarios (rut, nombre, apellido, correo, "contraseña", rol, estado, telefono)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	err := r.DB.ExecContext(ctx, query,
		user.Rut, user.Name, user.LastName, user.Email, user.Password, user.Role, user.Status, user.Phone)
	if err != nil {
		logger.Error("UserRepository:Create:Error:", "rut", user.Rut, "error", err)
		return err
	}
	return nil
}

func (r *UserRepository) GetByRut(ctx context.Context, rut string) (*entity.User, error) {
	var user entity.User
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE rut = $1`
	if err := r.DB.GetContext(ctx, &user, query, rut); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByRut:Error:", "rut", rut, "error", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE lower(correo) = lower($1)`
	if err := r.DB.GetContext(ctx, &user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByEmail:Error:", "error", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, params params.QueryParams) (*entity.PaginatedUserResponse, error) {
	where := ""
	args := []any{}
	if params.Search != "" {
		where = ` WHERE nombre ILIKE $1 OR apellido ILIKE $1 OR correo ILIKE $1 OR rut ILIKE $1`
		args = append(args, "%"+params.Search+"%")
	}

	var total int
	if err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM usuarios`+where, args...); err != nil {
		logger.Error("UserRepository:List:Count:Error:", "error", err)
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM usuarios%s ORDER BY apellido, nombre LIMIT $%d OFFSET $%d`,
		userColumns, where, len(args)+1, len(args)+2)
	users := []entity.User{}
	if err := r.DB.SelectContext(ctx, &users, query, append(args, params.PageSize, params.Offset())...); err != nil {
		logger.Error("UserRepository:List:Error:", "error", err)
		return nil, err
	}

	return &entity.PaginatedUserResponse{
		Items:      users,
		TotalItems: total,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE usuarios
		SET nombre = $2, apellido = $3, correo = $4, "contraseña" = $5, rol = $6, estado = $7, telefono = $8
		WHERE rut = $1
	`
	err := r.DB.ExecContext(ctx, query,
		user.Rut, user.Name, user.LastName, user.Email, user.Password, user.Role, user.Status, user.Phone)
	if err != nil {
		logger.Error("UserRepository:Update:Error:", "rut", user.Rut, "error", err)
		return err
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, rut string) (bool, error) {
	result, err := r.DB.NamedExecContext(ctx, `DELETE FROM usuarios WHERE rut = :rut`, map[string]any{"rut": rut})
	if err != nil {
		logger.Error("UserRepository:Delete:Error:", "rut", rut, "error", err)
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
