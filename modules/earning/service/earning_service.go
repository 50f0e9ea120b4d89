package service

import (
	"context"
	"time"

	"court-reservation-api/core/constants"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/logger"
	"court-reservation-api/modules/earning/dto"
	"court-reservation-api/modules/earning/mapper"
	"court-reservation-api/modules/earning/repository"
)

type EarningServiceInterface interface {
	GetEarnings(ctx context.Context) (*dto.EarningListResponse, *errors.AppError)
	GetEarning(ctx context.Context, id int64) (*dto.EarningResponse, *errors.AppError)
	CreateEarning(ctx context.Context, req *dto.EarningRequest) (*dto.EarningResponse, *errors.AppError)
	UpdateEarning(ctx context.Context, id int64, req *dto.EarningRequest) (*dto.EarningResponse, *errors.AppError)
	DeleteEarning(ctx context.Context, id int64) *errors.AppError
	Recalculate(ctx context.Context, period string) (*dto.EarningResponse, *errors.AppError)
}

type EarningService struct {
	repo repository.EarningRepositoryInterface
	loc  *time.Location
	now  func() time.Time
}

func NewEarningService(repo repository.EarningRepositoryInterface, loc *time.Location) EarningServiceInterface {
	if loc == nil {
		loc = time.UTC
	}
	return &EarningService{repo: repo, loc: loc, now: time.Now}
}

func (s *EarningService) GetEarnings(ctx context.Context) (*dto.EarningListResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get earnings failed", err)
	}
	return mapper.ToEarningListResponse(items), nil
}

func (s *EarningService) GetEarning(ctx context.Context, id int64) (*dto.EarningResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get earning failed", err)
	}
	if e == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "earning not found", nil)
	}
	return mapper.ToEarningResponse(e), nil
}

func (s *EarningService) CreateEarning(ctx context.Context, req *dto.EarningRequest) (*dto.EarningResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	created, err := s.repo.Create(ctx, mapper.ToEarningEntity(req, s.now().In(s.loc)))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create earning failed", err)
	}
	return mapper.ToEarningResponse(created), nil
}

func (s *EarningService) UpdateEarning(ctx context.Context, id int64, req *dto.EarningRequest) (*dto.EarningResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get earning failed", err)
	}
	if current == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "earning not found", nil)
	}

	mapper.ApplyEarningUpdate(current, req)
	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update earning failed", err)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "earning not found", nil)
	}
	return mapper.ToEarningResponse(updated), nil
}

func (s *EarningService) DeleteEarning(ctx context.Context, id int64) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete earning failed", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "earning not found", nil)
	}
	return nil
}

// Recalculate rebuilds the row for a YYYY-MM period from processed payments.
func (s *EarningService) Recalculate(ctx context.Context, period string) (*dto.EarningResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	from, err := time.ParseInLocation(constants.PeriodLayout, period, s.loc)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "period must be in YYYY-MM format", err)
	}
	to := from.AddDate(0, 1, 0)

	saved, err := s.repo.UpsertPeriod(ctx, period, from, to, s.now().In(s.loc).Format(constants.DateLayout))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "recalculate earning failed", err)
	}

	logger.Info("EarningService:Recalculate", "period", period, "bookings", saved.Bookings, "total", saved.Total)
	return mapper.ToEarningResponse(saved), nil
}
