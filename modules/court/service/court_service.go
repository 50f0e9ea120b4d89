package service

import (
	"context"
	"encoding/json"

	"court-reservation-api/core/cache"
	"court-reservation-api/core/constants"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/logger"
	"court-reservation-api/modules/court/dto"
	"court-reservation-api/modules/court/entity"
	"court-reservation-api/modules/court/mapper"
	"court-reservation-api/modules/court/repository"
)

type CourtServiceInterface interface {
	CreateCourt(ctx context.Context, req *dto.CourtRequest) (*dto.CourtResponse, *errors.AppError)
	GetCourt(ctx context.Context, id int64) (*dto.CourtResponse, *errors.AppError)
	GetCourts(ctx context.Context) ([]dto.CourtResponse, *errors.AppError)
	UpdateCourt(ctx context.Context, id int64, req *dto.CourtRequest) (*dto.CourtResponse, *errors.AppError)
	DeleteCourt(ctx context.Context, id int64) *errors.AppError
}

type CourtService struct {
	repo  repository.CourtRepositoryInterface
	cache cache.Cache
}

func NewCourtService(repo repository.CourtRepositoryInterface, cache cache.Cache) CourtServiceInterface {
	return &CourtService{repo: repo, cache: cache}
}

func (s *CourtService) CreateCourt(ctx context.Context, req *dto.CourtRequest) (*dto.CourtResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	created, err := s.repo.Create(ctx, mapper.ToCourtEntity(req))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create court failed", err)
	}
	s.invalidate(ctx)
	return mapper.ToCourtResponse(created), nil
}

func (s *CourtService) GetCourt(ctx context.Context, id int64) (*dto.CourtResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	court, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get court failed", err)
	}
	if court == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "court not found", nil)
	}
	return mapper.ToCourtResponse(court), nil
}

// GetCourts serves the full court list from cache when possible. Cache
// errors fall through to the database.
func (s *CourtService) GetCourts(ctx context.Context) ([]dto.CourtResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if raw, ok, err := s.cache.Get(ctx, constants.CacheKeyCourtList); err != nil {
		logger.Warn("CourtService:GetCourts:CacheGet:Error:", "error", err)
	} else if ok {
		var courts []entity.Court
		if err := json.Unmarshal(raw, &courts); err == nil {
			return mapper.ToCourtResponses(courts), nil
		}
	}

	courts, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get courts failed", err)
	}

	if raw, err := json.Marshal(courts); err == nil {
		if err := s.cache.Set(ctx, constants.CacheKeyCourtList, raw, constants.CourtListTTL); err != nil {
			logger.Warn("CourtService:GetCourts:CacheSet:Error:", "error", err)
		}
	}
	return mapper.ToCourtResponses(courts), nil
}

func (s *CourtService) UpdateCourt(ctx context.Context, id int64, req *dto.CourtRequest) (*dto.CourtResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	court := mapper.ToCourtEntity(req)
	court.ID = id

	updated, err := s.repo.Update(ctx, court)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update court failed", err)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "court not found", nil)
	}
	s.invalidate(ctx)
	return mapper.ToCourtResponse(updated), nil
}

func (s *CourtService) DeleteCourt(ctx context.Context, id int64) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete court failed", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "court not found", nil)
	}
	s.invalidate(ctx)
	return nil
}

func (s *CourtService) invalidate(ctx context.Context) {
	if err := s.cache.Del(ctx, constants.CacheKeyCourtList); err != nil {
		logger.Warn("CourtService:Invalidate:Error:", "error", err)
	}
}
