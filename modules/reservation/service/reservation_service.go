package service

import (
	"context"

	"court-reservation-api/core/constants"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/logger"
	"court-reservation-api/core/utils"
	"court-reservation-api/modules/reservation/dto"
	"court-reservation-api/modules/reservation/entity"
	"court-reservation-api/modules/reservation/mapper"
	"court-reservation-api/modules/reservation/repository"
)

type ReservationServiceInterface interface {
	GetReservations(ctx context.Context, date string) ([]dto.ReservationResponse, *errors.AppError)
	GetMyReservations(ctx context.Context, actor *utils.TokenClaims) ([]dto.ReservationResponse, *errors.AppError)
	GetReservation(ctx context.Context, id int64, actor *utils.TokenClaims) (*dto.ReservationResponse, *errors.AppError)
	CreateReservation(ctx context.Context, req *dto.ReservationRequest, actor *utils.TokenClaims) (*dto.ReservationResponse, *errors.AppError)
	UpdateReservation(ctx context.Context, id int64, req *dto.ReservationRequest, actor *utils.TokenClaims) (*dto.ReservationResponse, *errors.AppError)
	DeleteReservation(ctx context.Context, id int64, actor *utils.TokenClaims) *errors.AppError
}

type ReservationService struct {
	repo repository.ReservationRepositoryInterface
}

func NewReservationService(repo repository.ReservationRepositoryInterface) ReservationServiceInterface {
	return &ReservationService{repo: repo}
}

// GetReservations lists every reservation, or those on one date (YYYY-MM-DD) when given.
func (s *ReservationService) GetReservations(ctx context.Context, date string) ([]dto.ReservationResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	var (
		items []entity.Reservation
		err   error
	)
	if date != "" {
		items, err = s.repo.ListByDate(ctx, date)
	} else {
		items, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get reservations failed", err)
	}
	return mapper.ToReservationResponses(items), nil
}

func (s *ReservationService) GetMyReservations(ctx context.Context, actor *utils.TokenClaims) ([]dto.ReservationResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if actor == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "unauthorized", nil)
	}
	items, err := s.repo.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get reservations failed", err)
	}
	return mapper.ToReservationResponses(items), nil
}

func (s *ReservationService) GetReservation(ctx context.Context, id int64, actor *utils.TokenClaims) (*dto.ReservationResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	res, appErr := s.load(ctx, id, actor)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToReservationResponse(res), nil
}

// CreateReservation books for the caller. Admins may book on behalf of another user
// and are the only ones allowed to set a status other than pending.
func (s *ReservationService) CreateReservation(ctx context.Context, req *dto.ReservationRequest, actor *utils.TokenClaims) (*dto.ReservationResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if actor == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "unauthorized", nil)
	}

	res := mapper.ToReservationEntity(req)
	if res.UserRut == "" || !actor.IsAdmin() {
		res.UserRut = actor.UserID
	}
	if !actor.IsAdmin() && res.Status != constants.ReservationStatusPending {
		return nil, errors.NewAppError(errors.ErrForbidden, "only admins can set the reservation status", nil)
	}

	if appErr := s.checkConflict(ctx, res); appErr != nil {
		return nil, appErr
	}

	created, err := s.repo.Create(ctx, res)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create reservation failed", err)
	}

	logger.Info("ReservationService:CreateReservation:Success",
		"id", created.ID, "court_id", created.CourtID, "date", created.Date, "start", created.StartTime)
	return mapper.ToReservationResponse(created), nil
}

func (s *ReservationService) UpdateReservation(ctx context.Context, id int64, req *dto.ReservationRequest, actor *utils.TokenClaims) (*dto.ReservationResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	current, appErr := s.load(ctx, id, actor)
	if appErr != nil {
		return nil, appErr
	}

	res := mapper.ToReservationEntity(req)
	res.ID = id
	res.UserRut = current.UserRut
	if actor.IsAdmin() && req.UserRut != "" {
		res.UserRut = req.UserRut
	}
	if !actor.IsAdmin() {
		if req.Status != "" && req.Status != current.Status {
			return nil, errors.NewAppError(errors.ErrForbidden, "only admins can change the reservation status", nil)
		}
		res.Status = current.Status
	}

	if appErr := s.checkConflict(ctx, res); appErr != nil {
		return nil, appErr
	}

	updated, err := s.repo.Update(ctx, res)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update reservation failed", err)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "reservation not found", nil)
	}
	return mapper.ToReservationResponse(updated), nil
}

func (s *ReservationService) DeleteReservation(ctx context.Context, id int64, actor *utils.TokenClaims) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.load(ctx, id, actor); appErr != nil {
		return appErr
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete reservation failed", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "reservation not found", nil)
	}
	return nil
}

// load fetches a reservation the actor is allowed to see.
func (s *ReservationService) load(ctx context.Context, id int64, actor *utils.TokenClaims) (*entity.Reservation, *errors.AppError) {
	if actor == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "unauthorized", nil)
	}
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get reservation failed", err)
	}
	if res == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "reservation not found", nil)
	}
	if res.UserRut != actor.UserID && !actor.IsAdmin() {
		return nil, errors.NewAppError(errors.ErrForbidden, "not allowed to access this reservation", nil)
	}
	return res, nil
}

// checkConflict rejects a second confirmed reservation for the same block.
// Only confirmed reservations hold a block, so only they are checked.
func (s *ReservationService) checkConflict(ctx context.Context, res *entity.Reservation) *errors.AppError {
	if res.Status != constants.ReservationStatusConfirmed {
		return nil
	}
	exists, err := s.repo.ExistsConfirmed(ctx, res)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "failed to check reservation conflicts", err)
	}
	if exists {
		return errors.NewAppError(errors.ErrConflict, "the court is already booked for that time", nil)
	}
	return nil
}
