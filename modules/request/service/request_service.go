package service

import (
	"context"
	stdErrors "errors"
	"strings"
	"time"

	"court-reservation-api/core/constants"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/utils"
	"court-reservation-api/modules/request/dto"
	"court-reservation-api/modules/request/entity"
	"court-reservation-api/modules/request/mapper"
	"court-reservation-api/modules/request/repository"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context) ([]dto.RequestResponse, *errors.AppError)
	GetMyRequests(ctx context.Context, actor *utils.TokenClaims) ([]dto.RequestResponse, *errors.AppError)
	GetRequest(ctx context.Context, id int64, actor *utils.TokenClaims) (*dto.RequestResponse, *errors.AppError)
	CreateRequest(ctx context.Context, req *dto.CreateRequestRequest, actor *utils.TokenClaims) (*dto.RequestResponse, *errors.AppError)
	UpdateRequest(ctx context.Context, id int64, req *dto.UpdateRequestRequest, actor *utils.TokenClaims) (*dto.RequestResponse, *errors.AppError)
	DeleteRequest(ctx context.Context, id int64, actor *utils.TokenClaims) *errors.AppError
	GetAnswer(ctx context.Context, requestID int64, actor *utils.TokenClaims) (*dto.AnswerResponse, *errors.AppError)
	AnswerRequest(ctx context.Context, requestID int64, req *dto.CreateAnswerRequest) (*dto.AnswerResponse, *errors.AppError)
}

type RequestService struct {
	repo repository.RequestRepositoryInterface
	now  func() time.Time
}

func NewRequestService(repo repository.RequestRepositoryInterface) RequestServiceInterface {
	return &RequestService{repo: repo, now: time.Now}
}

func (s *RequestService) GetRequests(ctx context.Context) ([]dto.RequestResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get requests failed", err)
	}
	return mapper.ToRequestResponses(items), nil
}

func (s *RequestService) GetMyRequests(ctx context.Context, actor *utils.TokenClaims) ([]dto.RequestResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if actor == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "unauthorized", nil)
	}
	items, err := s.repo.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get requests failed", err)
	}
	return mapper.ToRequestResponses(items), nil
}

func (s *RequestService) GetRequest(ctx context.Context, id int64, actor *utils.TokenClaims) (*dto.RequestResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	req, appErr := s.load(ctx, id, actor)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToRequestResponse(req), nil
}

func (s *RequestService) CreateRequest(ctx context.Context, req *dto.CreateRequestRequest, actor *utils.TokenClaims) (*dto.RequestResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if actor == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "unauthorized", nil)
	}
	rut := actor.UserID
	if actor.IsAdmin() && strings.TrimSpace(req.UserRut) != "" {
		rut = strings.TrimSpace(req.UserRut)
	}

	created, err := s.repo.Create(ctx, mapper.ToRequestEntity(req, rut, s.now()))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create request failed", err)
	}
	return mapper.ToRequestResponse(created), nil
}

// UpdateRequest lets the owner edit a request. Only admins may change its status.
func (s *RequestService) UpdateRequest(ctx context.Context, id int64, req *dto.UpdateRequestRequest, actor *utils.TokenClaims) (*dto.RequestResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	current, appErr := s.load(ctx, id, actor)
	if appErr != nil {
		return nil, appErr
	}
	if req.Status != "" && !actor.IsAdmin() {
		return nil, errors.NewAppError(errors.ErrForbidden, "only admins can change the request status", nil)
	}

	mapper.ApplyRequestUpdate(current, req)
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update request failed", err)
	}
	return mapper.ToRequestResponse(current), nil
}

func (s *RequestService) DeleteRequest(ctx context.Context, id int64, actor *utils.TokenClaims) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.load(ctx, id, actor); appErr != nil {
		return appErr
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete request failed", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "request not found", nil)
	}
	return nil
}

func (s *RequestService) GetAnswer(ctx context.Context, requestID int64, actor *utils.TokenClaims) (*dto.AnswerResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if _, appErr := s.load(ctx, requestID, actor); appErr != nil {
		return nil, appErr
	}
	answer, err := s.repo.GetAnswer(ctx, requestID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get response failed", err)
	}
	if answer == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "request has no response yet", nil)
	}
	return mapper.ToAnswerResponse(answer), nil
}

// AnswerRequest records a response and sets the request status to match.
func (s *RequestService) AnswerRequest(ctx context.Context, requestID int64, req *dto.CreateAnswerRequest) (*dto.AnswerResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	created, err := s.repo.CreateAnswer(ctx, &entity.Response{
		RespondedAt: s.now(),
		Message:     strings.TrimSpace(req.Message),
		Status:      req.Status,
		RequestID:   requestID,
	})
	if err != nil {
		if stdErrors.Is(err, repository.ErrRequestNotFound) {
			return nil, errors.NewAppError(errors.ErrNotFound, "request not found", err)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create response failed", err)
	}
	return mapper.ToAnswerResponse(created), nil
}

func (s *RequestService) load(ctx context.Context, id int64, actor *utils.TokenClaims) (*entity.Request, *errors.AppError) {
	if actor == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "unauthorized", nil)
	}
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get request failed", err)
	}
	if req == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "request not found", nil)
	}
	if req.UserRut != actor.UserID && !actor.IsAdmin() {
		return nil, errors.NewAppError(errors.ErrForbidden, "not allowed to access this request", nil)
	}
	return req, nil
}
