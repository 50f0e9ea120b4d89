package service

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"time"

	"court-reservation-api/core/constants"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/logger"
	"court-reservation-api/core/storage"
	"court-reservation-api/core/utils"
	"court-reservation-api/core/worker"
	"court-reservation-api/modules/report/dto"
	"court-reservation-api/modules/report/entity"
	"court-reservation-api/modules/report/mapper"
	"court-reservation-api/modules/report/repository"
)

const ReportTypeStatisticsExport = "estadisticas"

var ErrNoObjectStore = stdErrors.New("object storage is not configured")

type ReportServiceInterface interface {
	GetReports(ctx context.Context) ([]dto.ReportResponse, *errors.AppError)
	GetReport(ctx context.Context, id int64) (*dto.ReportResponse, *errors.AppError)
	CreateReport(ctx context.Context, req *dto.ReportRequest, actor *utils.TokenClaims) (*dto.ReportResponse, *errors.AppError)
	UpdateReport(ctx context.Context, id int64, req *dto.ReportRequest) (*dto.ReportResponse, *errors.AppError)
	DeleteReport(ctx context.Context, id int64) *errors.AppError
	GetStatistics(ctx context.Context) (*dto.StatisticsResponse, *errors.AppError)
	RequestExport(ctx context.Context, actor *utils.TokenClaims) (*dto.ExportResponse, *errors.AppError)
	ExportStatistics(ctx context.Context, payload worker.ExportReportPayload) (*dto.ReportResponse, *errors.AppError)
}

type ReportService struct {
	repo     repository.ReportRepositoryInterface
	store    storage.ObjectStore
	enqueuer worker.Enqueuer
	loc      *time.Location
	now      func() time.Time
}

func NewReportService(
	repo repository.ReportRepositoryInterface,
	store storage.ObjectStore,
	enqueuer worker.Enqueuer,
	loc *time.Location,
) ReportServiceInterface {
	if loc == nil {
		loc = time.UTC
	}
	if enqueuer == nil {
		enqueuer = worker.NopEnqueuer{}
	}
	return &ReportService{repo: repo, store: store, enqueuer: enqueuer, loc: loc, now: time.Now}
}

func (s *ReportService) GetReports(ctx context.Context) ([]dto.ReportResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get reports failed", err)
	}
	return mapper.ToReportResponses(items), nil
}

func (s *ReportService) GetReport(ctx context.Context, id int64) (*dto.ReportResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	rep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get report failed", err)
	}
	if rep == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "report not found", nil)
	}
	return mapper.ToReportResponse(rep), nil
}

func (s *ReportService) CreateReport(ctx context.Context, req *dto.ReportRequest, actor *utils.TokenClaims) (*dto.ReportResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if actor == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "unauthorized", nil)
	}
	if !actor.IsAdmin() && req.UserRut != actor.UserID {
		return nil, errors.NewAppError(errors.ErrForbidden, "reports can only be filed for yourself", nil)
	}

	date, appErr := s.reportDate(req.Date)
	if appErr != nil {
		return nil, appErr
	}
	if date == nil {
		now := s.now()
		date = &now
	}

	created, err := s.repo.Create(ctx, mapper.ToReportEntity(req, req.UserRut, *date))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create report failed", err)
	}
	return mapper.ToReportResponse(created), nil
}

func (s *ReportService) UpdateReport(ctx context.Context, id int64, req *dto.ReportRequest) (*dto.ReportResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get report failed", err)
	}
	if current == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "report not found", nil)
	}

	date, appErr := s.reportDate(req.Date)
	if appErr != nil {
		return nil, appErr
	}
	mapper.ApplyReportUpdate(current, req, date)

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update report failed", err)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "report not found", nil)
	}
	return mapper.ToReportResponse(updated), nil
}

func (s *ReportService) DeleteReport(ctx context.Context, id int64) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete report failed", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "report not found", nil)
	}
	return nil
}

func (s *ReportService) GetStatistics(ctx context.Context) (*dto.StatisticsResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	return s.statistics(ctx, s.now().In(s.loc))
}

func (s *ReportService) RequestExport(ctx context.Context, actor *utils.TokenClaims) (*dto.ExportResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if actor == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "unauthorized", nil)
	}

	payload := worker.ExportReportPayload{
		RequestedBy: actor.UserID,
		AsOf:        s.now().In(s.loc).Format(time.RFC3339),
	}
	if err := s.enqueuer.Enqueue(ctx, constants.TaskReportExport, payload); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "queue export failed", err)
	}
	return &dto.ExportResponse{TaskType: constants.TaskReportExport, AsOf: payload.AsOf}, nil
}

// ExportStatistics writes a statistics snapshot to object storage and files a
// report row pointing at it.
func (s *ReportService) ExportStatistics(ctx context.Context, payload worker.ExportReportPayload) (*dto.ReportResponse, *errors.AppError) {
	if s.store == nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "object storage is not configured", ErrNoObjectStore)
	}

	asOf, err := time.Parse(time.RFC3339, payload.AsOf)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "as_of must be RFC3339", err)
	}
	asOf = asOf.In(s.loc)

	stats, appErr := s.statistics(ctx, asOf)
	if appErr != nil {
		return nil, appErr
	}
	body, err := json.Marshal(stats)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "encode statistics failed", err)
	}

	key := fmt.Sprintf("reports/%s/%s.json", utils.Period(asOf), utils.GenerateID())
	location, err := s.store.Put(ctx, key, body, "application/json")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "upload statistics failed", err)
	}

	created, err := s.repo.Create(ctx, &entity.Report{
		Date:        s.now(),
		Type:        ReportTypeStatisticsExport,
		Description: location,
		UserRut:     payload.RequestedBy,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create report failed", err)
	}

	logger.Info("ReportService:ExportStatistics", "location", location, "report_id", created.ID)
	return mapper.ToReportResponse(created), nil
}

func (s *ReportService) statistics(ctx context.Context, asOf time.Time) (*dto.StatisticsResponse, *errors.AppError) {
	items, err := s.repo.PaidBookings(ctx, StatsWindow(asOf), asOf)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get statistics failed", err)
	}
	return BuildStatistics(items, asOf), nil
}

func (s *ReportService) reportDate(value string) (*time.Time, *errors.AppError) {
	if value == "" {
		return nil, nil
	}
	date, err := utils.ParseDate(value, s.loc)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid date", err)
	}
	return &date, nil
}
