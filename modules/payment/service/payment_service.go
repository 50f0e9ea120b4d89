package service

import (
	"context"
	"time"

	"court-reservation-api/core/constants"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/logger"
	"court-reservation-api/core/metrics"
	"court-reservation-api/core/utils"
	"court-reservation-api/core/worker"
	"court-reservation-api/modules/payment/dto"
	"court-reservation-api/modules/payment/entity"
	"court-reservation-api/modules/payment/gateway"
	"court-reservation-api/modules/payment/mapper"
	"court-reservation-api/modules/payment/repository"

	"github.com/google/uuid"
)

type PaymentServiceInterface interface {
	GetPayments(ctx context.Context) ([]dto.PaymentResponse, *errors.AppError)
	GetDetailedPayments(ctx context.Context) ([]dto.PaymentDetailResponse, *errors.AppError)
	GetPaymentsByStatus(ctx context.Context, status string) ([]dto.PaymentResponse, *errors.AppError)
	GetPaymentsByDateRange(ctx context.Context, req *dto.DateRangeRequest) ([]dto.PaymentResponse, *errors.AppError)
	GetStatistics(ctx context.Context) (*dto.PaymentStatisticsResponse, *errors.AppError)
	GetMyPayments(ctx context.Context, actor *utils.TokenClaims) ([]dto.PaymentResponse, *errors.AppError)
	GetPayment(ctx context.Context, id int64, actor *utils.TokenClaims) (*dto.PaymentResponse, *errors.AppError)
	CreatePayment(ctx context.Context, req *dto.PaymentRequest, actor *utils.TokenClaims) (*dto.PaymentResponse, *errors.AppError)
	UpdatePayment(ctx context.Context, id int64, req *dto.PaymentRequest) (*dto.PaymentResponse, *errors.AppError)
	DeletePayment(ctx context.Context, id int64) *errors.AppError
	Checkout(ctx context.Context, id int64, actor *utils.TokenClaims) (*dto.CheckoutResponse, *errors.AppError)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*dto.WebhookResponse, *errors.AppError)
}

type PaymentService struct {
	repo     repository.PaymentRepositoryInterface
	gateway  gateway.Gateway
	enqueuer worker.Enqueuer
	metrics  metrics.Metrics
	loc      *time.Location
	now      func() time.Time
	newKey   func() string
}

func NewPaymentService(
	repo repository.PaymentRepositoryInterface,
	gw gateway.Gateway,
	enqueuer worker.Enqueuer,
	m metrics.Metrics,
	loc *time.Location,
) PaymentServiceInterface {
	if loc == nil {
		loc = time.UTC
	}
	if m == nil {
		m = metrics.Nop{}
	}
	if enqueuer == nil {
		enqueuer = worker.NopEnqueuer{}
	}
	return &PaymentService{
		repo:     repo,
		gateway:  gw,
		enqueuer: enqueuer,
		metrics:  m,
		loc:      loc,
		now:      time.Now,
		newKey:   func() string { return uuid.NewString() },
	}
}

func (s *PaymentService) GetPayments(ctx context.Context) ([]dto.PaymentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get payments failed", err)
	}
	return mapper.ToPaymentResponses(items), nil
}

func (s *PaymentService) GetDetailedPayments(ctx context.Context) ([]dto.PaymentDetailResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	items, err := s.repo.ListDetailed(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get payments failed", err)
	}
	return mapper.ToPaymentDetailResponses(items), nil
}

func (s *PaymentService) GetPaymentsByStatus(ctx context.Context, status string) ([]dto.PaymentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	items, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get payments failed", err)
	}
	return mapper.ToPaymentResponses(items), nil
}

// GetPaymentsByDateRange includes both end dates, in the business timezone.
func (s *PaymentService) GetPaymentsByDateRange(ctx context.Context, req *dto.DateRangeRequest) ([]dto.PaymentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	from, err := utils.ParseDate(req.StartDate, s.loc)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid start_date", err)
	}
	end, err := utils.ParseDate(req.EndDate, s.loc)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid end_date", err)
	}
	if end.Before(from) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "end_date must not be before start_date", nil)
	}

	items, err := s.repo.ListBetween(ctx, from, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get payments failed", err)
	}
	return mapper.ToPaymentResponses(items), nil
}

func (s *PaymentService) GetStatistics(ctx context.Context) (*dto.PaymentStatisticsResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	items, err := s.repo.Summaries(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get payment statistics failed", err)
	}
	return mapper.ToStatistics(items), nil
}

func (s *PaymentService) GetMyPayments(ctx context.Context, actor *utils.TokenClaims) ([]dto.PaymentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if actor == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "unauthorized", nil)
	}
	items, err := s.repo.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get payments failed", err)
	}
	return mapper.ToPaymentResponses(items), nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id int64, actor *utils.TokenClaims) (*dto.PaymentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	p, appErr := s.load(ctx, id, actor)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToPaymentResponse(p), nil
}

// CreatePayment records a payment for the caller. Admins may record one for
// any user.
func (s *PaymentService) CreatePayment(ctx context.Context, req *dto.PaymentRequest, actor *utils.TokenClaims) (*dto.PaymentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if actor == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "unauthorized", nil)
	}
	rut := req.UserRut
	if !actor.IsAdmin() {
		if rut != actor.UserID {
			return nil, errors.NewAppError(errors.ErrForbidden, "payments can only be created for yourself", nil)
		}
		if req.Status != "" && req.Status != constants.PaymentStatusPending {
			return nil, errors.NewAppError(errors.ErrForbidden, "only admins can set the payment status", nil)
		}
	}

	created, err := s.repo.Create(ctx, mapper.ToPaymentEntity(req, rut, s.now()))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create payment failed", err)
	}
	s.recalculate(ctx, created)
	return mapper.ToPaymentResponse(created), nil
}

func (s *PaymentService) UpdatePayment(ctx context.Context, id int64, req *dto.PaymentRequest) (*dto.PaymentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get payment failed", err)
	}
	if current == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "payment not found", nil)
	}

	mapper.ApplyPaymentUpdate(current, req)
	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update payment failed", err)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "payment not found", nil)
	}
	s.recalculate(ctx, updated)
	return mapper.ToPaymentResponse(updated), nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, id int64) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "get payment failed", err)
	}
	if current == nil {
		return errors.NewAppError(errors.ErrNotFound, "payment not found", nil)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete payment failed", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "payment not found", nil)
	}
	s.recalculate(ctx, current)
	return nil
}

// Checkout opens a gateway intent for a pending payment.
func (s *PaymentService) Checkout(ctx context.Context, id int64, actor *utils.TokenClaims) (*dto.CheckoutResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	p, appErr := s.load(ctx, id, actor)
	if appErr != nil {
		return nil, appErr
	}
	if p.Status != constants.PaymentStatusPending {
		return nil, errors.NewAppError(errors.ErrConflict, "payment is already "+p.Status, nil)
	}
	if s.gateway == nil {
		return nil, errors.NewAppError(errors.ErrPaymentGateway, "payment gateway is not configured", nil)
	}

	intent, err := s.gateway.CreateIntent(ctx, p.ID, p.Amount, s.newKey())
	if err != nil {
		s.metrics.IncPaymentEvent("checkout_failed")
		return nil, errors.NewAppError(errors.ErrPaymentGateway, "create checkout failed", err)
	}

	s.metrics.IncPaymentEvent("checkout_created")
	logger.Info("PaymentService:Checkout", "payment_id", p.ID, "intent_id", intent.ID)
	return mapper.ToCheckoutResponse(p.ID, intent), nil
}

// HandleWebhook applies a verified gateway event to the payment it refers to.
func (s *PaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) (*dto.WebhookResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if s.gateway == nil {
		return nil, errors.NewAppError(errors.ErrPaymentGateway, "payment gateway is not configured", nil)
	}
	event, err := s.gateway.ParseEvent(payload, signature)
	if err != nil {
		s.metrics.IncPaymentEvent("rejected")
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid webhook", err)
	}
	s.metrics.IncPaymentEvent(event.Type)

	var status string
	switch event.Type {
	case entity.GatewayEventSucceeded:
		status = constants.PaymentStatusProcessed
	case entity.GatewayEventFailed:
		status = constants.PaymentStatusFailed
	default:
		return &dto.WebhookResponse{Event: event.Type}, nil
	}

	updated, err := s.repo.UpdateStatus(ctx, event.PaymentID, status)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update payment failed", err)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "payment not found", nil)
	}

	logger.Info("PaymentService:HandleWebhook", "payment_id", updated.ID, "intent_id", event.IntentID, "status", status)
	s.recalculate(ctx, updated)
	return &dto.WebhookResponse{Event: event.Type, PaymentID: updated.ID, Status: status}, nil
}

func (s *PaymentService) load(ctx context.Context, id int64, actor *utils.TokenClaims) (*entity.Payment, *errors.AppError) {
	if actor == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "unauthorized", nil)
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get payment failed", err)
	}
	if p == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "payment not found", nil)
	}
	if p.UserRut != actor.UserID && !actor.IsAdmin() {
		return nil, errors.NewAppError(errors.ErrForbidden, "not allowed to access this payment", nil)
	}
	return p, nil
}

// recalculate queues an earning refresh for the payment's month. Failures are
// logged only; the earning can be rebuilt on demand.
func (s *PaymentService) recalculate(ctx context.Context, p *entity.Payment) {
	period := utils.Period(p.PaidAt.In(s.loc))
	payload := worker.RecalculateEarningPayload{Period: period}
	if err := s.enqueuer.Enqueue(ctx, constants.TaskEarningRecalculate, payload); err != nil {
		logger.Warn("PaymentService:Recalculate:EnqueueFailed", "period", period, "error", err)
	}
}
