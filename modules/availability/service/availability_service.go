package service

import (
	"context"
	stdErrors "errors"
	"fmt"
	"time"

	"court-reservation-api/core/constants"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/logger"
	"court-reservation-api/core/metrics"
	"court-reservation-api/core/utils"
	"court-reservation-api/modules/availability/dto"
	"court-reservation-api/modules/availability/entity"
	"court-reservation-api/modules/availability/repository"
)

const (
	StageFetchReservations  = "fetch_reservations"
	StageDecodeReservations = "decode_reservations"
)

// StoreUnavailableError wraps a reservation store failure with the stage it happened in.
type StoreUnavailableError struct {
	Stage string
	Err   error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("reservation store unavailable at %s: %v", e.Stage, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

var ErrPastDate = stdErrors.New("date is before today")

type AvailabilityServiceInterface interface {
	GetAvailability(ctx context.Context, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, *errors.AppError)
	FindAvailableSlots(ctx context.Context, query entity.AvailabilityQuery) (*entity.Availability, error)
}

type AvailabilityService struct {
	store     repository.ReservationStore
	generator *SlotGenerator
	location  *time.Location
	now       func() time.Time
	metrics   metrics.Metrics
}

type Option func(*AvailabilityService)

func WithClock(now func() time.Time) Option {
	return func(s *AvailabilityService) { s.now = now }
}

func WithLocation(loc *time.Location) Option {
	return func(s *AvailabilityService) { s.location = loc }
}

func WithOpeningHour(hour int) Option {
	return func(s *AvailabilityService) { s.generator = NewSlotGenerator(hour) }
}

func WithMetrics(m metrics.Metrics) Option {
	return func(s *AvailabilityService) { s.metrics = m }
}

func NewAvailabilityService(store repository.ReservationStore, opts ...Option) *AvailabilityService {
	s := &AvailabilityService{
		store:     store,
		generator: NewSlotGenerator(constants.OpeningHour),
		location:  utils.LoadLocation(constants.DefaultTZ),
		now:       time.Now,
		metrics:   metrics.Nop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns midnight of the current day in the business timezone.
func (s *AvailabilityService) Today() time.Time {
	return utils.StartOfDay(s.now().In(s.location))
}

// GetAvailability parses and checks the request, then computes the free blocks.
func (s *AvailabilityService) GetAvailability(ctx context.Context, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, *errors.AppError) {
	date, err := utils.ParseDate(req.Date, s.location)
	if err != nil {
		s.metrics.ObserveAvailabilityQuery("invalid_query", 0)
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid date format, expected DD-MM-YYYY or YYYY-MM-DD", err)
	}
	courtID := utils.ParseID(req.CourtID)
	if courtID == 0 {
		s.metrics.ObserveAvailabilityQuery("invalid_query", 0)
		return nil, errors.NewAppError(errors.ErrInvalidInput, "court_id must be a positive integer", nil)
	}
	if date.Before(s.Today()) {
		s.metrics.ObserveAvailabilityQuery("invalid_query", 0)
		return nil, errors.NewAppError(errors.ErrInvalidInput, "cannot query availability for past dates", ErrPastDate)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	result, err := s.FindAvailableSlots(ctx, entity.AvailabilityQuery{Date: date, CourtID: courtID})
	if err != nil {
		s.metrics.ObserveAvailabilityQuery("store_unavailable", 0)
		return nil, errors.NewAppError(errors.ErrStoreUnavailable, "failed to load reservations", err)
	}

	s.metrics.ObserveAvailabilityQuery("ok", len(result.Blocks))
	return toAvailabilityResponse(req.Date, result), nil
}

// FindAvailableSlots computes the free one-hour blocks for a court on a date.
// Any store failure is returned as *StoreUnavailableError and no partial result.
func (s *AvailabilityService) FindAvailableSlots(ctx context.Context, query entity.AvailabilityQuery) (*entity.Availability, error) {
	now := s.now().In(s.location)

	// 1. Work out the first hour still bookable
	startHour := s.generator.EffectiveStartHour(query.Date, now)

	// 2. Candidate blocks
	blocks := s.generator.GenerateBlocksFrom(startHour)

	// 3. Confirmed reservations for the same court and date
	windows, err := s.store.FetchConfirmed(ctx, query.Date, query.CourtID)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		logger.Error("AvailabilityService:FindAvailableSlots:FetchConfirmed:Error:",
			"court_id", query.CourtID, "date", query.Date.Format(constants.DateLayout), "error", err)
		return nil, &StoreUnavailableError{Stage: StageFetchReservations, Err: err}
	}

	normalized, err := normalizeWindows(windows)
	if err != nil {
		logger.Error("AvailabilityService:FindAvailableSlots:Decode:Error:", "court_id", query.CourtID, "error", err)
		return nil, &StoreUnavailableError{Stage: StageDecodeReservations, Err: err}
	}

	// 4. Drop taken blocks
	available := FilterAvailable(blocks, normalized)

	logger.Debug("AvailabilityService:FindAvailableSlots:Result",
		"court_id", query.CourtID,
		"start_hour", startHour,
		"reservations", len(normalized),
		"available", len(available),
	)

	return &entity.Availability{
		Date:    query.Date,
		CourtID: query.CourtID,
		Blocks:  available,
	}, nil
}

// normalizeWindows brings stored times to HH:MM:SS. A stored end of 24:00:00
// is the same instant as the generated 00:00:00 end of the last block.
func normalizeWindows(windows []entity.ReservationWindow) ([]entity.ReservationWindow, error) {
	out := make([]entity.ReservationWindow, len(windows))
	for i, w := range windows {
		start, err := normalizeClock(w.Start)
		if err != nil {
			return nil, err
		}
		end, err := normalizeClock(w.End)
		if err != nil {
			return nil, err
		}
		out[i] = entity.ReservationWindow{Start: start, End: end}
	}
	return out, nil
}

func normalizeClock(value string) (string, error) {
	if value == "24:00:00" {
		return "00:00:00", nil
	}
	for _, layout := range []string{constants.TimeLayout, "15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(constants.TimeLayout), nil
		}
	}
	return "", fmt.Errorf("malformed reservation time %q", value)
}

// toAvailabilityResponse echoes the date exactly as the client sent it.
func toAvailabilityResponse(rawDate string, a *entity.Availability) *dto.AvailabilityResponse {
	slots := make([]dto.TimeBlockResponse, len(a.Blocks))
	for i, b := range a.Blocks {
		slots[i] = dto.TimeBlockResponse{Start: b.Start, End: b.End}
	}
	return &dto.AvailabilityResponse{
		Date:           rawDate,
		CourtID:        a.CourtID,
		AvailableSlots: slots,
		TotalAvailable: len(slots),
	}
}
