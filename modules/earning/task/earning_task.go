package task

import (
	"context"
	"fmt"

	"court-reservation-api/core/constants"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/worker"
	"court-reservation-api/modules/earning/service"

	"github.com/hibiken/asynq"
)

type EarningTaskHandler struct {
	EarningService service.EarningServiceInterface
}

func NewEarningTaskHandler(svc service.EarningServiceInterface) *EarningTaskHandler {
	return &EarningTaskHandler{EarningService: svc}
}

func (h *EarningTaskHandler) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(constants.TaskEarningRecalculate, h.HandleRecalculate)
}

func (h *EarningTaskHandler) HandleRecalculate(ctx context.Context, task *asynq.Task) error {
	var payload worker.RecalculateEarningPayload
	if err := worker.Decode(task, &payload); err != nil {
		return err
	}

	if _, appErr := h.EarningService.Recalculate(ctx, payload.Period); appErr != nil {
		if appErr.Code == errors.ErrInvalidInput {
			return fmt.Errorf("%s: %w", appErr.Message, asynq.SkipRetry)
		}
		return appErr
	}
	return nil
}
