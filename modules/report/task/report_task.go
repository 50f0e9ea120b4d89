package task

import (
	"context"
	stdErrors "errors"
	"fmt"

	"court-reservation-api/core/constants"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/worker"
	"court-reservation-api/modules/report/service"

	"github.com/hibiken/asynq"
)

type ReportTaskHandler struct {
	ReportService service.ReportServiceInterface
}

func NewReportTaskHandler(svc service.ReportServiceInterface) *ReportTaskHandler {
	return &ReportTaskHandler{ReportService: svc}
}

func (h *ReportTaskHandler) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(constants.TaskReportExport, h.HandleExport)
}

func (h *ReportTaskHandler) HandleExport(ctx context.Context, task *asynq.Task) error {
	var payload worker.ExportReportPayload
	if err := worker.Decode(task, &payload); err != nil {
		return err
	}

	if _, appErr := h.ReportService.ExportStatistics(ctx, payload); appErr != nil {
		if appErr.Code == errors.ErrInvalidInput || stdErrors.Is(appErr, service.ErrNoObjectStore) {
			return fmt.Errorf("%s: %w", appErr.Message, asynq.SkipRetry)
		}
		return appErr
	}
	return nil
}
