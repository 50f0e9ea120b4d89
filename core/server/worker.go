package server

import (
	"context"

	"court-reservation-api/core/config"
	"court-reservation-api/core/database"
	"court-reservation-api/core/logger"
	"court-reservation-api/core/storage"
	"court-reservation-api/core/utils"
	"court-reservation-api/core/worker"
	"court-reservation-api/modules/earning"
	"court-reservation-api/modules/report"

	"github.com/hibiken/asynq"
)

// RunWorker processes background tasks until ctx is cancelled.
func RunWorker(ctx context.Context, cfg *config.Config) error {
	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	var store storage.ObjectStore
	if s3Store, err := storage.NewS3Store(cfg.Storage); err != nil {
		logger.Warn("Worker:Storage:Disabled", "error", err)
	} else {
		store = s3Store
	}

	srv := worker.NewServer(*cfg)
	if err := srv.Start(NewTaskMux(db, store, cfg)); err != nil {
		return err
	}
	logger.Info("Worker:Start", "concurrency", cfg.Worker.Concurrency)

	<-ctx.Done()
	logger.Info("Worker:Shutdown")
	srv.Shutdown()
	return nil
}

func NewTaskMux(db database.IDatabase, store storage.ObjectStore, cfg *config.Config) *asynq.ServeMux {
	loc := utils.LoadLocation(cfg.Availability.Timezone)

	mux := asynq.NewServeMux()
	earning.RegisterTasks(mux, db, loc)
	report.RegisterTasks(mux, db, store, loc)
	return mux
}
