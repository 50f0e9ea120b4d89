package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"court-reservation-api/core/cache"
	"court-reservation-api/core/config"
	"court-reservation-api/core/database"
	"court-reservation-api/core/logger"
	"court-reservation-api/core/metrics"
	"court-reservation-api/core/middleware"
	"court-reservation-api/core/utils"
	"court-reservation-api/core/worker"
	"court-reservation-api/modules/availability"
	"court-reservation-api/modules/court"
	"court-reservation-api/modules/earning"
	"court-reservation-api/modules/payment"
	"court-reservation-api/modules/report"
	"court-reservation-api/modules/request"
	"court-reservation-api/modules/reservation"
	"court-reservation-api/modules/user"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"
)

// Run starts the HTTP API and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	queue := worker.NewClient(cfg.Redis)
	defer queue.Close()

	m := metrics.NewService()
	e := NewEcho(cfg, db, cache.NewCache(redisClient), queue, m)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server:Start", "addr", addr, "env", cfg.Env)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg))
		defer cancel()

		logger.Info("Server:Shutdown")
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// NewEcho builds the router with every module registered.
func NewEcho(cfg *config.Config, db database.IDatabase, c cache.Cache, enqueuer worker.Enqueuer, m metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	userService := user.GetService(db, c)
	mw := middleware.NewMiddleware(userService, m)
	loc := utils.LoadLocation(cfg.Availability.Timezone)

	origins := cfg.Server.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{AllowOrigins: origins}))
	e.Use(mw.RequestLogger())

	e.GET("/health", healthHandler(db))
	e.GET("/metrics", echo.WrapHandler(metrics.NewHandler()))

	availability.Init(e, db, cfg, m)
	user.Init(e, userService, mw)
	court.Init(e, db, c, mw)
	reservation.Init(e, db, mw)
	request.Init(e, db, mw)
	earning.Init(e, db, loc, mw)
	payment.Init(e, db, cfg, enqueuer, m, mw)
	report.Init(e, db, enqueuer, loc, mw)

	return e
}

func healthHandler(db database.IDatabase) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		status, code := "ok", http.StatusOK
		if err := db.SQLx().PingContext(ctx); err != nil {
			logger.Warn("Server:Health:DatabaseDown", "error", err)
			status, code = "degraded", http.StatusServiceUnavailable
		}
		return c.JSON(code, map[string]string{"status": status})
	}
}

func shutdownTimeout(cfg *config.Config) time.Duration {
	if cfg.Server.ShutdownTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(cfg.Server.ShutdownTimeout) * time.Second
}
