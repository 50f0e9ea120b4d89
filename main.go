package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"court-reservation-api/core/config"
	"court-reservation-api/core/logger"
	"court-reservation-api/core/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "court-reservation-api",
	Short: "REST backend for sports court reservations",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger.Init(cfg.Env)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Run(cmd.Context(), config.Get())
	},
}

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Process background tasks (earning recalculation, report export)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.RunWorker(cmd.Context(), config.Get())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, workerCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "court-reservation-api: %v\n", err)
		os.Exit(1)
	}
}
