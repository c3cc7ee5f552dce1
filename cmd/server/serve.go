package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"sportmed/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the realtime hub",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Bool("migrate", false, "Apply pending migrations before serving")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := app.NewContainer(ctx, cfg, log)
	if err != nil {
		log.Error("[Server] bootstrap failed", zap.Error(err))
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Warn("[Server] cleanup error", zap.Error(err))
		}
	}()

	if migrate, _ := cmd.Flags().GetBool("migrate"); migrate {
		if err := applyMigrations(ctx, cfg.App.MigrationDir, c.DB.SQLDB(), log); err != nil {
			return err
		}
	}

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return err
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	hubDone := make(chan struct{})
	go func() {
		defer close(hubDone)
		c.Hub.Run(hubCtx)
	}()
	defer func() {
		stopHub()
		<-hubDone
	}()

	srv := app.New(c)
	errCh := make(chan error, 1)
	go func() {
		log.Info("[Server] listening", zap.String("addr", addr), zap.String("env", cfg.App.Environment))
		errCh <- srv.Fiber.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("[Server] listen failed", zap.Error(err))
		}
		return err
	case <-ctx.Done():
	}

	log.Info("[Server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Fiber.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		log.Warn("[Server] shutdown error", zap.Error(err))
		return err
	}
	return nil
}
