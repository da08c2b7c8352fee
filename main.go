package main

import (
	"FoodShare-Backend/cmd/config"
	migration "FoodShare-Backend/cmd/database/migrate"
	"FoodShare-Backend/internal/logger"
	"FoodShare-Backend/internal/utils"
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	utils.LoadConfig()
	log := logger.New(utils.GetConfig("LOG_LEVEL"))
	defer log.Sync() //nolint:errcheck

	if err := run(log); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		os.Exit(1)
	}
	log.Info("server gracefully stopped")
}

func run(log *zap.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := config.ConnectDB()
	if err != nil {
		return err
	}
	if err := migration.Migrate(db, log); err != nil {
		return err
	}

	app, err := config.NewApp(ctx, db, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Warn("failed to close event producer", zap.Error(err))
		}
	}()

	if app.Scanner != nil {
		stop := app.Scanner.Start(ctx)
		defer stop()
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server started", zap.String("port", port))
		return app.Fiber.Listen(":" + port)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		return app.Fiber.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
