package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/catalog"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/config"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/driver"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/httpserver"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/migrate"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/notify"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/port"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/repository"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/schedule"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/storefront"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		panic(err)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}

	err = run(cfg, logger)
	if err != nil {
		logger.Error("Storefront stopped with error", zap.Error(err))
	}
	_ = logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}

// run returns only after every opened resource has been released.
func run(cfg config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	storage, closeStorage, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.StorageBackend, err)
	}
	defer closeStorage()

	notifiers := []port.Notifier{notify.NewLog(logger)}
	if cfg.NATSURL != "" {
		conn, err := driver.ConnectNATS(cfg.NATSURL, logger)
		if err != nil {
			return fmt.Errorf("driver.ConnectNATS: %w", err)
		}
		defer conn.Close()
		notifiers = append(notifiers, notify.NewNATS(conn))
	}

	app := storefront.New(storefront.Deps{
		Catalog:   catalog.New(),
		Storage:   storage,
		Notifier:  notify.Multi(notifiers...),
		Scheduler: schedule.Real(),
		Currency:  cfg.Currency,
		Logger:    logger,
	})
	defer app.Close()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("app.Start: %w", err)
	}

	srv := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		App:         app,
		Storage:     storage,
		CORSOrigins: cfg.CORSOrigins,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", cfg.HTTPAddr), zap.String("storage", cfg.StorageBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stopCh:
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		runErr = fmt.Errorf("srv.ListenAndServe: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Join(runErr, fmt.Errorf("srv.Shutdown: %w", err))
	}
	logger.Info("Server stopped")

	return runErr
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.Development() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func openStorage(ctx context.Context, cfg config.Config, logger *zap.Logger) (port.ClientStorage, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendRedis:
		client, err := driver.ConnectRedis(ctx, cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedis(client, cfg.Redis.Prefix), func() { _ = client.Close() }, nil

	case config.BackendPostgres:
		pool, err := driver.ConnectPostgres(ctx, cfg.DBConnString)
		if err != nil {
			return nil, nil, err
		}
		if err := migrate.Apply(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("Client storage migrations applied")
		return repository.NewPostgres(pool), pool.Close, nil
	}

	return repository.NewMemory(), func() {}, nil
}
