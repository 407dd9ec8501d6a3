package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/config"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/driver"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/migrate"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		panic(err)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger = logger.Named("migrate")

	err = run(cfg, logger)
	if err != nil {
		logger.Error("Migration failed", zap.Error(err))
	}
	_ = logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	pool, err := driver.ConnectPostgres(ctx, cfg.DBConnString)
	if err != nil {
		return fmt.Errorf("driver.ConnectPostgres: %w", err)
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		return fmt.Errorf("migrate.Apply: %w", err)
	}

	logger.Info("Migrations applied")
	return nil
}
