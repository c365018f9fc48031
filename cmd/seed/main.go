package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/magabrotheeeer/finher/internal/config"
	"github.com/magabrotheeeer/finher/internal/lib/sl"
	"github.com/magabrotheeeer/finher/internal/migrations"
	"github.com/magabrotheeeer/finher/internal/seed"
	"github.com/magabrotheeeer/finher/internal/storage/repository"
)

func main() {
	admin := flag.String("admin", "", "email of a registered user to promote to admin")
	flag.Parse()

	cfg := config.MustLoad()
	logger := sl.SetupLogger(cfg.Env)

	if err := run(context.Background(), cfg, logger, *admin); err != nil {
		logger.Error("seeding failed", sl.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, admin string) error {
	db, err := repository.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if _, err = seed.Run(ctx, db, logger); err != nil {
		return err
	}
	if admin != "" {
		return seed.PromoteAdmin(ctx, db, admin, logger)
	}
	return nil
}
