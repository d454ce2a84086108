package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/oumar782/Jessback/api/routes"
	"github.com/oumar782/Jessback/internal/packages"
	"github.com/oumar782/Jessback/internal/reservations"
	"github.com/oumar782/Jessback/internal/slots"
	"github.com/oumar782/Jessback/pkg/config"
	"github.com/oumar782/Jessback/pkg/db"
	"github.com/oumar782/Jessback/pkg/logger"
	"github.com/oumar782/Jessback/pkg/migrate"
	"github.com/oumar782/Jessback/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	reservationService, err := reservations.NewService(reservations.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create reservation service", err)
		os.Exit(1)
	}

	slotService, err := slots.NewService(slots.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create slot service", err)
		os.Exit(1)
	}

	packageService, err := packages.NewService(packages.NewRepository(dbClient))
	if err != nil {
		logg.Error(context.Background(), "failed to create package service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, reservationService, slotService, packageService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
