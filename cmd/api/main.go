package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/leadcrm/crm-system/internal/api"
	"github.com/leadcrm/crm-system/internal/core/service"
	"github.com/leadcrm/crm-system/internal/infrastructure/config"
	mongostore "github.com/leadcrm/crm-system/internal/infrastructure/db/mongo"
	redisstore "github.com/leadcrm/crm-system/internal/infrastructure/db/redis"
	"github.com/leadcrm/crm-system/internal/infrastructure/queue"
	"github.com/leadcrm/crm-system/internal/infrastructure/seed"
	"github.com/leadcrm/crm-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("starting crm api")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection")
	}
	defer rdb.Close()

	customerRepo := mongostore.NewCustomerRepository(db)
	accountRepo := mongostore.NewAccountRepository(db)
	if err := customerRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("customer indexes")
	}
	if err := accountRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("account indexes")
	}

	if cfg.SeedDemoData {
		if err := seed.Run(ctx, accountRepo, customerRepo, log); err != nil {
			log.Fatal().Err(err).Msg("demo data seed")
		}
	}

	// Activity pipeline: sharded async recorder behind the API handlers.
	activityRepo := mongostore.NewActivityRepository(db)
	dedup := redisstore.NewDedupChecker(rdb)
	activityService := service.NewActivityService(activityRepo, dedup, log)
	dispatcher := queue.NewDispatcher(0, activityService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, cfg.JWTSecret, dispatcher)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
}
