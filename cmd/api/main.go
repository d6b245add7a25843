package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/commercebook/commerce-api/internal/api"
	"github.com/commercebook/commerce-api/internal/infrastructure/db/mongo"
	"github.com/commercebook/commerce-api/internal/infrastructure/db/redis"
	"github.com/commercebook/commerce-api/internal/infrastructure/payment/stripe"
	"github.com/commercebook/commerce-api/internal/pkg/config"
	"github.com/commercebook/commerce-api/pkg/logger"
)

// @title        Commerce Book API
// @version      1.0
// @description  Marketplace backend: products, likes, comments, carts and payment intents.
// @BasePath     /
//
// @securityDefinitions.apikey  TokenAuth
// @in                          header
// @name                        token
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	initCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, db, err := mongo.Connect(initCtx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}

	if err := mongo.NewUserRepository(db).EnsureIndexes(initCtx); err != nil {
		log.Fatal().Err(err).Msg("users index creation failed")
	}
	if err := mongo.NewCartRepository(client, db).EnsureIndexes(initCtx); err != nil {
		log.Fatal().Err(err).Msg("carts index creation failed")
	}

	rdb, err := redis.Connect(initCtx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	payments := stripe.New(cfg.Stripe.SecretKey)

	e := api.NewRouter(client, db, rdb, payments, cfg.TokenSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}

	log.Info().Msg("server stopped")
}
