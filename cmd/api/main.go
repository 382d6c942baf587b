package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oggyb/hubtel-sms/internal/cache"
	"github.com/oggyb/hubtel-sms/internal/cache/redis"
	"github.com/oggyb/hubtel-sms/internal/config"
	"github.com/oggyb/hubtel-sms/internal/handler"
	"github.com/oggyb/hubtel-sms/internal/hubtel"
	"github.com/oggyb/hubtel-sms/internal/logger"
	routes "github.com/oggyb/hubtel-sms/internal/router"
	"github.com/oggyb/hubtel-sms/internal/server"
	"github.com/oggyb/hubtel-sms/internal/service"
)

// @title       Hubtel SMS API
// @version     1.0
// @description Send SMS, check delivery status and account balance through the Hubtel gateway.
// @BasePath    /
func main() {
	// Base context for the whole application lifetime.
	rootCtx := context.Background()

	// Load configuration from environment/.env.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	// Init cache. Without REDIS_ADDR the service runs without sent-time hints.
	var sentCache cache.Cache
	if cfg.CacheEnabled() {
		rc := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := rc.Ping(rootCtx); err != nil {
			lg.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		defer rc.Close()
		sentCache = rc
	}

	// Init Hubtel client. No request is made until the first call.
	smsClient := hubtel.New(
		cfg.Hubtel.ClientID,
		cfg.Hubtel.ClientSecret,
		cfg.Hubtel.SenderID,
		hubtel.WithHTTPClient(&http.Client{Timeout: cfg.Hubtel.HTTPTimeout}),
		hubtel.WithLogger(*lg),
	)

	smsSvc := service.NewSMSService(smsClient, sentCache, cfg.Cache.SentTTL, *lg)

	// Handlers
	deps := routes.AppDeps{
		Home: handler.NewHomeHandler(cfg.App.Name),
		SMS:  handler.NewSMSHandler(smsSvc),
	}

	addr := cfg.Addr()
	srv := server.New(addr, deps, *lg)

	// Create a context that is cancelled on SIGINT/SIGTERM (Ctrl+C, docker stop etc.).
	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		lg.Info().Str("addr", addr).Bool("cache", sentCache != nil).Msg("HTTP server listening")

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Block until we receive a shutdown signal.
	<-ctx.Done()
	lg.Info().Msg("shutdown signal received, starting graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error().Err(err).Msg("HTTP server graceful shutdown failed")
	} else {
		lg.Info().Msg("HTTP server stopped")
	}
}
