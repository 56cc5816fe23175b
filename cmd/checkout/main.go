package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/checkout"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/config"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/health"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/logger"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/psp"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/redis"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/router"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.New(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	if cfg.Stripe.SecretKey == "" {
		log.Warn().Msg("STRIPE_SECRET_KEY is not set; checkout requests will fail")
	}

	var rdb *redis.Client
	if cfg.RedisEnabled() {
		rdb, err = redis.New(&log, &cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize redis client")
		}
	}

	srv := server.NewServer(cfg, &log, loggerService, rdb)

	stripeClient := psp.NewStripeClient(cfg.Stripe.SecretKey, &log, psp.StripeOptions{
		BaseURL: cfg.Stripe.BaseURL,
		Timeout: cfg.Stripe.HTTPTimeout,
	})

	checkoutService := checkout.NewCheckoutService(stripeClient)
	checkoutHandler := checkout.NewCheckoutHandler(checkoutService)

	healthHandler := health.NewHealthHandler(cfg.Observability.HealthChecks.Timeout)
	if rdb != nil {
		healthHandler.Register("redis", rdb)
	}

	handlers := &router.Handlers{
		Checkout: checkoutHandler,
		Health:   healthHandler,
	}

	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server stopped")
}
