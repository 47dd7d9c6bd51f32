package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zeuz09-bot/Keraunos-labs/internal/catalog"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/checkout"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/config"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/database"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/logger"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/paystack"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/router"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/server"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/webhook"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.New(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	if cfg.Paystack.SecretKey == "" {
		log.Warn().Msg("Paystack secret key not configured; checkout and webhook endpoints will return errors")
	}

	// The persistence layer is optional: without it, webhook events are
	// logged only, which is all the site needs out of the box.
	var chargeSink webhook.Sink
	if cfg.Database.Enabled {
		db, err := database.New(cfg, &log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize database")
		}
		defer db.Close()
		chargeSink = webhook.NewOutboxSink(db.Pool)
	} else {
		log.Info().Msg("webhook outbox disabled; charge events are logged only")
	}

	srv := server.NewServer(cfg, &log, loggerService)

	paystackClient := paystack.NewClient(&cfg.Paystack)
	checkoutService := checkout.NewService(&cfg.Paystack, paystackClient)

	handlers := &router.Handlers{
		Checkout: checkout.NewHandler(checkoutService),
		Webhook:  webhook.NewHandler(&cfg.Paystack, chargeSink),
		Catalog:  catalog.NewHandler(),
	}

	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	go func() {
		if err := srv.Start(); err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Give outstanding requests 10 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server stopped")
}
