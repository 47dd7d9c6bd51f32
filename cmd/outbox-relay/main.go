package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Zeuz09-bot/Keraunos-labs/internal/config"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/database"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/kafka"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/logger"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/outbox"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.New(cfg.Observability)
	defer loggerService.Shutdown()
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	log.Info().Msg("Starting outbox relay service...")

	db, err := database.New(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	producer, err := kafka.NewProducer(kafka.DefaultConfig(cfg.Kafka.Brokers), &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create kafka producer")
	}
	defer producer.Close()

	relay := outbox.NewRelay(db.Pool, producer, &log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := relay.Start(ctx); err != nil {
			log.Error().Err(err).Msg("Relay service stopped with error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down outbox relay...")
	cancel()

	log.Info().Msg("Outbox relay shutdown complete")
}
