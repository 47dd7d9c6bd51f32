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
	"github.com/Zeuz09-bot/Keraunos-labs/internal/redis"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.New(cfg.Observability)
	defer loggerService.Shutdown()
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	log.Info().Msg("Starting fulfillment worker...")

	db, err := database.New(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	redisClient, err := redis.New(&log, &cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize redis")
	}
	defer redisClient.Close()

	consumer, err := kafka.NewConsumer(
		kafka.DefaultConfig(cfg.Kafka.Brokers),
		&log,
		kafka.GroupFulfillmentWorker,
		kafka.TopicChargeSucceeded,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize kafka consumer")
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := consumer.Run(ctx, fulfillmentHandler(db, redisClient, &log)); err != nil {
			log.Error().Err(err).Msg("Fulfillment consumer stopped with error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down fulfillment worker...")
	cancel()

	log.Info().Msg("Fulfillment worker shutdown complete")
}
