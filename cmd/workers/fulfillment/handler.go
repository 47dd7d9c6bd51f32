package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Zeuz09-bot/Keraunos-labs/internal/database"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/kafka"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/redis"
	"github.com/Zeuz09-bot/Keraunos-labs/pkg/types"
	"github.com/rs/zerolog"
)

const idempotencyTTL = 24 * time.Hour

// fulfillmentHandler consumes verified charge events from the outbox
// relay. It guards with a redis idempotency key on reference+event
// (Paystack redelivers), records the event durably, and then runs the
// fulfillment actions.
func fulfillmentHandler(db *database.Database, redisClient *redis.Client, log *zerolog.Logger) kafka.Handler {
	return func(ctx context.Context, msg *kafka.Message) error {
		log.Info().Str("topic", msg.Topic).Int64("offset", msg.Offset).Msg("Processing charge event")

		var event types.WebhookEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error().Err(err).Msg("Failed to unmarshal charge event; dropping")
			return nil // Retrying cannot fix a malformed payload
		}

		idemKey := fmt.Sprintf("webhook:%s:%s", event.Data.Reference, event.Event)
		if err := redisClient.SetIdempotencyKey(ctx, idemKey, idempotencyTTL); err != nil {
			if errors.Is(err, redis.ErrKeyExists) {
				log.Info().Str("reference", event.Data.Reference).Msg("Charge event already processed, skipping")
				return nil
			}
			return err
		}

		_, err := db.Pool.Exec(ctx, `
			INSERT INTO webhook_events (event_id, reference, event_type, payload, status)
			VALUES ($1, $2, $3, $4, 'processed')
			ON CONFLICT (reference, event_type) DO NOTHING
		`, fmt.Sprintf("%d", event.Data.ID), event.Data.Reference, event.Event, msg.Value)
		if err != nil {
			log.Error().Err(err).Msg("Failed to record webhook event")
			// Release the key so the retry isn't skipped as a duplicate
			redisClient.ClearIdempotencyKey(ctx, idemKey)
			return err
		}

		// Fulfillment actions for a paid package. Confirmation email,
		// service provisioning, and operator alerting hook in here.
		log.Info().
			Str("reference", event.Data.Reference).
			Int64("amount_naira", event.Data.AmountMajor()).
			Str("email", event.Data.Customer.Email).
			Str("package", event.Data.Metadata.PackageName).
			Str("paid_at", event.Data.PaidAt).
			Msg("Fulfillment recorded for paid package")

		return nil
	}
}
